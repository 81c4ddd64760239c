// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/blob"
	"github.com/taibuivan/artistly/pkg/pointer"
)

func TestService_ReleasesSessionLocks(t *testing.T) {
	ctx := context.Background()
	submitter := SubmitterFunc(func(context.Context, Profile) error { return nil })
	service := NewService(NewMemoryStore(time.Hour), blob.NewMemoryStore(), submitter, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	var wg sync.WaitGroup
	for range 50 {
		wizard, err := service.Start(ctx)
		require.NoError(t, err)

		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.Update(ctx, wizard.ID, Patch{Name: pointer.To("Priya Sharma")})
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	service.mu.Lock()
	defer service.mu.Unlock()
	assert.Empty(t, service.locks)
}
