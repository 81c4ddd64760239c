// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preferences_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/preferences"
)

func TestService_SharesBackendAcrossInstances(t *testing.T) {
	ctx := context.Background()
	backend := preferences.NewMemoryBackend()
	first := preferences.NewService(backend, discard)
	second := preferences.NewService(backend, discard)

	state, err := first.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, state.Favorites)

	_, err = second.Dispatch(ctx, "client-1", preferences.AddFavorite{Artist: artist.Artist{ID: 7}})
	require.NoError(t, err)

	state, err = first.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids(state.Favorites))
}

func TestService_ConcurrentDispatchesForOneClient(t *testing.T) {
	ctx := context.Background()
	service := preferences.NewService(preferences.NewMemoryBackend(), discard)

	var wg sync.WaitGroup
	for id := 1; id <= 20; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Dispatch(ctx, "client-1", preferences.AddFavorite{Artist: artist.Artist{ID: id}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := service.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Len(t, state.Favorites, 20)
}
