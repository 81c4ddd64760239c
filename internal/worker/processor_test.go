// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/internal/worker"
)

type quietNotifier struct{}

func (quietNotifier) Success(context.Context, string) {}
func (quietNotifier) Failure(context.Context, string) {}

func newProcessor() (*worker.Processor, *submission.MemoryRepository) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := submission.NewMemoryRepository(nil)
	service := submission.NewService(repo, func() []submission.Submission { return nil }, simulate.Instant(), quietNotifier{}, logger)
	return worker.NewProcessor(service, logger), repo
}

func task(t *testing.T, payload any) *asynq.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(constants.TaskSubmissionCreate, raw)
}

func TestHandleSubmissionCreate(t *testing.T) {
	processor, repo := newProcessor()

	err := processor.HandleSubmissionCreate(context.Background(), task(t, onboarding.Profile{
		SessionID:  "s1",
		Name:       "Kabir Rao",
		Categories: []string{"comedian"},
		FeeRange:   "₹15,000 - ₹25,000",
		Location:   "Chennai, Tamil Nadu",
	}))
	require.NoError(t, err)

	records, _ := repo.List(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "Comedian", records[0].Category)
	assert.Equal(t, "Chennai", records[0].City)
	assert.Equal(t, submission.StatusPending, records[0].Status)
}

func TestHandleSubmissionCreate_SkipsRetryForBadPayloads(t *testing.T) {
	processor, repo := newProcessor()

	err := processor.HandleSubmissionCreate(context.Background(), asynq.NewTask(constants.TaskSubmissionCreate, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))

	err = processor.HandleSubmissionCreate(context.Background(), task(t, onboarding.Profile{SessionID: "s2"}))
	assert.True(t, errors.Is(err, asynq.SkipRetry))

	records, _ := repo.List(context.Background())
	assert.Empty(t, records)
}
