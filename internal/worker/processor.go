// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package worker runs the background jobs fed by the asynq queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/queue"
)

// Creator is the part of the submission service the worker needs.
type Creator interface {
	Create(context context.Context, input submission.CreateInput) (submission.Submission, error)
}

// Processor is plugged into the asynq worker loop.
type Processor struct {
	submissions Creator
	logger      *slog.Logger
}

// NewProcessor constructs a worker processor.
func NewProcessor(submissions Creator, logger *slog.Logger) *Processor {
	return &Processor{submissions: submissions, logger: logger}
}

// Handler registers the job handlers.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskSubmissionCreate, p.HandleSubmissionCreate)
	return mux
}

// HandleSubmissionCreate turns an onboarding profile into a pending
// submission. Payloads that can never succeed are not retried.
func (p *Processor) HandleSubmissionCreate(ctx context.Context, task *asynq.Task) error {
	var profile onboarding.Profile
	if err := queue.Decode(task, &profile); err != nil {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	created, err := p.submissions.Create(ctx, profile.SubmissionInput())
	if apperr.HasCode(err, "VALIDATION_ERROR") {
		p.logger.WarnContext(ctx, "submission_task_rejected",
			slog.String("session_id", profile.SessionID),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "submission_task_done",
		slog.String("session_id", profile.SessionID),
		slog.Int("submission_id", created.ID),
	)
	return nil
}
