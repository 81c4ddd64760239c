// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/simulate"
)

// Submitter receives finished profiles.
type Submitter interface {
	Submit(context context.Context, profile Profile) error
}

// SubmitterFunc adapts a function to [Submitter].
type SubmitterFunc func(context context.Context, profile Profile) error

func (f SubmitterFunc) Submit(context context.Context, profile Profile) error {
	return f(context, profile)
}

// SubmissionInput maps a profile onto the review queue's record. The first
// category and the city part of the location are kept.
func (p Profile) SubmissionInput() submission.CreateInput {
	category := ""
	if len(p.Categories) > 0 {
		category = CategoryLabel(p.Categories[0])
	}

	return submission.CreateInput{
		Name:     p.Name,
		Category: category,
		City:     city(p.Location),
		Fee:      p.FeeRange,
	}
}

// city is the first non-blank comma separated part of location, so
// ", Pune" yields "Pune". A location with no such part is kept whole; it has
// already passed the length rule, so the review record never gets a blank city.
func city(location string) string {
	for part := range strings.SplitSeq(location, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			return trimmed
		}
	}
	return strings.TrimSpace(location)
}

// # Implementations

// DirectSubmitter creates the pending submission in-process.
type DirectSubmitter struct {
	submissions *submission.Service
}

// NewDirectSubmitter is used when no job queue is configured.
func NewDirectSubmitter(submissions *submission.Service) *DirectSubmitter {
	return &DirectSubmitter{submissions: submissions}
}

func (submitter *DirectSubmitter) Submit(context context.Context, profile Profile) error {
	_, err := submitter.submissions.Create(context, profile.SubmissionInput())
	return err
}

// Enqueuer is the part of the queue client the [QueueSubmitter] needs.
type Enqueuer interface {
	Enqueue(context context.Context, taskType string, payload any) (string, error)
}

// QueueSubmitter hands the profile to the worker through asynq.
type QueueSubmitter struct {
	queue  Enqueuer
	logger *slog.Logger
}

// NewQueueSubmitter wraps a queue client.
func NewQueueSubmitter(queue Enqueuer, logger *slog.Logger) *QueueSubmitter {
	return &QueueSubmitter{queue: queue, logger: logger}
}

func (submitter *QueueSubmitter) Submit(context context.Context, profile Profile) error {
	taskID, err := submitter.queue.Enqueue(context, constants.TaskSubmissionCreate, profile)
	if err != nil {
		return err
	}

	submitter.logger.InfoContext(context, "profile_enqueued",
		slog.String("session_id", profile.SessionID),
		slog.String("task_id", taskID),
	)
	return nil
}

// RemoteSubmitter waits on the simulated backend before delegating.
type RemoteSubmitter struct {
	remote *simulate.Call
	next   Submitter
	logger *slog.Logger
}

// NewRemoteSubmitter decorates next with a simulated remote call.
func NewRemoteSubmitter(remote *simulate.Call, next Submitter, logger *slog.Logger) *RemoteSubmitter {
	return &RemoteSubmitter{remote: remote, next: next, logger: logger}
}

func (submitter *RemoteSubmitter) Submit(context context.Context, profile Profile) error {
	submitter.logger.InfoContext(context, "profile_submission",
		slog.String("session_id", profile.SessionID),
		slog.String("name", profile.Name),
		slog.Any("categories", profile.Categories),
		slog.Any("languages", profile.Languages),
		slog.String("fee_range", profile.FeeRange),
		slog.String("location", profile.Location),
		slog.Bool("has_image", profile.ImageURL != ""),
		slog.Time("submitted_at", profile.SubmittedAt),
	)

	if err := submitter.remote.Do(context); err != nil {
		return err
	}
	return submitter.next.Submit(context, profile)
}
