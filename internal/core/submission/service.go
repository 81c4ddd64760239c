// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/slice"
)

// Notifier receives the outcome of every review action.
type Notifier interface {
	Success(context context.Context, message string)
	Failure(context context.Context, message string)
}

// # Service Layer

// Service applies manager actions to the submission list.
type Service struct {
	repo     Repository
	seed     func() []Submission
	remote   *simulate.Call
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new [Service].
//
// seed supplies the dataset [Service.Refresh] reloads. remote is the
// simulated backend every list and mutation waits on.
func NewService(repo Repository, seed func() []Submission, remote *simulate.Call, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		seed:     seed,
		remote:   remote,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// # Queries

/*
List returns the submissions matching term, in store order.

Description: A blank term returns everything. Matching is a case-insensitive
substring test over name, category, city and email.

Returns:
  - []Submission: Never nil
  - error: OPERATION_FAILED when the simulated fetch fails
*/
func (service *Service) List(context context.Context, term string) ([]Submission, error) {
	if err := service.call(context); err != nil {
		return nil, service.fail(context, err, "Failed to load submissions")
	}

	records, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	return slice.Filter(records, func(s Submission) bool { return s.Matches(term) }), nil
}

// Get returns a single submission for the details view.
func (service *Service) Get(context context.Context, id int) (Submission, error) {
	return service.repo.Get(context, id)
}

// Stats counts the current list by status. It is always derived, never stored.
func (service *Service) Stats(context context.Context) (Stats, error) {
	records, err := service.repo.List(context)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(records), nil
}

// Summarize counts records by status.
func Summarize(records []Submission) Stats {
	return Stats{
		Total:    len(records),
		Pending:  slice.Count(records, hasStatus(StatusPending)),
		Approved: slice.Count(records, hasStatus(StatusApproved)),
		Rejected: slice.Count(records, hasStatus(StatusRejected)),
	}
}

func hasStatus(status Status) func(Submission) bool {
	return func(s Submission) bool { return s.Status == status }
}

// # Review Actions

// Approve marks a submission approved. An unknown id is a silent no-op.
func (service *Service) Approve(context context.Context, id int) error {
	return service.setStatus(context, id, StatusApproved, "approve")
}

// Reject marks a submission rejected. An unknown id is a silent no-op.
func (service *Service) Reject(context context.Context, id int) error {
	return service.setStatus(context, id, StatusRejected, "reject")
}

func (service *Service) setStatus(context context.Context, id int, status Status, verb string) error {
	if err := service.call(context); err != nil {
		return service.fail(context, err, fmt.Sprintf("Failed to %s submission", verb))
	}

	found, err := service.repo.SetStatus(context, id, status)
	if err != nil {
		return service.fail(context, err, fmt.Sprintf("Failed to %s submission", verb))
	}

	service.logger.InfoContext(context, "submission_status_updated",
		slog.Int("submission_id", id),
		slog.String("status", string(status)),
		slog.Bool("found", found),
	)

	service.notifier.Success(context, fmt.Sprintf("Submission %s successfully", status))
	return nil
}

/*
Delete removes a submission permanently.

Description: The caller must pass confirmed=true, otherwise nothing happens
and CONFIRMATION_REQUIRED is returned. An unknown id is a silent no-op.
*/
func (service *Service) Delete(context context.Context, id int, confirmed bool) error {
	if !confirmed {
		return apperr.ConfirmationRequired("Are you sure you want to delete this submission? This cannot be undone.")
	}

	if err := service.call(context); err != nil {
		return service.fail(context, err, "Failed to delete submission")
	}

	found, err := service.repo.Delete(context, id)
	if err != nil {
		return service.fail(context, err, "Failed to delete submission")
	}

	service.logger.WarnContext(context, "submission_deleted",
		slog.Int("submission_id", id),
		slog.Bool("found", found),
	)

	service.notifier.Success(context, "Submission deleted successfully")
	return nil
}

// Refresh discards local changes and reloads the seed dataset.
func (service *Service) Refresh(context context.Context) ([]Submission, error) {
	if err := service.call(context); err != nil {
		return nil, service.fail(context, err, "Failed to load submissions")
	}

	records := slices.Clone(service.seed())
	if err := service.repo.Replace(context, records); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "submissions_refreshed", slog.Int("count", len(records)))
	return records, nil
}

// # Intake

// Create appends a new pending submission, e.g. from a finished onboarding.
func (service *Service) Create(context context.Context, input CreateInput) (Submission, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		Required(FieldCategory, input.Category).
		Required(FieldCity, input.City)
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		return Submission{}, err
	}

	created, err := service.repo.Create(context, Submission{
		Name:        input.Name,
		Category:    input.Category,
		City:        input.City,
		Fee:         input.Fee,
		Email:       input.Email,
		Phone:       input.Phone,
		Status:      StatusPending,
		SubmittedAt: service.now().UTC().Format(time.DateOnly),
	})
	if err != nil {
		return Submission{}, err
	}

	service.logger.InfoContext(context, "submission_created",
		slog.Int("submission_id", created.ID),
		slog.String("name", created.Name),
		slog.String("category", created.Category),
	)

	service.notifier.Success(context, fmt.Sprintf("New submission from %s is pending review", created.Name))
	return created, nil
}

// # Helpers

// call waits on the simulated backend. A cancelled request never mutates.
func (service *Service) call(context context.Context) error {
	return service.remote.Do(context)
}

// fail reports a failed action to the dashboard and maps it to an AppError.
func (service *Service) fail(context context.Context, err error, message string) error {
	if ctxErr := context.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}

	service.logger.ErrorContext(context, "submission_action_failed",
		slog.String("message", message),
		slog.Any("error", err),
	)
	service.notifier.Failure(context, message)

	if errors.Is(err, simulate.ErrRemoteFailure) {
		return apperr.OperationFailed(message, err)
	}
	return err
}
