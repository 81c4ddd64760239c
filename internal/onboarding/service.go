// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package onboarding runs the three-step artist sign-up wizard on the server.

Each applicant gets a session holding a [Wizard]. The client patches fields,
moves between steps and finally submits; the wizard decides what is allowed
at each point. A finished profile is handed to a [Submitter], which either
creates the pending submission directly or enqueues it for the worker.
*/
package onboarding

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/blob"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/pkg/uuid"
)

// # Service Layer

// Service loads, mutates and saves wizards. Calls for the same session are
// serialised.
type Service struct {
	store     Store
	blobs     blob.Store
	submitter Submitter
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is held by the calls in flight for one session.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewService constructs a new [Service].
func NewService(store Store, blobs blob.Store, submitter Submitter, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		blobs:     blobs,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
		locks:     map[string]*sessionLock{},
	}
}

// Options returns the vocabularies and limits the form is built from.
func (service *Service) Options() Options {
	return Options{
		Sections:      sections[:],
		Categories:    categoryOptions,
		Languages:     languageOptions,
		FeeRanges:     feeRanges,
		MaxImageBytes: constants.MaxProfileImageBytes,
		MaxCategories: categoryMax,
		MaxLanguages:  languageMax,
	}
}

// Start opens a new session on the first step.
func (service *Service) Start(context context.Context) (*Wizard, error) {
	wizard := NewWizard(uuid.New(), service.now().UTC())
	if err := service.store.Save(context, wizard); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "onboarding_started", slog.String("session_id", wizard.ID))
	return wizard, nil
}

// Get returns a session.
func (service *Service) Get(context context.Context, id string) (*Wizard, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Onboarding session")
	}
	return service.store.Get(context, id)
}

// Update patches form fields.
func (service *Service) Update(context context.Context, id string, patch Patch) (*Wizard, error) {
	return service.mutate(context, id, func(wizard *Wizard) error {
		return wizard.Update(patch)
	})
}

// Next validates the current step and advances when it passes. A failed
// validation is not an error: the field errors are returned on the wizard.
func (service *Service) Next(context context.Context, id string) (*Wizard, error) {
	return service.mutate(context, id, func(wizard *Wizard) error {
		advanced, err := wizard.Next()
		if err == nil {
			service.logger.DebugContext(context, "onboarding_step_checked",
				slog.String("session_id", id),
				slog.Int("step", int(wizard.Step)),
				slog.Bool("advanced", advanced),
				slog.Int("errors", len(wizard.Errors)),
			)
		}
		return err
	})
}

// Prev moves back one step.
func (service *Service) Prev(context context.Context, id string) (*Wizard, error) {
	return service.mutate(context, id, func(wizard *Wizard) error {
		return wizard.Prev()
	})
}

/*
AttachImage uploads a profile photo and attaches it to the session.

Description: The file is checked before anything is stored. The image it
replaces is deleted from blob storage on a best-effort basis.
*/
func (service *Service) AttachImage(context context.Context, id, filename, contentType string, size int64, reader io.Reader) (*Wizard, error) {
	if err := CheckImage(contentType, size); err != nil {
		return nil, err
	}

	var previous *Image
	wizard, err := service.mutate(context, id, func(wizard *Wizard) error {
		if err := wizard.editable(); err != nil {
			return err
		}

		object, err := service.blobs.Put(context, imageKey(id, filename), reader, size, contentType)
		if err != nil {
			return err
		}

		previous, err = wizard.AttachImage(Image{
			Key:         object.Key,
			Filename:    filename,
			ContentType: contentType,
			Size:        size,
			URL:         object.URL,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if previous != nil && previous.Key != wizard.Data.ProfileImage.Key {
		service.discard(context, previous)
	}

	service.logger.InfoContext(context, "onboarding_image_attached",
		slog.String("session_id", id),
		slog.String("key", wizard.Data.ProfileImage.Key),
		slog.Int64("size", size),
	)
	return wizard, nil
}

// RemoveImage detaches the profile photo and deletes it from blob storage.
func (service *Service) RemoveImage(context context.Context, id string) (*Wizard, error) {
	var previous *Image
	wizard, err := service.mutate(context, id, func(wizard *Wizard) error {
		var err error
		previous, err = wizard.RemoveImage()
		return err
	})
	if err != nil {
		return nil, err
	}

	if previous != nil {
		service.discard(context, previous)
	}
	return wizard, nil
}

/*
Submit sends the finished profile to the configured [Submitter].

Description: The outcome is saved on the session either way, so a client can
reload it. A cancelled request saves nothing.

Returns:
  - *Wizard: The session after the attempt, also on OPERATION_FAILED
  - error: VALIDATION_ERROR, INVALID_STATE or OPERATION_FAILED
*/
func (service *Service) Submit(context context.Context, id string) (*Wizard, error) {
	unlock := service.lock(id)
	defer unlock()

	wizard, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	submitErr := wizard.Submit(context, service.submitter, service.now())
	if ctxErr := context.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	wizard.UpdatedAt = service.now().UTC()
	if err := service.store.Save(context, wizard); err != nil {
		return nil, err
	}

	if submitErr != nil {
		service.logger.WarnContext(context, "onboarding_submit_failed",
			slog.String("session_id", id),
			slog.String("phase", string(wizard.Phase)),
			slog.Any("error", submitErr),
		)
		return wizard, submitErr
	}

	service.logger.InfoContext(context, "onboarding_submitted", slog.String("session_id", id))
	return wizard, nil
}

// # Helpers

// mutate runs fn on the stored wizard under the session lock and saves it
// only when fn succeeds.
func (service *Service) mutate(context context.Context, id string, fn func(*Wizard) error) (*Wizard, error) {
	unlock := service.lock(id)
	defer unlock()

	wizard, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	if err := fn(wizard); err != nil {
		return nil, err
	}

	wizard.UpdatedAt = service.now().UTC()
	if err := service.store.Save(context, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// lock takes the session's lock. The entry is dropped with its last holder,
// so only sessions with calls in flight keep one.
func (service *Service) lock(id string) func() {
	service.mu.Lock()
	entry, ok := service.locks[id]
	if !ok {
		entry = &sessionLock{}
		service.locks[id] = entry
	}
	entry.refs++
	service.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		service.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(service.locks, id)
		}
		service.mu.Unlock()
	}
}

func (service *Service) discard(context context.Context, image *Image) {
	if err := service.blobs.Delete(context, image.Key); err != nil {
		service.logger.WarnContext(context, "onboarding_image_delete_failed",
			slog.String("key", image.Key),
			slog.Any("error", err),
		)
	}
}
