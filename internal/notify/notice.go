// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notify keeps the short-lived toast notices shown on the dashboard.

Every submission action reports its outcome here. A notice disappears on its
own once its TTL has passed; nothing ever deletes one explicitly.
*/
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/artistly/pkg/uuid"
)

// Kind tells the client how to style a notice.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is a single transient message.
type Notice struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists notices until they expire.
type Store interface {
	Add(context context.Context, notice Notice) error

	// Active returns notices with ExpiresAt after now, oldest first.
	Active(context context.Context, now time.Time) ([]Notice, error)
}

// Center stamps and stores notices.
type Center struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewCenter builds a [Center] whose notices live for ttl.
func NewCenter(store Store, ttl time.Duration, logger *slog.Logger) *Center {
	return &Center{store: store, ttl: ttl, now: time.Now, logger: logger}
}

// Push records a notice. A storage failure is logged and returned, but
// callers treat notices as best effort.
func (center *Center) Push(context context.Context, kind Kind, message string) (Notice, error) {
	now := center.now().UTC()
	notice := Notice{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(center.ttl),
	}

	if err := center.store.Add(context, notice); err != nil {
		center.logger.WarnContext(context, "notice_store_failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return Notice{}, err
	}

	return notice, nil
}

// Success is shorthand for a [KindSuccess] notice.
func (center *Center) Success(context context.Context, message string) {
	_, _ = center.Push(context, KindSuccess, message)
}

// Failure is shorthand for a [KindError] notice.
func (center *Center) Failure(context context.Context, message string) {
	_, _ = center.Push(context, KindError, message)
}

// Active lists the notices that have not expired yet.
func (center *Center) Active(context context.Context) ([]Notice, error) {
	return center.store.Active(context, center.now().UTC())
}
