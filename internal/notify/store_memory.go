// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps notices in process memory and prunes expired ones on access.
type MemoryStore struct {
	mu      sync.Mutex
	notices []Notice
}

// NewMemoryStore returns an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends a notice.
func (store *MemoryStore) Add(_ context.Context, notice Notice) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.notices = append(store.notices, notice)
	return nil
}

// Active drops expired notices and returns a copy of the rest.
func (store *MemoryStore) Active(_ context.Context, now time.Time) ([]Notice, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	live := store.notices[:0]
	for _, n := range store.notices {
		if n.ExpiresAt.After(now) {
			live = append(live, n)
		}
	}
	store.notices = live

	out := make([]Notice, len(live))
	copy(out, live)
	return out, nil
}
