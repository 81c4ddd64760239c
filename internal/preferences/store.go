// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Adapter reads and writes one visitor's raw preferences blob.
type Adapter interface {
	// Load returns nil when nothing has been saved yet.
	Load(context context.Context) ([]byte, error)
	Save(context context.Context, blob []byte) error
}

// Store is a single-writer holder of one visitor's [State].
type Store struct {
	adapter Adapter
	logger  *slog.Logger

	mu          sync.Mutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

/*
Open reads the blob once and returns a store over it.

Description: Missing content starts from [Empty]. Content that does not
decode is logged and discarded in favour of [Empty].

Returns:
  - error: Only when the adapter itself fails
*/
func Open(context context.Context, adapter Adapter, logger *slog.Logger) (*Store, error) {
	blob, err := adapter.Load(context)
	if err != nil {
		return nil, fmt.Errorf("preferences: load: %w", err)
	}

	state := Empty()
	if len(blob) > 0 {
		var decoded State
		if err := json.Unmarshal(blob, &decoded); err != nil {
			logger.WarnContext(context, "preferences_state_corrupt",
				slog.Int("bytes", len(blob)),
				slog.Any("error", err),
			)
		} else {
			state = decoded.clone()
		}
	}

	return &Store{
		adapter:     adapter,
		logger:      logger,
		state:       state,
		subscribers: map[int]func(State){},
	}, nil
}

// Get returns a copy of the current state.
func (store *Store) Get() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.clone()
}

// Subscribe registers fn to receive every new state. The returned function
// removes the subscription.
func (store *Store) Subscribe(fn func(State)) func() {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.nextID
	store.nextID++
	store.subscribers[id] = fn

	return func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		delete(store.subscribers, id)
	}
}

// Dispatch applies the action, writes the whole blob and then notifies
// subscribers. When the write fails the state is left unchanged.
func (store *Store) Dispatch(context context.Context, action Action) (State, error) {
	store.mu.Lock()

	next := action.Apply(store.state)

	blob, err := json.Marshal(next)
	if err != nil {
		store.mu.Unlock()
		return State{}, fmt.Errorf("preferences: marshal: %w", err)
	}

	if err := store.adapter.Save(context, blob); err != nil {
		store.mu.Unlock()
		return State{}, fmt.Errorf("preferences: save: %w", err)
	}

	store.state = next
	listeners := make([]func(State), 0, len(store.subscribers))
	for _, fn := range store.subscribers {
		listeners = append(listeners, fn)
	}
	store.mu.Unlock()

	for _, fn := range listeners {
		fn(next.clone())
	}
	return next.clone(), nil
}
