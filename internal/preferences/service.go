// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preferences

import (
	"context"
	"log/slog"
	"sync"
)

// Service opens the client's [Store] for each call, so every read sees the
// backend's latest blob and nothing is retained once the call returns.
//
// Calls for the same client id are serialized inside the process so a
// dispatch never writes over a concurrent one.
type Service struct {
	backend Backend
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[string]*clientLock
}

// clientLock is held by the calls in flight for one client id.
type clientLock struct {
	mu   sync.Mutex
	refs int
}

// NewService constructs a new [Service].
func NewService(backend Backend, logger *slog.Logger) *Service {
	return &Service{backend: backend, logger: logger, locks: map[string]*clientLock{}}
}

// Get returns the client's current state.
func (service *Service) Get(context context.Context, clientID string) (State, error) {
	unlock := service.lock(clientID)
	defer unlock()

	store, err := service.open(context, clientID)
	if err != nil {
		return State{}, err
	}
	return store.Get(), nil
}

// Dispatch applies an action to the client's state.
func (service *Service) Dispatch(context context.Context, clientID string, action Action) (State, error) {
	unlock := service.lock(clientID)
	defer unlock()

	store, err := service.open(context, clientID)
	if err != nil {
		return State{}, err
	}
	return store.Dispatch(context, action)
}

// open loads the client's store and logs every change made through it.
func (service *Service) open(context context.Context, clientID string) (*Store, error) {
	store, err := Open(context, service.backend.Adapter(clientID), service.logger)
	if err != nil {
		return nil, err
	}

	store.Subscribe(func(state State) {
		service.logger.Debug("preferences_changed",
			slog.String("client_id", clientID),
			slog.Int("favorites", len(state.Favorites)),
			slog.Int("searches", len(state.SearchHistory)),
		)
	})
	return store, nil
}

// lock takes the client's lock. The entry is dropped with its last holder.
func (service *Service) lock(clientID string) func() {
	service.mu.Lock()
	entry, ok := service.locks[clientID]
	if !ok {
		entry = &clientLock{}
		service.locks[clientID] = entry
	}
	entry.refs++
	service.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		service.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(service.locks, clientID)
		}
		service.mu.Unlock()
	}
}

