// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
)

// Store persists wizards between requests.
type Store interface {
	Get(context context.Context, id string) (*Wizard, error)
	Save(context context.Context, wizard *Wizard) error
}

// # Memory

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in-process. Wizards are stored serialised so
// callers never share a pointer with the store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore expires sessions after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, ttl: ttl, now: time.Now}
}

func (store *MemoryStore) Get(_ context.Context, id string) (*Wizard, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.entries[id]
	if !ok || !store.now().Before(entry.expiresAt) {
		delete(store.entries, id)
		return nil, apperr.NotFound("Onboarding session")
	}
	return decodeWizard(entry.payload)
}

func (store *MemoryStore) Save(_ context.Context, wizard *Wizard) error {
	payload, err := json.Marshal(wizard)
	if err != nil {
		return fmt.Errorf("onboarding: marshal session: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries[wizard.ID] = memoryEntry{payload: payload, expiresAt: store.now().Add(store.ttl)}
	return nil
}

// # Redis

// RedisStore keeps each session as a JSON string with a sliding TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore defaults to [constants.OnboardingSessionTTL] when ttl is zero.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = constants.OnboardingSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (store *RedisStore) Get(context context.Context, id string) (*Wizard, error) {
	payload, err := store.client.Get(context, constants.RedisPrefixOnboarding+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Onboarding session")
	}
	if err != nil {
		return nil, fmt.Errorf("onboarding: load session: %w", err)
	}
	return decodeWizard(payload)
}

func (store *RedisStore) Save(context context.Context, wizard *Wizard) error {
	payload, err := json.Marshal(wizard)
	if err != nil {
		return fmt.Errorf("onboarding: marshal session: %w", err)
	}

	if err := store.client.Set(context, constants.RedisPrefixOnboarding+wizard.ID, payload, store.ttl).Err(); err != nil {
		return fmt.Errorf("onboarding: save session: %w", err)
	}
	return nil
}

func decodeWizard(payload []byte) (*Wizard, error) {
	var wizard Wizard
	if err := json.Unmarshal(payload, &wizard); err != nil {
		return nil, fmt.Errorf("onboarding: decode session: %w", err)
	}
	if wizard.Errors == nil {
		wizard.Errors = map[string]string{}
	}
	return &wizard, nil
}
