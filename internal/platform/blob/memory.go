// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blob

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

type memoryObject struct {
	meta Object
	data []byte
}

// MemoryStore keeps objects in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

// NewMemoryStore returns an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

// Put reads the whole reader and stores it under key.
func (s *MemoryStore) Put(ctx context.Context, key string, reader io.Reader, _ int64, contentType string) (Object, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return Object{}, fmt.Errorf("blob: read upload: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	meta := Object{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         "memory://" + key,
		StoredAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.objects[key] = memoryObject{meta: meta, data: data}
	s.mu.Unlock()

	return meta, nil
}

// Delete removes key. Removing a missing key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// Get returns the stored bytes.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	object, ok := s.objects[key]
	if !ok {
		return nil, Object{}, ErrNotFound
	}
	return object.data, object.meta, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }
