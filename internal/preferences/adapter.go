// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preferences

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/platform/constants"
)

// Backend hands out the [Adapter] for a client id.
type Backend interface {
	Adapter(clientID string) Adapter
}

// # Memory

// MemoryBackend keeps blobs in process memory.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: map[string][]byte{}}
}

func (backend *MemoryBackend) Adapter(clientID string) Adapter {
	return memoryAdapter{backend: backend, key: clientID}
}

// Put seeds a raw blob, e.g. to simulate stored content.
func (backend *MemoryBackend) Put(clientID string, blob []byte) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.blobs[clientID] = slices.Clone(blob)
}

type memoryAdapter struct {
	backend *MemoryBackend
	key     string
}

func (adapter memoryAdapter) Load(context.Context) ([]byte, error) {
	adapter.backend.mu.RLock()
	defer adapter.backend.mu.RUnlock()
	return slices.Clone(adapter.backend.blobs[adapter.key]), nil
}

func (adapter memoryAdapter) Save(_ context.Context, blob []byte) error {
	adapter.backend.Put(adapter.key, blob)
	return nil
}

// # Redis

// RedisBackend stores each blob under "preferences:blob:<client id>".
type RedisBackend struct {
	client redis.UniversalClient
}

func NewRedisBackend(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

func (backend *RedisBackend) Adapter(clientID string) Adapter {
	return redisAdapter{client: backend.client, key: constants.RedisPrefixPreferences + clientID}
}

type redisAdapter struct {
	client redis.UniversalClient
	key    string
}

func (adapter redisAdapter) Load(context context.Context) ([]byte, error) {
	blob, err := adapter.client.Get(context, adapter.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return blob, err
}

func (adapter redisAdapter) Save(context context.Context, blob []byte) error {
	return adapter.client.Set(context, adapter.key, blob, 0).Err()
}
