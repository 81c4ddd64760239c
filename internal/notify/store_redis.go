// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/platform/constants"
)

// RedisStore keeps notices in one sorted set scored by expiry time, so the
// API and worker processes share a single feed.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore uses the default notices key.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, key: constants.RedisKeyNotices}
}

// Add stores the notice and extends the key lifetime to cover it.
func (store *RedisStore) Add(context context.Context, notice Notice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("notify: marshal notice: %w", err)
	}

	pipe := store.client.TxPipeline()
	pipe.ZAdd(context, store.key, redis.Z{Score: float64(notice.ExpiresAt.UnixMilli()), Member: payload})
	pipe.ExpireAt(context, store.key, notice.ExpiresAt.Add(time.Minute))

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("notify: store notice: %w", err)
	}
	return nil
}

// Active trims expired members and returns the remaining ones.
func (store *RedisStore) Active(context context.Context, now time.Time) ([]Notice, error) {
	cutoff := strconv.FormatInt(now.UnixMilli(), 10)

	if err := store.client.ZRemRangeByScore(context, store.key, "-inf", cutoff).Err(); err != nil {
		return nil, fmt.Errorf("notify: prune notices: %w", err)
	}

	members, err := store.client.ZRangeByScore(context, store.key, &redis.ZRangeBy{Min: "(" + cutoff, Max: "+inf"}).Result()
	if err != nil {
		return nil, fmt.Errorf("notify: list notices: %w", err)
	}

	notices := make([]Notice, 0, len(members))
	for _, member := range members {
		var n Notice
		if err := json.Unmarshal([]byte(member), &n); err != nil {
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}
