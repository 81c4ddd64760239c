// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package queue wraps asynq for background jobs.

The API enqueues JSON payloads with [Client.Enqueue]; cmd/worker runs the
handlers registered on an [asynq.ServeMux] inside an asynq server built by [NewServer].
Both sides share the REDIS_URL connection string.
*/
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/taibuivan/artistly/internal/platform/constants"
)

// RedisOpt converts a redis:// URL into asynq connection options.
func RedisOpt(redisURL string) (asynq.RedisConnOpt, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("queue: invalid redis URL: %w", err)
	}
	return opt, nil
}

// Client enqueues tasks.
type Client struct {
	client *asynq.Client
}

// NewClient builds a [Client] over the given Redis connection.
func NewClient(opt asynq.RedisConnOpt) *Client {
	return &Client{client: asynq.NewClient(opt)}
}

// Enqueue marshals payload and schedules a task on the submissions queue.
func (c *Client) Enqueue(ctx context.Context, taskType string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("queue: marshal payload: %w", err)
	}

	task := asynq.NewTask(taskType, data)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueSubmissions),
		asynq.MaxRetry(constants.SubmissionTaskRetries),
	)
	if err != nil {
		return "", fmt.Errorf("queue: enqueue %s: %w", taskType, err)
	}

	return info.ID, nil
}

// Close releases the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Decode unmarshals a task payload into target.
func Decode(task *asynq.Task, target any) error {
	if err := json.Unmarshal(task.Payload(), target); err != nil {
		return fmt.Errorf("queue: decode %s payload: %w", task.Type(), err)
	}
	return nil
}

// NewServer builds the asynq server used by cmd/worker.
func NewServer(opt asynq.RedisConnOpt, concurrency int, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{constants.QueueSubmissions: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.ErrorContext(ctx, "queue_task_failed",
				slog.String("task_type", task.Type()),
				slog.Any("error", err),
			)
		}),
	})
}
