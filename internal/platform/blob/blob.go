// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blob stores uploaded onboarding profile images.

Two implementations satisfy [Store]:

  - [MinioStore]: any S3-compatible endpoint via minio-go.
  - [MemoryStore]: process-local map, used when S3_ENDPOINT is unset and in tests.
*/
package blob

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when an object key does not exist.
var ErrNotFound = errors.New("blob: object not found")

// Object describes a stored blob.
type Object struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	StoredAt    time.Time `json:"stored_at"`
}

// Store is the persistence boundary for binary uploads.
type Store interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (Object, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
