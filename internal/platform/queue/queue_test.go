// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package queue_test

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/queue"
)

func TestRedisOpt(t *testing.T) {
	opt, err := queue.RedisOpt("redis://localhost:6379/2")
	require.NoError(t, err)

	clientOpt, ok := opt.(asynq.RedisClientOpt)
	require.True(t, ok)
	assert.Equal(t, "localhost:6379", clientOpt.Addr)
	assert.Equal(t, 2, clientOpt.DB)

	_, err = queue.RedisOpt("http://nope")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	task := asynq.NewTask("submission:create", []byte(`{"name":"Priya"}`))

	var payload struct {
		Name string `json:"name"`
	}
	require.NoError(t, queue.Decode(task, &payload))
	assert.Equal(t, "Priya", payload.Name)

	bad := asynq.NewTask("submission:create", []byte(`{`))
	assert.Error(t, queue.Decode(bad, &payload))
}
