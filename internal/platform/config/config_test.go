// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 500*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, 2*time.Second, cfg.SubmitLatency)
	assert.Equal(t, 5*time.Second, cfg.NoticeTTL)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasRedis())
	assert.False(t, cfg.HasObjectStorage())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SIMULATED_LATENCY", "0s")
	t.Setenv("EXTRA_ORIGINS", "https://artistly.app, https://staging.artistly.app ,")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Zero(t, cfg.SimulatedLatency)
	assert.Equal(t, []string{"https://artistly.app", "https://staging.artistly.app"}, cfg.AllowedOrigins())
	assert.True(t, cfg.HasRedis())
}

func TestParse_RejectsBadFailureRate(t *testing.T) {
	t.Setenv("SIMULATED_FAILURE_RATE", "1.5")

	_, err := config.Parse()
	assert.Error(t, err)
}

func TestParse_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := config.Parse()
	assert.ErrorContains(t, err, "JWT key paths")
}

func TestParse_KeyPathsTogether(t *testing.T) {
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")

	_, err := config.Parse()
	assert.Error(t, err)
}
