// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file
is loaded first through 'joho/godotenv' when present; real environment
variables always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Optional backends: an empty DATABASE_URL, REDIS_URL or S3_ENDPOINT
    switches the matching component to its in-memory implementation.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Artistly API server and worker.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL). Empty keeps the static dataset in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Empty keeps sessions, preferences and notices in memory.
	RedisURL string `env:"REDIS_URL"`

	// Cryptographic keys for manager token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`

	// Manager dashboard account
	ManagerUsername     string `env:"MANAGER_USERNAME"      envDefault:"manager"`
	ManagerPasswordHash string `env:"MANAGER_PASSWORD_HASH"`
	DashboardPublic     bool   `env:"DASHBOARD_PUBLIC"      envDefault:"false"`

	// Object Storage (MinIO / S3-compatible) for onboarding profile images
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"    envDefault:"artistly-profiles"`
	S3Region    string `env:"S3_REGION"    envDefault:"us-east-1"`
	S3UseSSL    bool   `env:"S3_USE_SSL"   envDefault:"false"`

	// Simulated remote calls
	SimulatedLatency     time.Duration `env:"SIMULATED_LATENCY"      envDefault:"500ms"`
	SubmitLatency        time.Duration `env:"SUBMIT_LATENCY"         envDefault:"2s"`
	SimulatedFailureRate float64       `env:"SIMULATED_FAILURE_RATE" envDefault:"0"`

	// NoticeTTL is how long a dashboard notification stays visible.
	NoticeTTL time.Duration `env:"NOTICE_TTL" envDefault:"5s"`

	// WorkerConcurrency is the number of asynq handlers run by cmd/worker.
	WorkerConcurrency int `env:"WORKER_CONCURRENCY" envDefault:"2"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current process environment onto a [Config] without
// touching any .env file.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces cross-field rules that struct tags cannot express.
func (c *Config) Validate() error {
	if c.SimulatedFailureRate < 0 || c.SimulatedFailureRate > 1 {
		return fmt.Errorf("config: SIMULATED_FAILURE_RATE must be within [0, 1], got %v", c.SimulatedFailureRate)
	}

	if c.SimulatedLatency < 0 || c.SubmitLatency < 0 {
		return errors.New("config: simulated latencies must not be negative")
	}

	if (c.JWTPrivKeyPath == "") != (c.JWTPubKeyPath == "") {
		return errors.New("config: JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH must be set together")
	}

	if c.IsProduction() {
		if c.JWTPrivKeyPath == "" {
			return errors.New("config: JWT key paths are required in production")
		}
		if c.ManagerPasswordHash == "" {
			return errors.New("config: MANAGER_PASSWORD_HASH is required in production")
		}
		if c.DashboardPublic {
			return errors.New("config: DASHBOARD_PUBLIC cannot be enabled in production")
		}
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// HasDatabase reports whether a PostgreSQL backend is configured.
func (c *Config) HasDatabase() bool { return c.DatabaseURL != "" }

// HasRedis reports whether a Redis backend is configured.
func (c *Config) HasRedis() bool { return c.RedisURL != "" }

// HasObjectStorage reports whether an S3-compatible endpoint is configured.
func (c *Config) HasObjectStorage() bool { return c.S3Endpoint != "" }
