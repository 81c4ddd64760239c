// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command worker drains the asynq submission queue fed by the API.
//
// Onboarding profiles submitted while the API runs with both PostgreSQL and
// Redis are enqueued instead of written inline. The worker turns each one
// into a pending submission in the shared database.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/notify"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/constants"
	pgstore "github.com/taibuivan/artistly/internal/platform/postgres"
	"github.com/taibuivan/artistly/internal/platform/queue"
	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With(slog.String("app", "artistly-worker"))
	slog.SetDefault(log)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if !cfg.HasDatabase() || !cfg.HasRedis() {
		must(log, errors.New("DATABASE_URL and REDIS_URL are required"), "check backends")
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	data, err := catalog.Load(log)
	must(log, err, "load catalogue")

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer rdb.Close()

	// Profiles already waited on the simulated backend in the API.
	submissions := submission.NewService(
		submission.NewPostgresRepository(pool),
		data.SeedSubmissions,
		simulate.Instant(),
		notify.NewCenter(notify.NewRedisStore(rdb), cfg.NoticeTTL, log),
		log,
	)

	opt, err := queue.RedisOpt(cfg.RedisURL)
	must(log, err, "parse queue redis url")

	server := queue.NewServer(opt, cfg.WorkerConcurrency, log)
	processor := worker.NewProcessor(submissions, log)

	log.Info("worker_started",
		slog.String("queue", constants.QueueSubmissions),
		slog.Int("concurrency", cfg.WorkerConcurrency),
	)

	// Run blocks until SIGTERM or SIGINT and drains in-flight tasks.
	if err := server.Run(processor.Handler()); err != nil {
		log.Error("worker_stopped", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("worker_stopped")
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
