// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Artistly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load and validate the embedded catalogue.
//  4. Connect to the optional backends (PostgreSQL, Redis, MinIO).
//  5. Run database migrations and seed empty tables.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// Every backend is optional. A missing URL selects the in-memory
// implementation so the server runs from a bare checkout.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/api"
	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/notify"
	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/platform/blob"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/migration"
	pgstore "github.com/taibuivan/artistly/internal/platform/postgres"
	"github.com/taibuivan/artistly/internal/platform/queue"
	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
	"github.com/taibuivan/artistly/internal/platform/sec"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/internal/preferences"
	"github.com/taibuivan/artistly/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("[Artistly] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("postgres", cfg.HasDatabase()),
		slog.Bool("redis", cfg.HasRedis()),
		slog.Bool("object_storage", cfg.HasObjectStorage()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Catalogue ──────────────────────────────────────────────────────
	data, err := catalog.Load(log)
	must(log, err, "load catalogue")

	health := api.HealthDependencies{}

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	var (
		artistRepo     artist.Repository     = artist.NewMemoryRepository(data.Artists)
		submissionRepo submission.Repository = submission.NewMemoryRepository(data.SeedSubmissions())
	)

	if cfg.HasDatabase() {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		artists, submissions, err := seedDatabase(startupCtx, pool, data, log)
		must(log, err, "seed database")

		artistRepo, submissionRepo = artists, submissions
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}

	// ── 5. Redis ──────────────────────────────────────────────────────────
	var (
		noticeStore  notify.Store        = notify.NewMemoryStore()
		sessionStore onboarding.Store    = onboarding.NewMemoryStore(constants.OnboardingSessionTTL)
		prefsBackend preferences.Backend = preferences.NewMemoryBackend()
		queueClient  *queue.Client
	)

	if cfg.HasRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		noticeStore = notify.NewRedisStore(rdb)
		sessionStore = onboarding.NewRedisStore(rdb, constants.OnboardingSessionTTL)
		prefsBackend = preferences.NewRedisBackend(rdb)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }

		// The worker only shares state with the API through PostgreSQL, so
		// queued submissions need both backends.
		if cfg.HasDatabase() {
			opt, err := queue.RedisOpt(cfg.RedisURL)
			must(log, err, "parse queue redis url")

			queueClient = queue.NewClient(opt)
			defer func() {
				if cerr := queueClient.Close(); cerr != nil {
					log.Error("queue_close_failed", slog.Any("error", cerr))
				}
			}()
		}
	}

	// ── 6. Object Storage ─────────────────────────────────────────────────
	var images blob.Store = blob.NewMemoryStore()

	if cfg.HasObjectStorage() {
		store, err := blob.NewMinioStore(blob.MinioConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			UseSSL:    cfg.S3UseSSL,
		})
		must(log, err, "create object storage client")
		must(log, store.EnsureBucket(startupCtx), "ensure object storage bucket")

		images = store
		health.CheckStorage = store.Ping
	}

	// ── 7. Auth Service ───────────────────────────────────────────────────
	tokens, err := newTokenService(cfg, log)
	must(log, err, "initialize jwt service")

	if cfg.ManagerPasswordHash == "" {
		log.Warn("manager_login_disabled", slog.String("reason", "MANAGER_PASSWORD_HASH is empty"))
	} else {
		must(log, sec.ValidateHash(cfg.ManagerPasswordHash), "validate MANAGER_PASSWORD_HASH")
	}

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	center := notify.NewCenter(noticeStore, cfg.NoticeTTL, log)

	reviewService := submission.NewService(
		submissionRepo,
		data.SeedSubmissions,
		simulate.New(cfg.SimulatedLatency, cfg.SimulatedFailureRate),
		center,
		log,
	)

	var next onboarding.Submitter = onboarding.NewDirectSubmitter(reviewService)
	if queueClient != nil {
		next = onboarding.NewQueueSubmitter(queueClient, log)
	}
	submitter := onboarding.NewRemoteSubmitter(simulate.New(cfg.SubmitLatency, cfg.SimulatedFailureRate), next, log)

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth: auth.NewHandler(auth.NewService(auth.Credentials{
			Username:     cfg.ManagerUsername,
			PasswordHash: cfg.ManagerPasswordHash,
		}, tokens, log)),
		Artists:       artist.NewHandler(artist.NewService(artistRepo, log)),
		Onboarding:    onboarding.NewHandler(onboarding.NewService(sessionStore, images, submitter, log)),
		Submissions:   submission.NewHandler(reviewService),
		Notifications: notify.NewHandler(center),
		Preferences:   preferences.NewHandler(preferences.NewService(prefsBackend, log)),
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger shared by every entry, tagged with the app name.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// seedDatabase loads the embedded catalogue into PostgreSQL.
//
// Artists are upserted on every start. Submissions are only seeded into an
// empty table so review decisions survive restarts.
func seedDatabase(context context.Context, pool *pgxpool.Pool, data *catalog.Catalog, log *slog.Logger) (*artist.PostgresRepository, *submission.PostgresRepository, error) {
	artists := artist.NewPostgresRepository(pool)
	if err := artists.Upsert(context, data.Artists); err != nil {
		return nil, nil, err
	}

	submissions := submission.NewPostgresRepository(pool)
	existing, err := submissions.List(context)
	if err != nil {
		return nil, nil, err
	}

	if len(existing) == 0 {
		if err := submissions.Replace(context, data.SeedSubmissions()); err != nil {
			return nil, nil, err
		}
		log.Info("submissions_seeded", slog.Int("count", len(data.Submissions)))
	}

	return artists, submissions, nil
}

// newTokenService loads the RSA key pair, or generates a throwaway one in
// development when no key paths are configured.
func newTokenService(cfg *config.Config, log *slog.Logger) (*sec.TokenService, error) {
	if cfg.JWTPrivKeyPath != "" {
		return sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	}

	log.Warn("jwt_ephemeral_keys", slog.String("reason", "JWT key paths are not set"))
	return sec.NewEphemeralTokenService(constants.AuthIssuer)
}

func closeRedis(log *slog.Logger, client *redis.Client) {
	log.Info("closing redis client")
	if cerr := client.Close(); cerr != nil {
		log.Error("redis close error", slog.Any("error", cerr))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
