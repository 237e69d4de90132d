// Copyright (c) 2026 Fyyur. All rights reserved.

// Command api is the entry point for the Fyyur HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis (flash notices).
//  5. Run database migrations (idempotent).
//  6. Wire repositories, services and handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/KonIngel/Fyyur/internal/api"
	"github.com/KonIngel/Fyyur/internal/core/artist"
	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/core/venue"
	"github.com/KonIngel/Fyyur/internal/platform/config"
	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/flash"
	"github.com/KonIngel/Fyyur/internal/platform/migration"
	pgstore "github.com/KonIngel/Fyyur/internal/platform/postgres"
	redisstore "github.com/KonIngel/Fyyur/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

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
		slog.String("venue_delete_policy", cfg.VenueDeletePolicy),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	flasher := flash.New(flash.NewRedisStore(rdb), cfg.FlashTTL)

	showRepository := show.NewPostgresRepository(pool)
	venueRepository := venue.NewPostgresRepository(pool)
	artistRepository := artist.NewPostgresRepository(pool)

	venueService := venue.NewService(venueRepository, showRepository, venue.DeletePolicy(cfg.VenueDeletePolicy), log)
	artistService := artist.NewService(artistRepository, showRepository, log)
	showService := show.NewService(showRepository, log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context context.Context) error {
			return pgstore.Ping(context, pool)
		},
		CheckFlashStore: func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		},
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Venue:     venue.NewHandler(venueService, flasher),
		Artist:    artist.NewHandler(artistService, flasher),
		Show:      show.NewHandler(showService),
		Flasher:   flasher,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// It is limited to startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
