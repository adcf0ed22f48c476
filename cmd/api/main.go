// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the masjid website content API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire content, contact and homepage handlers.
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
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/masjid/internal/api"
	"github.com/taibuivan/masjid/internal/contact"
	"github.com/taibuivan/masjid/internal/content/event"
	"github.com/taibuivan/masjid/internal/content/notice"
	"github.com/taibuivan/masjid/internal/content/sermon"
	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/content/slide"
	"github.com/taibuivan/masjid/internal/home"
	"github.com/taibuivan/masjid/internal/platform/cache"
	"github.com/taibuivan/masjid/internal/platform/config"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/platform/middleware"
	"github.com/taibuivan/masjid/internal/platform/migration"
	pgstore "github.com/taibuivan/masjid/internal/platform/postgres"
	redisstore "github.com/taibuivan/masjid/internal/platform/redis"
	"github.com/taibuivan/masjid/internal/rotation"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String(constants.FieldVersion, constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String(constants.FieldApp, constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Duration("hero_interval", cfg.Rotation.HeroInterval),
	)

	// Startup deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives for the whole process; background limiter sweeps stop with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, pgstore.Options{
		DSN:             cfg.DatabaseURL,
		MaxConns:        cfg.DatabaseMaxConns,
		ApplicationName: constants.AppName,
	}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, redisstore.Options{
		URL:      cfg.RedisURL,
		PoolSize: cfg.RedisPoolSize,
		Name:     constants.AppName,
	}, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	schemaVersion, err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
	must(log, err, "run migrations")

	contentCache := cache.New(rdb, cfg.CacheTTL, log)

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Database: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		Cache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
		SchemaVersion: schemaVersion,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	slideService := slide.NewService(slide.NewPostgresRepository(pool), contentCache, log)
	noticeService := notice.NewService(notice.NewPostgresRepository(pool), contentCache, log)
	sermonService := sermon.NewService(sermon.NewPostgresRepository(pool), contentCache, log)
	eventService := event.NewService(event.NewPostgresRepository(pool), contentCache, log)
	settingsService := settings.NewService(settings.NewPostgresRepository(pool), contentCache, log)

	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	contactLimiter := middleware.NewRateLimiter(rootCtx, rate.Limit(constants.ContactRateLimitRPS), constants.ContactRateLimitBurst)

	homeService := home.NewService(home.Sources{
		Slides:   slideService,
		Notices:  noticeService,
		Sermons:  sermonService,
		Events:   eventService,
		Settings: settingsService,
	}, cfg.Rotation, rotation.NewScheduler(constants.FrameInterval), log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Slide:     slide.NewHandler(slideService),
		Notice:    notice.NewHandler(noticeService),
		Sermon:    sermon.NewHandler(sermonService),
		Event:     event.NewHandler(eventService),
		Settings:  settings.NewHandler(settingsService),
		Contact:   contact.NewHandler(contactService, contactLimiter),
		Home:      home.NewHandler(homeService),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Shutdown ends hero streams first; their rotators unmount before the drain.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
