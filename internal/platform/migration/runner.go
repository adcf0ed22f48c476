// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration brings the "site" schema up to date before the server
// accepts traffic.
//
// The SQL files are embedded from package data. MIGRATION_PATH points the
// runner at a directory instead, which is how the CMS team tests a new
// migration against a copy of production.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/taibuivan/masjid/data"
)

// ErrDirty means a previous run failed halfway and needs a manual force.
var ErrDirty = errors.New("migration: database is dirty")

// RunUp applies pending migrations and returns the resulting schema version.
// dir selects a directory of .sql files; empty uses the embedded set.
func RunUp(dsn, dir string, logger *slog.Logger) (uint, error) {
	migrator, err := open(PgxURL(dsn), dir)
	if err != nil {
		return 0, fmt.Errorf("migration: open: %w", err)
	}
	defer func() {
		sourceErr, databaseErr := migrator.Close()
		if closeErr := errors.Join(sourceErr, databaseErr); closeErr != nil {
			logger.Warn("migration_close_failed", slog.Any("error", closeErr))
		}
	}()
	migrator.Log = slogBridge{logger: logger}

	from, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return 0, fmt.Errorf("migration: read version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w at version %d", ErrDirty, from)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migration: up: %w", err)
	}

	to, _, err := migrator.Version()
	if err != nil {
		return from, fmt.Errorf("migration: read version: %w", err)
	}

	logger.Info("migration_complete",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
		slog.String("source", sourceName(dir)),
	)
	return to, nil
}

func open(databaseURL, dir string) (*migrate.Migrate, error) {
	if dir != "" {
		return migrate.New("file://"+dir, databaseURL)
	}

	source, err := iofs.New(data.Migrations, data.MigrationsDir)
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", source, databaseURL)
}

func sourceName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}

// PgxURL rewrites a postgres:// or postgresql:// URL to the pgx5:// scheme
// the golang-migrate pgx driver registers. Other values pass through.
func PgxURL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogBridge sends golang-migrate's progress lines to the debug level.
type slogBridge struct {
	logger *slog.Logger
}

func (bridge slogBridge) Printf(format string, args ...any) {
	bridge.logger.Debug("migration_progress", slog.String("line", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (bridge slogBridge) Verbose() bool {
	return bridge.logger.Enabled(context.Background(), slog.LevelDebug)
}
