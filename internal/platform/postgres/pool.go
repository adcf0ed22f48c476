// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres opens the pgx pool shared by the content repositories.
//
// The CMS owns the "site" schema and writes to it; this service reads
// published rows and appends contact messages. Every connection therefore
// runs with a statement timeout and "site" first on its search path.
package postgres

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/masjid/internal/platform/constants"
)

const (
	defaultMaxConns   = 10
	connLifetime      = time.Hour
	connIdleTime      = 10 * time.Minute
	healthCheckPeriod = time.Minute
	connectTimeout    = 5 * time.Second
	pingTimeout       = 2 * time.Second
)

// Options tunes the pool beyond what the DSN carries.
type Options struct {
	// DSN is a postgres:// URL or libpq keyword string.
	DSN string

	// MaxConns caps the pool (default 10). A fifth of it is kept warm.
	MaxConns int32

	// ApplicationName shows up in pg_stat_activity.
	ApplicationName string
}

// NewPool connects and pings once, so a wrong DSN fails at startup.
func NewPool(ctx context.Context, options Options, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(options.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	poolConfig.MaxConns = cmp.Or(options.MaxConns, defaultMaxConns)
	poolConfig.MinConns = max(1, poolConfig.MaxConns/5)
	poolConfig.MaxConnLifetime = connLifetime
	poolConfig.MaxConnIdleTime = connIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout
	if options.ApplicationName != "" {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = options.ApplicationName
	}
	poolConfig.AfterConnect = prepareSession

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_connected",
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(poolConfig.MaxConns)),
		slog.Int("min_conns", int(poolConfig.MinConns)),
	)
	return pool, nil
}

// prepareSession runs on every new physical connection.
func prepareSession(ctx context.Context, connection *pgx.Conn) error {
	statements := []string{
		fmt.Sprintf("SET statement_timeout = '%dms'", constants.GlobalRequestTimeout.Milliseconds()),
		fmt.Sprintf("SET search_path = %s, public", pgx.Identifier{constants.SchemaSite}.Sanitize()),
	}
	for _, statement := range statements {
		if _, err := connection.Exec(ctx, statement); err != nil {
			return fmt.Errorf("postgres: prepare session: %w", err)
		}
	}
	return nil
}

// Ping reports whether the pool can reach PostgreSQL within a short deadline.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}
