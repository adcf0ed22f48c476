// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the content cache to Redis.

Slides, notices, sermons, events and settings are cached as JSON with a short
TTL so a busy Friday does not reach PostgreSQL on every page view. This
package only builds and probes the client; key layout lives in the cache
package.
*/
package redis

import (
	"cmp"
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPoolSize = 10
	dialTimeout     = 3 * time.Second
	ioTimeout       = 2 * time.Second
	pingTimeout     = 2 * time.Second
	idleTimeout     = 5 * time.Minute
)

// Options tunes the client beyond what the URL carries.
type Options struct {
	// URL is a redis:// or rediss:// connection URL.
	URL string

	// PoolSize caps open connections (default 10). Idle connections are
	// kept in proportion.
	PoolSize int

	// Name is reported by CLIENT LIST, so the API's connections are
	// recognisable on a shared instance.
	Name string
}

// NewClient builds a client and pings it once, so a wrong URL fails at startup.
func NewClient(context stdctx.Context, options Options, logger *slog.Logger) (*redis.Client, error) {
	parsed, err := redis.ParseURL(options.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	parsed.ClientName = options.Name
	parsed.PoolSize = cmp.Or(options.PoolSize, defaultPoolSize)
	parsed.MinIdleConns = max(1, parsed.PoolSize/5)
	parsed.MaxIdleConns = max(parsed.MinIdleConns, parsed.PoolSize/2)
	parsed.ConnMaxIdleTime = idleTimeout

	parsed.DialTimeout = dialTimeout
	parsed.ReadTimeout = ioTimeout
	parsed.WriteTimeout = ioTimeout

	client := redis.NewClient(parsed)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", parsed.Addr),
		slog.Int("db", parsed.DB),
		slog.Int("pool_size", parsed.PoolSize),
	)
	return client, nil
}

// Ping reports whether Redis answers within a short deadline.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
