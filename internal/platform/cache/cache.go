// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache provides a read-through JSON cache on top of Redis.

Content services wrap their repository reads with [Remember]. A hit is decoded
from Redis; a miss loads from PostgreSQL and stores the result with the
configured TTL. Redis is an accelerator, never a dependency: any cache error
is logged and the load function is used instead.

Nothing deletes entries: the CMS writes PostgreSQL directly, so an edit
shows up once the TTL runs out.

Keys are namespaced with [constants.RedisPrefixContent].
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a JSON cache bound to one Redis client and TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New constructs a [Store].
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{client: client, ttl: ttl, logger: logger}
}

/*
Get decodes the value at key into target.

Returns:
  - bool: false on a miss
  - error: Connectivity or decoding errors
*/
func (store *Store) Get(context context.Context, key string, target any) (bool, error) {
	raw, err := store.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache_get_failed: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("cache_decode_failed: %w", err)
	}
	return true, nil
}

// Set encodes value as JSON and stores it with the store TTL.
func (store *Store) Set(context context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache_encode_failed: %w", err)
	}

	if err := store.client.Set(context, key, raw, store.ttl).Err(); err != nil {
		return fmt.Errorf("cache_set_failed: %w", err)
	}
	return nil
}

/*
Remember returns the cached value at key, or calls load and caches its result.

A nil store disables caching. Errors from load are returned unchanged and
nothing is cached.
*/
func Remember[T any](context context.Context, store *Store, key string, load func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return load(context)
	}

	// 1. Try the cache
	var cached T
	found, err := store.Get(context, key, &cached)
	if err != nil {
		store.logger.WarnContext(context, "cache_read_fallback", slog.String("key", key), slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	// 2. Load from the source of truth
	value, err := load(context)
	if err != nil {
		return value, err
	}

	// 3. Populate for the next reader
	if err := store.Set(context, key, value); err != nil {
		store.logger.WarnContext(context, "cache_write_skipped", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}
