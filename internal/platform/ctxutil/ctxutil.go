// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries per-request values set by middleware: the
// correlation ID, the request logger and the layout viewport.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/masjid/internal/rotation"
)

// contextKey is unexported so no other package can read or overwrite these values.
type contextKey uint8

const (
	requestIDKey contextKey = iota
	loggerKey
	viewportKey
)

// lookup returns the value stored under key, or fallback when absent.
func lookup[T any](ctx context.Context, key contextKey, fallback T) T {
	if value, ok := ctx.Value(key).(T); ok {
		return value
	}
	return fallback
}

// WithRequestID attaches the X-Request-ID value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request ID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	return lookup(ctx, requestIDKey, "")
}

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := lookup[*slog.Logger](ctx, loggerKey, nil); logger != nil {
		return logger
	}
	return slog.Default()
}

// WithViewport records the layout class decided for this request.
func WithViewport(ctx context.Context, viewport rotation.Viewport) context.Context {
	return context.WithValue(ctx, viewportKey, viewport)
}

// GetViewport returns the request viewport. Desktop is assumed when unset.
func GetViewport(ctx context.Context) rotation.Viewport {
	return lookup(ctx, viewportKey, rotation.ViewportDesktop)
}
