// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/platform/respond"
)

const probeTimeout = 3 * time.Second

// Probe reports whether one backing service answers.
type Probe func(ctx context.Context) error

// HealthDependencies feeds the /ready endpoint.
type HealthDependencies struct {
	// Database is critical: without PostgreSQL nothing can be served.
	Database Probe

	// Cache only degrades readiness. Content reads fall back to PostgreSQL.
	Cache Probe

	// SchemaVersion is the migration version applied at startup.
	SchemaVersion uint
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type probeResult struct {
	Name     string `json:"name"`
	OK       bool   `json:"ok"`
	Critical bool   `json:"critical"`
	Error    string `json:"error,omitempty"`
}

// NewHealthHandlers returns the GET /health and GET /ready handlers.
func NewHealthHandlers(dependencies HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: dependencies, logger: logger}
	return handler.liveness, handler.readiness
}

func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness answers 200 "ready", 200 "degraded" when only the cache is down,
// or 503 "unavailable" when the database is down.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), probeTimeout)
	defer cancel()

	probes := []struct {
		name     string
		critical bool
		probe    Probe
	}{
		{"postgres", true, handler.dependencies.Database},
		{"redis", false, handler.dependencies.Cache},
	}

	results := make([]probeResult, len(probes))
	var group errgroup.Group
	for index, entry := range probes {
		results[index] = probeResult{Name: entry.name, OK: true, Critical: entry.critical}
		if entry.probe == nil {
			continue
		}
		group.Go(func() error {
			if err := entry.probe(ctx); err != nil {
				results[index].OK = false
				results[index].Error = err.Error()
				handler.logger.WarnContext(ctx, "readiness_probe_failed",
					slog.String("dependency", entry.name),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()

	status, code := "ready", http.StatusOK
	for _, result := range results {
		switch {
		case result.OK:
		case result.Critical:
			status, code = "unavailable", http.StatusServiceUnavailable
		case status == "ready":
			status = "degraded"
		}
	}

	respond.JSON(writer, code, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldSchema: handler.dependencies.SchemaVersion,
		constants.FieldChecks: results,
	}})
}
