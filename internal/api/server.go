// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Request/response routes run under the global timeout; the hero stream does not.
*/
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/taibuivan/masjid/internal/contact"
	"github.com/taibuivan/masjid/internal/content/event"
	"github.com/taibuivan/masjid/internal/content/notice"
	"github.com/taibuivan/masjid/internal/content/sermon"
	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/content/slide"
	"github.com/taibuivan/masjid/internal/home"
	"github.com/taibuivan/masjid/internal/platform/config"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger

	// closeStreams ends long-lived responses. http.Server.Shutdown never
	// cancels active request contexts on its own.
	closeStreams context.CancelFunc
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler; it returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; it returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Content collections.
	Slide    *slide.Handler
	Notice   *notice.Handler
	Sermon   *sermon.Handler
	Event    *event.Handler
	Settings *settings.Handler

	// Contact accepts contact form submissions.
	Contact *contact.Handler

	// Home composes the homepage and streams the hero banner.
	Home *home.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The read rate limiter and open streams live
// until root ends.
func NewServer(root context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()
	streams, closeStreams := context.WithCancel(root)

	readLimiter := middleware.NewRateLimiter(root, rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.Viewport())
	r.Use(middleware.StructuredLogger(log))
	r.Use(readLimiter.Middleware())
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {

		// ## Bounded requests
		api.Group(func(timed chi.Router) {
			timed.Use(chimw.Timeout(constants.GlobalRequestTimeout))

			timed.Mount("/slides", h.Slide.Routes())
			timed.Mount("/notices", h.Notice.Routes())
			timed.Mount("/sermons", h.Sermon.Routes())
			timed.Mount("/events", h.Event.Routes())
			timed.Mount("/settings", h.Settings.Routes())
			timed.Mount("/contact", h.Contact.Routes())
			timed.Mount("/home", h.Home.Routes())
		})

		// ## Streams
		api.Get("/home/hero/stream", endOnShutdown(streams, h.Home.StreamHero))
	})

	server := &Server{
		router:       r,
		log:          log,
		closeStreams: closeStreams,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
	server.httpServer.RegisterOnShutdown(closeStreams)
	return server
}

// endOnShutdown cancels the request context of a streaming handler once
// streams is done, so its deferred cleanup runs while Shutdown waits.
func endOnShutdown(streams context.Context, next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx, cancel := context.WithCancel(request.Context())
		defer cancel()

		stop := context.AfterFunc(streams, cancel)
		defer stop()

		next(writer, request.WithContext(ctx))
	}
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on listener until the server is closed.
func (s *Server) Serve(listener net.Listener) error {
	s.log.Info("server starting", slog.String("addr", listener.Addr().String()))
	return s.httpServer.Serve(listener)
}

// Shutdown ends open hero streams, which unmounts their rotators, then
// waits for in-flight requests up to timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.closeStreams()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
