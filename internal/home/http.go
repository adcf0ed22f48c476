// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/masjid/internal/platform/apperr"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/masjid/internal/platform/request"
	"github.com/taibuivan/masjid/internal/platform/respond"
	"github.com/taibuivan/masjid/internal/rotation"
)

// Event names on the hero stream.
const (
	eventSlide = "slide"
)

// Handler implements the HTTP layer for the homepage.
type Handler struct {
	service   *Service
	keepAlive time.Duration
}

// NewHandler constructs a new home [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, keepAlive: constants.StreamKeepAlive}
}

// WithKeepAlive overrides the idle comment interval of the hero stream.
func (handler *Handler) WithKeepAlive(interval time.Duration) *Handler {
	handler.keepAlive = interval
	return handler
}

// Routes returns the request/response homepage endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getPage)
	return router
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.Compose(request.Context(), ctxutil.GetViewport(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

/*
StreamHero runs one hero rotator for the lifetime of the connection.

The current slide is sent immediately, then once per change. An optional
?select=i starts with a manual selection and its cool-down. The rotator is
unmounted when the client goes away. It must be routed outside the request
timeout.
*/
func (handler *Handler) StreamHero(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)
	viewport := ctxutil.GetViewport(ctx)

	// 1. Validate and load slides before committing to a stream
	selected, hasSelection := requestutil.QueryInt(request, "select")
	if !hasSelection && requestutil.Query(request, "select") != "" {
		respond.Error(writer, request, apperr.BadRequest("select must be a slide index"))
		return
	}

	slides, err := handler.service.Slides(ctx)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if len(slides) == 0 {
		respond.NoContent(writer)
		return
	}

	// 2. Mount a rotator whose changes wake the writer loop
	changed := make(chan struct{}, 1)
	rotator := handler.service.NewHeroRotator(slides, func(rotation.RotationState) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	rotator.Mount()
	defer rotator.Unmount()

	if hasSelection {
		rotator.Select(selected)
	}

	// 3. Streams outlive the server write timeout
	controller := http.NewResponseController(writer)
	_ = controller.SetWriteDeadline(time.Time{})
	respond.StreamHeaders(writer)

	send := func() bool {
		view, ok := rotator.Render(viewport)
		if !ok {
			return true
		}
		if err := respond.Event(writer, eventSlide, view); err != nil {
			logger.WarnContext(ctx, "hero_stream_write_failed", slog.Any("error", err))
			return false
		}
		return controller.Flush() == nil
	}

	// The first event already reflects any selection made above
	select {
	case <-changed:
	default:
	}

	if !send() {
		return
	}

	keepAlive := time.NewTicker(handler.keepAlive)
	defer keepAlive.Stop()

	logger.DebugContext(ctx, "hero_stream_opened", slog.Int("slides", len(slides)))

	// 4. Pump changes until the client disconnects
	for {
		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "hero_stream_closed")
			return
		case <-changed:
			if !send() {
				return
			}
		case <-keepAlive.C:
			if _, err := writer.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			if controller.Flush() != nil {
				return
			}
		}
	}
}
