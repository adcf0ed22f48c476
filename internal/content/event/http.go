// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/masjid/internal/platform/constants"
	requestutil "github.com/taibuivan/masjid/internal/platform/request"
	"github.com/taibuivan/masjid/internal/platform/respond"
	"github.com/taibuivan/masjid/pkg/pagination"
)

// Handler implements the HTTP layer for events.
type Handler struct {
	service *Service
}

// NewHandler constructs a new event [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the event endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listUpcoming)
	return router
}

func (handler *Handler) listUpcoming(writer http.ResponseWriter, request *http.Request) {
	limit, ok := requestutil.QueryInt(request, "limit")
	if !ok || limit < 1 || limit > pagination.MaxLimit {
		limit = constants.DefaultEventLimit
	}

	events, err := handler.service.Upcoming(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}
