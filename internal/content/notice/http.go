// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/masjid/internal/platform/respond"
)

// Handler implements the HTTP layer for the notice board.
type Handler struct {
	service *Service
}

// NewHandler constructs a new notice [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the notice endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listNotices)
	return router
}

func (handler *Handler) listNotices(writer http.ResponseWriter, request *http.Request) {
	notices, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, notices)
}
