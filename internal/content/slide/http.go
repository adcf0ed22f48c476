// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/masjid/internal/platform/respond"
)

// Handler implements the HTTP layer for hero slides.
type Handler struct {
	service *Service
}

// NewHandler constructs a new slide [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the slide endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listSlides)
	return router
}

func (handler *Handler) listSlides(writer http.ResponseWriter, request *http.Request) {
	slides, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slides)
}
