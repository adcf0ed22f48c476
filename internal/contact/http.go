// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/masjid/internal/platform/middleware"
	requestutil "github.com/taibuivan/masjid/internal/platform/request"
	"github.com/taibuivan/masjid/internal/platform/respond"
)

// Handler implements the HTTP layer for the contact form.
type Handler struct {
	service *Service
	limiter *middleware.RateLimiter
}

// NewHandler constructs a new contact [Handler] guarded by limiter.
func NewHandler(service *Service, limiter *middleware.RateLimiter) *Handler {
	return &Handler{service: service, limiter: limiter}
}

// Routes returns a [chi.Router] with the contact endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.With(handler.limiter.Middleware()).Post("/", handler.submit)
	return router
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input SubmitRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Submit(request.Context(), input, middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, SubmitResponse{ID: id})
}
