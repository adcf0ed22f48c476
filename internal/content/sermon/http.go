// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/masjid/internal/platform/request"
	"github.com/taibuivan/masjid/internal/platform/respond"
	"github.com/taibuivan/masjid/pkg/pagination"
	"github.com/taibuivan/masjid/pkg/query"
)

// Handler implements the HTTP layer for the sermon library.
type Handler struct {
	service *Service
}

// NewHandler constructs a new sermon [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the sermon endpoints.
//
//   - GET /?q=&speaker=&series=&page=&limit=
//   - GET /{slug}
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listSermons)
	router.Get("/{slug}", handler.getSermon)
	return router
}

func (handler *Handler) listSermons(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Query:    requestutil.Query(request, "q"),
		Speakers: query.StringSlice(requestutil.Query(request, "speaker")),
		Series:   query.StringSlice(requestutil.Query(request, "series")),
	}
	page := pagination.FromRequest(request)

	sermons, total, err := handler.service.List(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, sermons, pagination.NewMeta(page, total))
}

func (handler *Handler) getSermon(writer http.ResponseWriter, request *http.Request) {
	sermon, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sermon)
}
