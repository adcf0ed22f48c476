// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"context"
	"log/slog"

	"github.com/taibuivan/masjid/internal/platform/apperr"
	"github.com/taibuivan/masjid/internal/platform/cache"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/platform/validate"
	"github.com/taibuivan/masjid/pkg/pagination"
	"github.com/taibuivan/masjid/pkg/query"
	"github.com/taibuivan/masjid/pkg/slice"
	"github.com/taibuivan/masjid/pkg/slug"
)

// Service reads the sermon library through the content cache.
type Service struct {
	repo   Repository
	cache  *cache.Store
	logger *slog.Logger
}

// NewService constructs a new sermon [Service]. A nil cache disables caching.
func NewService(repo Repository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger,
	}
}

/*
List returns one page of sermons matching filter.

Returns:
  - []Sermon: The requested page, possibly empty
  - int: Total number of matches across all pages
  - error: Storage failures
*/
func (service *Service) List(context context.Context, filter Filter, page pagination.Params) ([]Sermon, int, error) {
	all, err := service.all(context)
	if err != nil {
		return nil, 0, err
	}

	matched := slice.Filter(all, func(sermon Sermon) bool {
		return filter.matches(sermon) &&
			query.ContainsFold(filter.Speakers, sermon.Speaker) &&
			query.ContainsFold(filter.Series, sermon.Series)
	})

	return pagination.Window(matched, page), len(matched), nil
}

// Latest returns up to limit of the most recent sermons.
func (service *Service) Latest(context context.Context, limit int) ([]Sermon, error) {
	all, err := service.all(context)
	if err != nil {
		return nil, err
	}
	return pagination.Window(all, pagination.Params{Page: 1, Limit: limit}), nil
}

// GetBySlug returns one sermon by its public slug.
func (service *Service) GetBySlug(context context.Context, identifier string) (*Sermon, error) {
	validator := &validate.Validator{}
	if err := validator.Slug("slug", identifier).Err(); err != nil {
		return nil, err
	}

	all, err := service.all(context)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].Slug == identifier {
			return &all[i], nil
		}
	}
	return nil, apperr.NotFound("Sermon")
}

// all returns every published sermon with display fields resolved.
func (service *Service) all(context context.Context) ([]Sermon, error) {
	return cache.Remember(context, service.cache, constants.CacheKeySermons, service.load)
}

func (service *Service) load(context context.Context) ([]Sermon, error) {
	sermons, err := service.repo.ListPublished(context)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(sermons))
	for _, s := range sermons {
		if s.Slug != "" {
			taken[s.Slug] = true
		}
	}

	resolved := make([]Sermon, 0, len(sermons))
	for _, s := range sermons {
		if s.Slug == "" {
			s.Slug = fallbackSlug(s, taken)
			service.logger.DebugContext(context, "sermon_slug_derived", slog.String("id", s.ID), slog.String("slug", s.Slug))
		}
		s.Date = s.DeliveredOn.Format(constants.DateLayout)
		s.Duration = formatDuration(s.DurationSec)
		resolved = append(resolved, s)
	}
	return resolved, nil
}

// fallbackSlug derives a slug from the title, suffixed with the id on collision.
func fallbackSlug(sermon Sermon, taken map[string]bool) string {
	candidate := slug.From(sermon.Title)
	if candidate == "" || taken[candidate] {
		candidate = slug.From(candidate + " " + sermon.ID)
	}
	taken[candidate] = true
	return candidate
}
