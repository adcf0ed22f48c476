// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	"context"
	"log/slog"

	"github.com/taibuivan/masjid/internal/platform/cache"
	"github.com/taibuivan/masjid/internal/platform/constants"
)

// Service reads published slides through the content cache.
type Service struct {
	repo   Repository
	cache  *cache.Store
	logger *slog.Logger
}

// NewService constructs a new slide [Service]. A nil cache disables caching.
func NewService(repo Repository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger,
	}
}

// ListActive returns the published slides, possibly empty.
func (service *Service) ListActive(context context.Context) ([]Slide, error) {
	return cache.Remember(context, service.cache, constants.CacheKeySlides, service.repo.ListPublished)
}
