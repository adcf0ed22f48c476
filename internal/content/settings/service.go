// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"log/slog"

	"github.com/taibuivan/masjid/internal/platform/cache"
	"github.com/taibuivan/masjid/internal/platform/constants"
)

// Service reads the site settings through the content cache.
type Service struct {
	repo   Repository
	cache  *cache.Store
	logger *slog.Logger
}

// NewService constructs a new settings [Service]. A nil cache disables caching.
func NewService(repo Repository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger,
	}
}

// Site returns the assembled site description.
func (service *Service) Site(context context.Context) (Site, error) {
	return cache.Remember(context, service.cache, constants.CacheKeySettings, service.load)
}

func (service *Service) load(context context.Context) (Site, error) {
	values, err := service.repo.ListValues(context)
	if err != nil {
		return Site{}, err
	}
	return FromValues(values), nil
}
