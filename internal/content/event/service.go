// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/masjid/internal/platform/cache"
	"github.com/taibuivan/masjid/internal/platform/constants"
)

// Service reads upcoming events through the content cache.
type Service struct {
	repo   Repository
	cache  *cache.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new event [Service]. A nil cache disables caching.
func NewService(repo Repository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// Upcoming returns up to limit events that have not started yet.
func (service *Service) Upcoming(context context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = constants.DefaultEventLimit
	}

	key := fmt.Sprintf("%s%d", constants.CacheKeyEvents, limit)
	return cache.Remember(context, service.cache, key, service.loader(limit))
}

// loader returns the cache miss path for one limit.
func (service *Service) loader(limit int) func(context.Context) ([]Event, error) {
	return func(ctx context.Context) ([]Event, error) {
		events, err := service.repo.ListUpcoming(ctx, service.now(), limit)
		if err != nil {
			return nil, err
		}

		for i := range events {
			events[i].Date = events[i].StartsAt.Format(constants.DateLayout)
			events[i].Time = events[i].StartsAt.Format(timeLayout)
		}
		if events == nil {
			events = []Event{}
		}
		return events, nil
	}
}
