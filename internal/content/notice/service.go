// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notice

import (
	"context"
	"log/slog"

	"github.com/taibuivan/masjid/internal/platform/cache"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/pkg/slice"
)

// Service reads the notice board through the content cache.
type Service struct {
	repo   Repository
	cache  *cache.Store
	logger *slog.Logger
}

// NewService constructs a new notice [Service]. A nil cache disables caching.
func NewService(repo Repository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger,
	}
}

// ListActive returns the published notices in display form, newest first.
func (service *Service) ListActive(context context.Context) ([]Notice, error) {
	return cache.Remember(context, service.cache, constants.CacheKeyNotices, service.load)
}

func (service *Service) load(context context.Context) ([]Notice, error) {
	records, err := service.repo.ListPublished(context)
	if err != nil {
		return nil, err
	}

	notices := slice.Map(records, toNotice)
	if notices == nil {
		notices = []Notice{}
	}
	return notices, nil
}

func toNotice(record Record) Notice {
	return Notice{
		ID:          record.ID,
		Title:       record.Title,
		Date:        record.PublishedOn.Format(constants.DateLayout),
		Tag:         record.Tag,
		TagColor:    TagColor(record.Tag),
		IsCancelled: record.IsCancelled,
	}
}
