// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"cmp"
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/masjid/internal/content/event"
	"github.com/taibuivan/masjid/internal/content/sermon"
	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/platform/config"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/rotation"
)

// Service composes the homepage and builds live hero rotators.
type Service struct {
	sources   Sources
	rotation  config.RotationConfig
	scheduler rotation.Scheduler
	logger    *slog.Logger
}

// NewService constructs a new home [Service]. Rotators it builds run on scheduler.
func NewService(sources Sources, rotationConfig config.RotationConfig, scheduler rotation.Scheduler, logger *slog.Logger) *Service {
	return &Service{
		sources:   sources,
		rotation:  rotationConfig,
		scheduler: scheduler,
		logger:    logger,
	}
}

/*
Compose fetches every section concurrently and renders it for viewport.

Returns:
  - *Page: The homepage; empty collections leave their section nil
  - error: The first content read that failed
*/
func (service *Service) Compose(ctx context.Context, viewport rotation.Viewport) (*Page, error) {
	var (
		slides  []rotation.Slide
		notices []rotation.Notice
		sermons []sermon.Sermon
		events  []event.Event
		site    settings.Site
	)

	// 1. Fetch all sources in parallel
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) { slides, err = service.sources.Slides.ListActive(groupCtx); return })
	group.Go(func() (err error) { notices, err = service.sources.Notices.ListActive(groupCtx); return })
	group.Go(func() (err error) {
		sermons, err = service.sources.Sermons.Latest(groupCtx, constants.HomeSermonLimit)
		return
	})
	group.Go(func() (err error) {
		events, err = service.sources.Events.Upcoming(groupCtx, constants.DefaultEventLimit)
		return
	})
	group.Go(func() (err error) { site, err = service.sources.Settings.Site(groupCtx); return })

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// 2. Render each section through its controller
	page := &Page{
		Viewport: viewport,
		Settings: site,
		Hero:     service.heroSection(slides, viewport),
		Notices:  service.noticeSection(notices, viewport),
		Sermons:  service.sermonSection(sermons, viewport),
	}
	if len(events) > 0 {
		page.Events = events
	}

	service.logger.DebugContext(ctx, "home_composed",
		slog.String("viewport", string(viewport)),
		slog.Int("slides", len(slides)),
		slog.Int("notices", len(notices)),
		slog.Int("sermons", len(sermons)),
	)

	return page, nil
}

// Slides returns the hero slides for a stream.
func (service *Service) Slides(ctx context.Context) ([]rotation.Slide, error) {
	return service.sources.Slides.ListActive(ctx)
}

// NewHeroRotator builds an unmounted rotator on the service scheduler.
func (service *Service) NewHeroRotator(slides []rotation.Slide, onChange func(rotation.RotationState)) *rotation.HeroRotator {
	options := service.rotation.HeroOptions()
	options.OnChange = onChange
	return rotation.NewHeroRotator(slides, service.scheduler, options)
}

// # Section Rendering

func (service *Service) heroSection(slides []rotation.Slide, viewport rotation.Viewport) *HeroSection {
	rotator := service.NewHeroRotator(slides, nil)

	view, ok := rotator.Render(viewport)
	if !ok {
		return nil
	}

	options := service.rotation.HeroOptions()
	return &HeroSection{
		View:       view,
		Dots:       rotator.Len(),
		IntervalMS: cmp.Or(options.Interval, constants.HeroInterval).Milliseconds(),
		CooldownMS: cmp.Or(options.Cooldown, constants.HeroCooldown).Milliseconds(),
	}
}

func (service *Service) noticeSection(notices []rotation.Notice, viewport rotation.Viewport) *NoticeSection {
	options := service.rotation.NoticeOptions(viewport)
	scroller := rotation.NewNoticeScroller(notices, service.scheduler, options)
	defer scroller.Unmount()

	board, ok := scroller.Render()
	if !ok {
		return nil
	}

	return &NoticeSection{
		Board:      board,
		Speed:      cmp.Or(options.Speed, constants.NoticeSpeed),
		ItemHeight: cmp.Or(options.ItemHeight, constants.NoticeItemHeight),
	}
}

func (service *Service) sermonSection(sermons []sermon.Sermon, viewport rotation.Viewport) *SermonSection {
	if len(sermons) == 0 {
		return nil
	}

	containerWidth := constants.DesktopContainerWidth
	if viewport.IsMobile() {
		containerWidth = constants.MobileContainerWidth
	}

	options := service.rotation.SermonOptions()
	scroller := rotation.NewSermonScroller(options)
	defer scroller.Unmount()
	scroller.Resize(float64(len(sermons))*constants.SermonCardWidth, containerWidth)

	return &SermonSection{
		Items: sermons,
		Row:   scroller.State(),
		Step:  cmp.Or(options.Step, constants.SermonStep),
	}
}
