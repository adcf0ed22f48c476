// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kiosk

import (
	"context"
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/rotation"
)

// Terminal layout. One notice occupies one row, so the scroller works in rows.
const (
	heroRows   = 6
	noticeRows = 6

	// noticeTop is the first notice row: header, hero block, panel title.
	noticeTop = 1 + heroRows + 1

	// noticeRowSpeed scrolls a little over one row per second at 60 frames.
	noticeRowSpeed = 0.02
)

// Model is the bubbletea model of the lobby display. Copies share the same
// controllers.
type Model struct {
	options Options
	source  Source
	logger  *slog.Logger
	relay   *relay
	styles  styles

	hero    *rotation.HeroRotator
	notices *rotation.NoticeScroller
	site    settings.Site

	width     int
	hovering  bool
	lastError string
}

// NewModel builds the display for content. Controllers start in [Model.Init].
// A nil source disables periodic refresh.
func NewModel(content Content, source Source, options Options) Model {
	if options.Scheduler == nil {
		options.Scheduler = rotation.NewScheduler(constants.FrameInterval)
	}
	if options.Refresh <= 0 {
		options.Refresh = constants.KioskRefreshInterval
	}
	if options.Viewport == "" {
		options.Viewport = rotation.ViewportDesktop
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	relay := newRelay()

	return Model{
		options: options,
		source:  source,
		logger:  options.Logger,
		relay:   relay,
		styles:  newStyles(),
		site:    content.Site,

		hero: rotation.NewHeroRotator(content.Slides, options.Scheduler, rotation.HeroOptions{
			Interval: options.Interval,
			OnChange: func(rotation.RotationState) { relay.notify() },
		}),
		notices: rotation.NewNoticeScroller(content.Notices, options.Scheduler, rotation.NoticeOptions{
			Speed:      noticeRowSpeed,
			ItemHeight: 1,
			Viewport:   options.Viewport,
			OnFrame:    func(rotation.ScrollState) { relay.notify() },
		}),
	}
}

// Bind forwards controller changes to a program, usually [tea.Program.Send].
func (model Model) Bind(send func(tea.Msg)) {
	model.relay.bind(send)
}

// Close unmounts both controllers and stops forwarding. It is idempotent.
func (model Model) Close() {
	model.hero.Unmount()
	model.notices.Unmount()
	model.relay.close()
}

// # Bubbletea

// Init mounts the controllers and schedules the first refresh.
func (model Model) Init() tea.Cmd {
	model.hero.Mount()
	model.notices.Mount()
	return model.scheduleRefresh()
}

// Update handles keys, pointer motion, redraws and content refreshes.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width

	case tea.KeyMsg:
		return model.handleKey(msg)

	case tea.MouseMsg:
		model.handlePointer(msg)

	case redrawMsg:
		// View reads live controller state.

	case refreshMsg:
		return model, model.fetch()

	case contentMsg:
		model.apply(msg)
		return model, model.scheduleRefresh()
	}

	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		model.Close()
		return model, tea.Quit

	case "left", "h":
		model.hero.Prev()

	case "right", "l":
		model.hero.Next()

	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if index := int(key[0] - '1'); index < model.hero.Len() {
				model.hero.Select(index)
			}
		}
	}

	return model, nil
}

// handlePointer maps pointer position to enter/leave of the notice panel.
func (model *Model) handlePointer(msg tea.MouseMsg) {
	inside := msg.Y >= noticeTop && msg.Y < noticeTop+noticeRows

	switch {
	case inside && !model.hovering:
		model.notices.PointerEnter()
	case !inside && model.hovering:
		model.notices.PointerLeave()
	default:
		return
	}

	model.hovering = inside
}

// # Refresh

func (model Model) scheduleRefresh() tea.Cmd {
	if model.source == nil {
		return nil
	}
	return tea.Tick(model.options.Refresh, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (model Model) fetch() tea.Cmd {
	source := model.source
	if source == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.KioskRequestTimeout)
		defer cancel()

		content, err := source.Fetch(ctx)
		return contentMsg{content: content, err: err}
	}
}

// apply swaps in fresh content. The notice board only rewinds when the
// notices actually changed.
func (model *Model) apply(msg contentMsg) {
	if msg.err != nil {
		model.lastError = "content refresh failed"
		model.logger.Warn("kiosk_refresh_failed", slog.Any("error", msg.err))
		return
	}

	model.lastError = ""
	model.site = msg.content.Site
	model.hero.SetSlides(msg.content.Slides)

	current, _ := model.notices.Render()
	if !model.sameNotices(current, msg.content.Notices) {
		model.notices.SetNotices(msg.content.Notices)
	}

	model.logger.Debug("kiosk_content_refreshed",
		slog.Int("slides", len(msg.content.Slides)),
		slog.Int("notices", len(msg.content.Notices)),
	)
}

// sameNotices compares the rendered board against a fresh list. The desktop
// board is tripled, so only its first third is compared. The mobile list is
// truncated and always replaced.
func (model Model) sameNotices(board rotation.NoticeBoardView, fresh []rotation.Notice) bool {
	if model.options.Viewport.IsMobile() {
		return false
	}

	items := board.Items
	if board.AutoScroll {
		items = items[:len(items)/3]
	}
	return slices.Equal(items, fresh)
}
