// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kiosk runs the homepage rotation on the mosque lobby screen.

The hero rotator and the notice scroller run on the real scheduler. Their
callbacks fire on timer goroutines, so they are forwarded into the bubbletea
program as messages and every render happens on the program loop.

Keys:

  - 1..9: show that slide
  - left/right: previous/next slide
  - q: quit

Moving the mouse over the notice panel pauses it.
*/
package kiosk

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/rotation"
)

// Options configures the display.
type Options struct {
	// Viewport selects the image variant and the notice layout.
	Viewport rotation.Viewport

	// Interval overrides the hero interval.
	Interval time.Duration

	// Refresh is how often content is re-fetched (default [constants.KioskRefreshInterval]).
	Refresh time.Duration

	// Scheduler drives the controllers (default the real scheduler).
	Scheduler rotation.Scheduler

	Logger *slog.Logger
}

// # Messages

// redrawMsg tells the program that a controller changed. The view reads live
// controller state, so one message may stand for many callbacks.
type redrawMsg struct{}

// refreshMsg asks the model to re-fetch content.
type refreshMsg struct{}

// contentMsg is the result of a fetch.
type contentMsg struct {
	content Content
	err     error
}

// # Relay

// relay forwards controller callbacks into a running program. Callbacks may
// fire inside Update (a key press selects a slide), so notify never blocks:
// it marks the display dirty and a single pump goroutine sends the message.
type relay struct {
	mu   sync.Mutex
	send func(tea.Msg)

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newRelay() *relay {
	return &relay{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// bind starts forwarding to send. Binding twice replaces the target.
func (relay *relay) bind(send func(tea.Msg)) {
	relay.mu.Lock()
	first := relay.send == nil
	relay.send = send
	relay.mu.Unlock()

	if first {
		go relay.pump()
	}
}

func (relay *relay) notify() {
	select {
	case relay.wake <- struct{}{}:
	default:
	}
}

func (relay *relay) pump() {
	for {
		select {
		case <-relay.done:
			return
		case <-relay.wake:
			relay.mu.Lock()
			send := relay.send
			relay.mu.Unlock()
			send(redrawMsg{})
		}
	}
}

func (relay *relay) close() {
	relay.closeOnce.Do(func() { close(relay.done) })
}

// # Entry Point

// Run fetches the initial content and runs the display until the user quits
// or ctx ends. Both controllers are unmounted before Run returns.
func Run(ctx context.Context, source Source, options Options) error {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	content, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("kiosk: initial fetch: %w", err)
	}
	logger.Info("kiosk_content_loaded",
		slog.Int("slides", len(content.Slides)),
		slog.Int("notices", len(content.Notices)),
	)

	if options.Scheduler == nil {
		options.Scheduler = rotation.NewScheduler(constants.FrameInterval)
	}

	model := NewModel(content, source, options)
	defer model.Close()

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	model.Bind(program.Send)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("kiosk: run display: %w", err)
	}

	logger.Info("kiosk_stopped")
	return nil
}
