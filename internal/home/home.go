// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package home composes the homepage.

Each section is the first render instruction of the controller that drives it
in the browser: the hero rotator's current slide and timings, the notice
board's tripled list (or the short static list on mobile), and the sermon
row's initial edge flags. Sections without content are omitted.

The hero stream endpoint runs a live rotator per connection and pushes every
slide change as a server-sent event.
*/
package home

import (
	"context"

	"github.com/taibuivan/masjid/internal/content/event"
	"github.com/taibuivan/masjid/internal/content/sermon"
	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/rotation"
)

// # Page Sections

// HeroSection is the banner at mount time.
type HeroSection struct {
	View       rotation.HeroView `json:"view"`
	Dots       int               `json:"dots"`
	IntervalMS int64             `json:"interval_ms"`
	CooldownMS int64             `json:"cooldown_ms"`
}

// NoticeSection is the notice board at mount time.
type NoticeSection struct {
	Board      rotation.NoticeBoardView `json:"board"`
	Speed      float64                  `json:"speed"`
	ItemHeight float64                  `json:"item_height"`
}

// SermonSection is the horizontal sermon row.
type SermonSection struct {
	Items []sermon.Sermon     `json:"items"`
	Row   rotation.PageOffset `json:"row"`
	Step  float64             `json:"step"`
}

// Page is the composed homepage for one viewport.
type Page struct {
	Viewport rotation.Viewport `json:"viewport"`
	Settings settings.Site     `json:"settings"`
	Hero     *HeroSection      `json:"hero,omitempty"`
	Notices  *NoticeSection    `json:"notices,omitempty"`
	Sermons  *SermonSection    `json:"sermons,omitempty"`
	Events   []event.Event     `json:"events,omitempty"`
}

// # Content Sources

// SlideSource lists hero slides.
type SlideSource interface {
	ListActive(context context.Context) ([]rotation.Slide, error)
}

// NoticeSource lists display-ready notices.
type NoticeSource interface {
	ListActive(context context.Context) ([]rotation.Notice, error)
}

// SermonSource lists the most recent sermons.
type SermonSource interface {
	Latest(context context.Context, limit int) ([]sermon.Sermon, error)
}

// EventSource lists upcoming events.
type EventSource interface {
	Upcoming(context context.Context, limit int) ([]event.Event, error)
}

// SettingsSource returns the site description.
type SettingsSource interface {
	Site(context context.Context) (settings.Site, error)
}

// Sources groups the content services the homepage draws from.
type Sources struct {
	Slides   SlideSource
	Notices  NoticeSource
	Sermons  SermonSource
	Events   EventSource
	Settings SettingsSource
}
