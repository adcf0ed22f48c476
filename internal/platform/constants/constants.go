// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, rotation timings, and cross-cutting
keys that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Rotation: Hero tick and cool-down, notice scroll speed, sermon paging.
  - Caching: Redis key taxonomy for content collections.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "masjid-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// Streaming endpoints are mounted outside of it.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StreamKeepAlive is the interval of comment frames on idle event streams.
	StreamKeepAlive = 15 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// ContactRateLimitRPS allows five contact form submissions per minute per IP.
	ContactRateLimitRPS = 5.0 / 60.0

	// ContactRateLimitBurst is the burst for the contact form limiter.
	ContactRateLimitBurst = 3

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Kiosk

const (
	// KioskRefreshInterval is how often the lobby display re-fetches content.
	KioskRefreshInterval = 5 * time.Minute

	// KioskRequestTimeout bounds one content fetch from the lobby display.
	KioskRequestTimeout = 10 * time.Second
)

// # Rotation

const (
	// HeroInterval is the time between two automatic hero slide advances.
	HeroInterval = 5000 * time.Millisecond

	// HeroCooldown is how long automatic advancement stays suppressed after a manual selection.
	HeroCooldown = 10000 * time.Millisecond

	// FrameInterval approximates one display refresh at 60Hz.
	FrameInterval = time.Second / 60

	// NoticeSpeed is the notice board scroll speed in pixels per frame.
	NoticeSpeed = 0.5

	// NoticeItemHeight is the fixed rendered height of one notice row in pixels.
	NoticeItemHeight = 72.0

	// NoticeMobileLimit is the number of notices shown statically on mobile.
	NoticeMobileLimit = 4

	// SermonStep is the horizontal distance of one sermon scroll button press in pixels.
	SermonStep = 400.0

	// SermonTolerance absorbs sub-pixel rounding when detecting the right edge.
	SermonTolerance = 10.0

	// SermonCardWidth is the width of one sermon card including its gap.
	SermonCardWidth = 344.0

	// DesktopContainerWidth and MobileContainerWidth are the assumed sermon row
	// widths for the first render pass, before the client reports its own.
	DesktopContainerWidth = 1280.0
	MobileContainerWidth  = 375.0

	// MobileBreakpoint is the viewport width below which the mobile layout applies.
	MobileBreakpoint = 768
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderUserAgent     = "User-Agent"
	HeaderViewportWidth = "Sec-CH-Viewport-Width"
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
	FieldSchema  = "schema_version"
)

// # Database Schemas

const (
	SchemaSite = "site"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixContent = "content:"

	CacheKeySlides   = RedisPrefixContent + "slides"
	CacheKeyNotices  = RedisPrefixContent + "notices"
	CacheKeySermons  = RedisPrefixContent + "sermons"
	CacheKeyEvents   = RedisPrefixContent + "events:"
	CacheKeySettings = RedisPrefixContent + "settings"
)

// # Content Limits

const (
	// DefaultEventLimit is the number of upcoming events returned by default.
	DefaultEventLimit = 6

	// HomeSermonLimit is the number of latest sermons placed on the homepage row.
	HomeSermonLimit = 12

	// DateLayout is how notice and sermon dates are presented.
	DateLayout = "2 Jan 2006"
)
