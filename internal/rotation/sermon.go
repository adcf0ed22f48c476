// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation

import (
	"sync"

	"github.com/taibuivan/masjid/internal/platform/constants"
)

// Direction is the paging direction of a [SermonScroller].
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// PageOffset is the horizontal position of the sermon row and its edge flags.
type PageOffset struct {
	ScrollLeft     float64 `json:"scroll_left"`
	ScrollWidth    float64 `json:"scroll_width"`
	ClientWidth    float64 `json:"client_width"`
	CanScrollLeft  bool    `json:"can_scroll_left"`
	CanScrollRight bool    `json:"can_scroll_right"`
}

// ScrollInstruction asks the container to move to Left, animated when Smooth.
type ScrollInstruction struct {
	Left   float64 `json:"left"`
	Smooth bool    `json:"smooth"`
}

// SermonOptions configures a [SermonScroller]. Zero values take the defaults.
type SermonOptions struct {
	// Step is the distance of one button press (default 400).
	Step float64

	// Tolerance absorbs sub-pixel rounding at the right edge. Zero is a
	// strict edge; a negative value selects the default of 10.
	Tolerance float64
}

// DefaultSermonOptions returns a 400px step and a 10px tolerance.
func DefaultSermonOptions() SermonOptions {
	return SermonOptions{Step: constants.SermonStep, Tolerance: constants.SermonTolerance}
}

// SermonScroller pages a horizontal row of cards on explicit requests only.
// It owns no timers.
type SermonScroller struct {
	mu      sync.Mutex
	options SermonOptions
	offset  PageOffset
}

// NewSermonScroller builds a scroller at the left edge of an unmeasured row.
func NewSermonScroller(options SermonOptions) *SermonScroller {
	if options.Step <= 0 {
		options.Step = constants.SermonStep
	}
	if options.Tolerance < 0 {
		options.Tolerance = constants.SermonTolerance
	}
	return &SermonScroller{options: options}
}

// Resize records the row's total and visible widths.
func (scroller *SermonScroller) Resize(scrollWidth, clientWidth float64) {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	scroller.offset.ScrollWidth = max(scrollWidth, 0)
	scroller.offset.ClientWidth = max(clientWidth, 0)
	scroller.refreshLocked()
}

// OnScroll records the offset reported after any scroll, including momentum.
func (scroller *SermonScroller) OnScroll(scrollLeft float64) {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	scroller.offset.ScrollLeft = max(scrollLeft, 0)
	scroller.refreshLocked()
}

// Scroll moves one step in direction, clamped to the row, and returns the
// smooth scroll the container should perform.
func (scroller *SermonScroller) Scroll(direction Direction) ScrollInstruction {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	target := scroller.offset.ScrollLeft + float64(direction)*scroller.options.Step
	target = min(max(target, 0), scroller.maxOffsetLocked())

	scroller.offset.ScrollLeft = target
	scroller.refreshLocked()

	return ScrollInstruction{Left: target, Smooth: true}
}

// State returns a snapshot of the row position.
func (scroller *SermonScroller) State() PageOffset {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()
	return scroller.offset
}

// Unmount exists for lifecycle symmetry with the timed controllers.
func (scroller *SermonScroller) Unmount() {}

func (scroller *SermonScroller) maxOffsetLocked() float64 {
	return max(scroller.offset.ScrollWidth-scroller.offset.ClientWidth, 0)
}

func (scroller *SermonScroller) refreshLocked() {
	scroller.offset.CanScrollLeft = scroller.offset.ScrollLeft > 0
	scroller.offset.CanScrollRight = scroller.offset.ScrollLeft <
		scroller.offset.ScrollWidth-scroller.offset.ClientWidth-scroller.options.Tolerance
}
