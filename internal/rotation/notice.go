// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation

import (
	"math"
	"sync"

	"github.com/taibuivan/masjid/internal/platform/constants"
)

// # Notice Types

// Notice is one notice board entry, with its date already formatted.
type Notice struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Tag         string `json:"tag"`
	TagColor    string `json:"tag_color"`
	IsCancelled bool   `json:"is_cancelled"`
}

// ScrollState is the observable state of a [NoticeScroller].
type ScrollState struct {
	ScrollOffset float64 `json:"scroll_offset"`
	IsPaused     bool    `json:"is_paused"`
}

// NoticeBoardView is the render instruction for the notice board.
type NoticeBoardView struct {
	Items           []Notice `json:"items"`
	ScrollOffset    float64  `json:"scroll_offset"`
	SingleSetHeight float64  `json:"single_set_height"`
	AutoScroll      bool     `json:"auto_scroll"`
	IsPaused        bool     `json:"is_paused"`
}

// NoticeOptions configures a [NoticeScroller]. Zero values take the defaults.
type NoticeOptions struct {
	// Speed is the distance advanced per frame (default 0.5).
	Speed float64

	// ItemHeight is the fixed height of one rendered notice row.
	ItemHeight float64

	// Viewport selects the animated desktop board or the static mobile list.
	Viewport Viewport

	// MobileLimit is how many notices the mobile list shows (default 4).
	MobileLimit int

	// OnFrame is called after each frame that moved the board, outside the lock.
	OnFrame func(ScrollState)
}

// Tripled returns notices repeated three times. The copy in the middle is the
// one on screen, so the wrap point is never the first or last element.
func Tripled(notices []Notice) []Notice {
	tripled := make([]Notice, 0, len(notices)*3)
	for range 3 {
		tripled = append(tripled, notices...)
	}
	return tripled
}

// # Notice Scroller

// NoticeScroller scrolls a tripled notice list by a constant speed on every
// frame and jumps back to zero once a whole set has passed. Offsets 0 and
// singleSetHeight show identical content, so the jump is invisible.
//
// Rows have a fixed height, which makes the three copies exactly equal in
// height. [NoticeScroller.Measure] accepts a measured height instead.
type NoticeScroller struct {
	mu        sync.Mutex
	scheduler Scheduler
	options   NoticeOptions

	notices         []Notice
	state           ScrollState
	singleSetHeight float64

	mounted     bool
	cancelled   bool
	cancelFrame Cancel
}

// NewNoticeScroller builds a scroller at offset 0. The frame loop starts on
// [NoticeScroller.Mount].
func NewNoticeScroller(notices []Notice, scheduler Scheduler, options NoticeOptions) *NoticeScroller {
	if options.Speed <= 0 {
		options.Speed = constants.NoticeSpeed
	}
	if options.ItemHeight <= 0 {
		options.ItemHeight = constants.NoticeItemHeight
	}
	if options.MobileLimit <= 0 {
		options.MobileLimit = constants.NoticeMobileLimit
	}
	if options.Viewport == "" {
		options.Viewport = ViewportDesktop
	}

	scroller := &NoticeScroller{
		scheduler: scheduler,
		options:   options,
	}
	scroller.setNoticesLocked(notices)
	return scroller
}

// Mount starts the frame loop on desktop when there is something to scroll.
func (scroller *NoticeScroller) Mount() {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	if scroller.mounted || scroller.cancelled {
		return
	}
	scroller.mounted = true

	if scroller.autoScrollLocked() {
		scroller.requestFrameLocked()
	}
}

// Unmount cancels the frame loop for good. A frame already running sees the
// cancelled flag and does not reschedule itself.
func (scroller *NoticeScroller) Unmount() {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	scroller.cancelled = true
	scroller.mounted = false
	stop(scroller.cancelFrame)
	scroller.cancelFrame = nil
}

// PointerEnter pauses the board while the pointer is over it.
func (scroller *NoticeScroller) PointerEnter() {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()
	scroller.state.IsPaused = true
}

// PointerLeave resumes scrolling. There is no cool-down.
func (scroller *NoticeScroller) PointerLeave() {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()
	scroller.state.IsPaused = false
}

// SetNotices replaces the list and rewinds to offset 0.
func (scroller *NoticeScroller) SetNotices(notices []Notice) {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	scroller.setNoticesLocked(notices)

	if scroller.mounted && scroller.cancelFrame == nil && scroller.autoScrollLocked() {
		scroller.requestFrameLocked()
	}
}

// Measure replaces the computed set height with a third of the rendered
// height of the whole tripled list.
func (scroller *NoticeScroller) Measure(totalRenderedHeight float64) {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	if totalRenderedHeight <= 0 || len(scroller.notices) == 0 {
		return
	}

	scroller.singleSetHeight = totalRenderedHeight / 3
	if scroller.state.ScrollOffset >= scroller.singleSetHeight {
		scroller.state.ScrollOffset = 0
	}
}

// State returns a snapshot of the scroll state.
func (scroller *NoticeScroller) State() ScrollState {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()
	return scroller.state
}

// SingleSetHeight returns the height of one un-tripled list.
func (scroller *NoticeScroller) SingleSetHeight() float64 {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()
	return scroller.singleSetHeight
}

// ItemAt returns the notice whose row is at the top edge when the board is
// scrolled to offset.
func (scroller *NoticeScroller) ItemAt(offset float64) (Notice, bool) {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	if len(scroller.notices) == 0 || scroller.singleSetHeight <= 0 {
		return Notice{}, false
	}

	rowHeight := scroller.singleSetHeight / float64(len(scroller.notices))
	tripled := Tripled(scroller.notices)
	row := int(math.Floor(offset / rowHeight))

	return tripled[wrap(row, len(tripled))], true
}

// Render builds the board view. It reports false when there are no notices.
// Mobile renders a static, truncated list.
func (scroller *NoticeScroller) Render() (NoticeBoardView, bool) {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	if len(scroller.notices) == 0 {
		return NoticeBoardView{}, false
	}

	if scroller.options.Viewport.IsMobile() {
		limit := min(scroller.options.MobileLimit, len(scroller.notices))
		return NoticeBoardView{
			Items: append([]Notice(nil), scroller.notices[:limit]...),
		}, true
	}

	return NoticeBoardView{
		Items:           Tripled(scroller.notices),
		ScrollOffset:    scroller.state.ScrollOffset,
		SingleSetHeight: scroller.singleSetHeight,
		AutoScroll:      true,
		IsPaused:        scroller.state.IsPaused,
	}, true
}

// # Frame Loop

func (scroller *NoticeScroller) frame() {
	scroller.mu.Lock()

	if scroller.cancelled || !scroller.mounted {
		scroller.mu.Unlock()
		return
	}

	if !scroller.autoScrollLocked() {
		scroller.cancelFrame = nil
		scroller.mu.Unlock()
		return
	}

	moved := false
	if !scroller.state.IsPaused {
		scroller.state.ScrollOffset += scroller.options.Speed
		if scroller.state.ScrollOffset >= scroller.singleSetHeight {
			scroller.state.ScrollOffset = 0
		}
		moved = true
	}

	state := scroller.state
	scroller.requestFrameLocked()
	scroller.mu.Unlock()

	if moved && scroller.options.OnFrame != nil {
		scroller.options.OnFrame(state)
	}
}

func (scroller *NoticeScroller) requestFrameLocked() {
	scroller.cancelFrame = scroller.scheduler.RequestFrame(scroller.frame)
}

func (scroller *NoticeScroller) autoScrollLocked() bool {
	return !scroller.options.Viewport.IsMobile() && len(scroller.notices) > 0 && scroller.singleSetHeight > 0
}

func (scroller *NoticeScroller) setNoticesLocked(notices []Notice) {
	scroller.notices = append([]Notice(nil), notices...)
	scroller.singleSetHeight = float64(len(scroller.notices)) * scroller.options.ItemHeight
	scroller.state.ScrollOffset = 0
}
