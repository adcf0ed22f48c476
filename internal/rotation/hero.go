// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation

import (
	"sync"
	"time"

	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/pkg/pointer"
)

// # Hero Types

// Button is a call-to-action link authored in the CMS.
type Button struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Slide is one hero banner record. Its position in the slice is its slide index.
type Slide struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	MobileImage     *string `json:"mobile_image,omitempty"`
	PrimaryButton   Button  `json:"primary_button"`
	SecondaryButton Button  `json:"secondary_button"`
}

// ImageFor returns the image for a viewport. Mobile falls back to the
// desktop image when no mobile image was supplied.
func (slide Slide) ImageFor(viewport Viewport) string {
	if viewport.IsMobile() {
		if mobile := pointer.Val(slide.MobileImage); mobile != "" {
			return mobile
		}
	}
	return slide.Image
}

// RotationState is the observable state of a [HeroRotator].
// CurrentIndex is always below the live slide count.
type RotationState struct {
	CurrentIndex int  `json:"current_index"`
	IsPaused     bool `json:"is_paused"`
}

// HeroView is the render instruction for the hero banner.
type HeroView struct {
	ID          string `json:"id"`
	Index       int    `json:"index"`
	Count       int    `json:"count"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Primary     Action `json:"primary"`
	Secondary   Action `json:"secondary"`
	IsPaused    bool   `json:"is_paused"`
}

// HeroOptions configures a [HeroRotator]. Zero durations take the defaults.
type HeroOptions struct {
	// Interval between automatic advances (default 5000ms).
	Interval time.Duration

	// Cooldown after a manual selection before auto-advance resumes (default 10000ms).
	Cooldown time.Duration

	// OnChange is called after every state change, outside the controller lock.
	OnChange func(RotationState)
}

// # Hero Rotator

// HeroRotator shows one slide at a time, advancing on a fixed interval while
// Playing and holding still for a cool-down after any manual selection.
//
// The tick timer only exists while Playing. Resuming from a cool-down starts a
// fresh interval, so the first automatic advance happens one full interval
// after the cool-down ends.
type HeroRotator struct {
	mu        sync.Mutex
	scheduler Scheduler
	options   HeroOptions

	slides  []Slide
	state   RotationState
	mounted bool

	stopTick     Cancel
	stopCooldown Cancel

	// tickGeneration and cooldownGeneration invalidate callbacks that were
	// already in flight when their timer was cancelled.
	tickGeneration     uint64
	cooldownGeneration uint64
}

// NewHeroRotator builds a rotator in the Playing state at index 0.
// Timers start on [HeroRotator.Mount].
func NewHeroRotator(slides []Slide, scheduler Scheduler, options HeroOptions) *HeroRotator {
	if options.Interval <= 0 {
		options.Interval = constants.HeroInterval
	}
	if options.Cooldown <= 0 {
		options.Cooldown = constants.HeroCooldown
	}

	return &HeroRotator{
		scheduler: scheduler,
		options:   options,
		slides:    append([]Slide(nil), slides...),
	}
}

// Mount starts automatic rotation. Mounting twice has no effect.
func (rotator *HeroRotator) Mount() {
	rotator.mu.Lock()
	defer rotator.mu.Unlock()

	if rotator.mounted {
		return
	}
	rotator.mounted = true
	rotator.startTickLocked()
}

// Unmount cancels the tick and any pending cool-down. No callback of this
// rotator runs afterwards.
func (rotator *HeroRotator) Unmount() {
	rotator.mu.Lock()
	defer rotator.mu.Unlock()

	rotator.mounted = false
	rotator.stopTickLocked()
	rotator.stopCooldownLocked()
}

// Select shows slide index immediately and pauses auto-advance for the
// cool-down. A new selection restarts the cool-down instead of stacking it.
func (rotator *HeroRotator) Select(index int) {
	rotator.mu.Lock()

	if len(rotator.slides) == 0 {
		rotator.mu.Unlock()
		return
	}

	rotator.state.CurrentIndex = wrap(index, len(rotator.slides))

	if rotator.mounted {
		rotator.state.IsPaused = true
		rotator.stopTickLocked()
		rotator.stopCooldownLocked()

		rotator.cooldownGeneration++
		generation := rotator.cooldownGeneration
		rotator.stopCooldown = rotator.scheduler.AfterFunc(rotator.options.Cooldown, func() {
			rotator.resume(generation)
		})
	}

	state := rotator.state
	rotator.mu.Unlock()
	rotator.notify(state)
}

// Next selects the following slide, wrapping at the end.
func (rotator *HeroRotator) Next() {
	rotator.Select(rotator.State().CurrentIndex + 1)
}

// Prev selects the previous slide, wrapping at the start.
func (rotator *HeroRotator) Prev() {
	rotator.Select(rotator.State().CurrentIndex - 1)
}

// SetSlides replaces the slide sequence. The current index is re-normalised
// against the new length; an empty sequence stops every timer.
func (rotator *HeroRotator) SetSlides(slides []Slide) {
	rotator.mu.Lock()

	rotator.slides = append([]Slide(nil), slides...)

	if len(rotator.slides) == 0 {
		rotator.stopTickLocked()
		rotator.stopCooldownLocked()
		rotator.state = RotationState{}
	} else {
		rotator.state.CurrentIndex = wrap(rotator.state.CurrentIndex, len(rotator.slides))
		if rotator.stopTick == nil {
			rotator.startTickLocked()
		}
	}

	state := rotator.state
	rotator.mu.Unlock()
	rotator.notify(state)
}

// State returns a snapshot of the rotation state.
func (rotator *HeroRotator) State() RotationState {
	rotator.mu.Lock()
	defer rotator.mu.Unlock()
	return rotator.state
}

// Len returns the current number of slides.
func (rotator *HeroRotator) Len() int {
	rotator.mu.Lock()
	defer rotator.mu.Unlock()
	return len(rotator.slides)
}

// Render builds the view of the current slide. It reports false when there
// is nothing to render.
func (rotator *HeroRotator) Render(viewport Viewport) (HeroView, bool) {
	rotator.mu.Lock()
	defer rotator.mu.Unlock()

	if len(rotator.slides) == 0 {
		return HeroView{}, false
	}

	index := wrap(rotator.state.CurrentIndex, len(rotator.slides))
	slide := rotator.slides[index]

	return HeroView{
		ID:          slide.ID,
		Index:       index,
		Count:       len(rotator.slides),
		Title:       slide.Title,
		Description: slide.Description,
		Image:       slide.ImageFor(viewport),
		Primary:     ActionFor(slide.PrimaryButton),
		Secondary:   ActionFor(slide.SecondaryButton),
		IsPaused:    rotator.state.IsPaused,
	}, true
}

// # Timer Callbacks

func (rotator *HeroRotator) tick(generation uint64) {
	rotator.mu.Lock()

	if !rotator.mounted || generation != rotator.tickGeneration || rotator.state.IsPaused || len(rotator.slides) == 0 {
		rotator.mu.Unlock()
		return
	}

	rotator.state.CurrentIndex = wrap(rotator.state.CurrentIndex+1, len(rotator.slides))

	state := rotator.state
	rotator.mu.Unlock()
	rotator.notify(state)
}

func (rotator *HeroRotator) resume(generation uint64) {
	rotator.mu.Lock()

	if !rotator.mounted || generation != rotator.cooldownGeneration {
		rotator.mu.Unlock()
		return
	}

	rotator.stopCooldown = nil
	rotator.state.IsPaused = false
	rotator.startTickLocked()

	state := rotator.state
	rotator.mu.Unlock()
	rotator.notify(state)
}

// # Lock-held Helpers

func (rotator *HeroRotator) startTickLocked() {
	if !rotator.mounted || rotator.state.IsPaused || len(rotator.slides) == 0 {
		return
	}

	rotator.tickGeneration++
	generation := rotator.tickGeneration
	rotator.stopTick = rotator.scheduler.Every(rotator.options.Interval, func() {
		rotator.tick(generation)
	})
}

func (rotator *HeroRotator) stopTickLocked() {
	stop(rotator.stopTick)
	rotator.stopTick = nil
	rotator.tickGeneration++
}

func (rotator *HeroRotator) stopCooldownLocked() {
	stop(rotator.stopCooldown)
	rotator.stopCooldown = nil
	rotator.cooldownGeneration++
}

func (rotator *HeroRotator) notify(state RotationState) {
	if rotator.options.OnChange != nil {
		rotator.options.OnChange(state)
	}
}
