// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/rotation"
	"github.com/taibuivan/masjid/internal/rotation/rotationtest"
	"github.com/taibuivan/masjid/pkg/pointer"
)

const (
	interval = 5000 * time.Millisecond
	cooldown = 10000 * time.Millisecond
)

func makeSlides(n int) []rotation.Slide {
	slides := make([]rotation.Slide, n)
	for i := range slides {
		slides[i] = rotation.Slide{
			ID:    fmt.Sprintf("slide-%d", i),
			Title: fmt.Sprintf("Slide %d", i),
			Image: fmt.Sprintf("/media/hero-%d.jpg", i),
		}
	}
	return slides
}

func mountedRotator(t *testing.T, n int) (*rotation.HeroRotator, *rotationtest.Scheduler) {
	t.Helper()
	scheduler := rotationtest.New()
	rotator := rotation.NewHeroRotator(makeSlides(n), scheduler, rotation.HeroOptions{
		Interval: interval,
		Cooldown: cooldown,
	})
	rotator.Mount()
	t.Cleanup(rotator.Unmount)
	return rotator, scheduler
}

/*
TestHeroRotator_WrapAround verifies that after k ticks the index is k mod n.
*/
func TestHeroRotator_WrapAround(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		for _, k := range []int{0, 1, 2, 5, 13, 28} {
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				rotator, scheduler := mountedRotator(t, n)

				scheduler.Advance(time.Duration(k) * interval)

				state := rotator.State()
				assert.Equal(t, k%n, state.CurrentIndex)
				assert.False(t, state.IsPaused)
			})
		}
	}
}

/*
TestHeroRotator_ThirteenTicks covers the four slide scenario: 13 ticks land on index 1.
*/
func TestHeroRotator_ThirteenTicks(t *testing.T) {
	rotator, scheduler := mountedRotator(t, 4)

	for range 13 {
		scheduler.Advance(interval)
	}

	assert.Equal(t, 1, rotator.State().CurrentIndex)
}

/*
TestHeroRotator_SelectDuringRotation covers select(2) at tick 3: ticks 4 and 5
are suppressed by the cool-down and auto-advance resumes at tick 6.
*/
func TestHeroRotator_SelectDuringRotation(t *testing.T) {
	rotator, scheduler := mountedRotator(t, 4)

	// Ticks 1..3
	scheduler.Advance(3 * interval)
	require.Equal(t, 3, rotator.State().CurrentIndex)

	rotator.Select(2)
	assert.Equal(t, rotation.RotationState{CurrentIndex: 2, IsPaused: true}, rotator.State())

	// Tick 4
	scheduler.Advance(interval)
	assert.Equal(t, 2, rotator.State().CurrentIndex)
	assert.True(t, rotator.State().IsPaused)

	// Tick 5, cool-down ends at the same instant
	scheduler.Advance(interval)
	assert.Equal(t, 2, rotator.State().CurrentIndex)
	assert.False(t, rotator.State().IsPaused)

	// Tick 6
	scheduler.Advance(interval)
	assert.Equal(t, 3, rotator.State().CurrentIndex)
}

/*
TestHeroRotator_PauseSuppressesTick verifies a selection just before a due tick
holds the index until the cool-down elapses.
*/
func TestHeroRotator_PauseSuppressesTick(t *testing.T) {
	rotator, scheduler := mountedRotator(t, 5)

	scheduler.Advance(interval - time.Millisecond)
	rotator.Select(1)

	scheduler.Advance(cooldown - time.Millisecond)
	assert.Equal(t, 1, rotator.State().CurrentIndex)
	assert.True(t, rotator.State().IsPaused)

	scheduler.Advance(time.Millisecond)
	assert.False(t, rotator.State().IsPaused)
	assert.Equal(t, 1, rotator.State().CurrentIndex)

	scheduler.Advance(interval)
	assert.Equal(t, 2, rotator.State().CurrentIndex)
}

/*
TestHeroRotator_CooldownResets verifies that a second selection restarts the
cool-down rather than stacking a second one.
*/
func TestHeroRotator_CooldownResets(t *testing.T) {
	rotator, scheduler := mountedRotator(t, 4)

	scheduler.Advance(2 * time.Second)
	rotator.Select(1)

	scheduler.Advance(8 * time.Second)
	rotator.Select(3)

	// The first cool-down would have ended here.
	scheduler.Advance(2 * time.Second)
	assert.True(t, rotator.State().IsPaused)
	assert.Equal(t, 1, scheduler.Pending())

	scheduler.Advance(8 * time.Second)
	assert.False(t, rotator.State().IsPaused)

	scheduler.Advance(interval)
	assert.Equal(t, 0, rotator.State().CurrentIndex)
}

/*
TestHeroRotator_SingleSlide verifies one slide never moves and keeps ticking.
*/
func TestHeroRotator_SingleSlide(t *testing.T) {
	scheduler := rotationtest.New()
	changes := 0
	rotator := rotation.NewHeroRotator(makeSlides(1), scheduler, rotation.HeroOptions{
		OnChange: func(state rotation.RotationState) {
			changes++
			assert.Equal(t, 0, state.CurrentIndex)
		},
	})
	rotator.Mount()
	defer rotator.Unmount()

	assert.NotPanics(t, func() {
		scheduler.Advance(100 * interval)
		rotator.Next()
		rotator.Prev()
	})

	assert.Equal(t, 0, rotator.State().CurrentIndex)
	assert.Equal(t, 102, changes)
}

/*
TestHeroRotator_Empty verifies an empty sequence renders nothing and schedules nothing.
*/
func TestHeroRotator_Empty(t *testing.T) {
	scheduler := rotationtest.New()
	rotator := rotation.NewHeroRotator(nil, scheduler, rotation.HeroOptions{})
	rotator.Mount()

	assert.NotPanics(t, func() {
		rotator.Select(3)
		rotator.Next()
		scheduler.Advance(time.Minute)
	})

	_, ok := rotator.Render(rotation.ViewportDesktop)
	assert.False(t, ok)
	assert.Zero(t, scheduler.Requests())
}

/*
TestHeroRotator_SetSlides verifies the index is wrapped against a shrinking sequence.
*/
func TestHeroRotator_SetSlides(t *testing.T) {
	rotator, scheduler := mountedRotator(t, 5)

	scheduler.Advance(3 * interval)
	require.Equal(t, 3, rotator.State().CurrentIndex)

	rotator.SetSlides(makeSlides(2))
	assert.Equal(t, 1, rotator.State().CurrentIndex)

	view, ok := rotator.Render(rotation.ViewportDesktop)
	require.True(t, ok)
	assert.Equal(t, "slide-1", view.ID)

	rotator.SetSlides(nil)
	assert.Zero(t, scheduler.Pending())

	rotator.SetSlides(makeSlides(3))
	scheduler.Advance(interval)
	assert.Equal(t, 1, rotator.State().CurrentIndex)
}

/*
TestHeroRotator_Render verifies image fallback and button actions.
*/
func TestHeroRotator_Render(t *testing.T) {
	slides := []rotation.Slide{
		{
			ID:              "welcome",
			Title:           "Welcome",
			Image:           "/media/desktop.jpg",
			PrimaryButton:   rotation.Button{Text: "Prayer times", Href: "/prayer-times"},
			SecondaryButton: rotation.Button{Text: "Donate"},
		},
		{
			ID:          "ramadan",
			Image:       "/media/ramadan.jpg",
			MobileImage: pointer.To("/media/ramadan-mobile.jpg"),
		},
	}
	rotator := rotation.NewHeroRotator(slides, rotationtest.New(), rotation.HeroOptions{})

	view, ok := rotator.Render(rotation.ViewportMobile)
	require.True(t, ok)
	assert.Equal(t, "/media/desktop.jpg", view.Image)
	assert.Equal(t, rotation.NavigateTo{URL: "/prayer-times"}, view.Primary)
	assert.Equal(t, rotation.None{}, view.Secondary)
	assert.Equal(t, 2, view.Count)

	rotator.Select(1)
	view, _ = rotator.Render(rotation.ViewportMobile)
	assert.Equal(t, "/media/ramadan-mobile.jpg", view.Image)

	view, _ = rotator.Render(rotation.ViewportDesktop)
	assert.Equal(t, "/media/ramadan.jpg", view.Image)
}

/*
TestHeroRotator_Unmount verifies no callback is pending or fires after unmount.
*/
func TestHeroRotator_Unmount(t *testing.T) {
	scheduler := rotationtest.New()
	changes := 0
	rotator := rotation.NewHeroRotator(makeSlides(3), scheduler, rotation.HeroOptions{
		OnChange: func(rotation.RotationState) { changes++ },
	})
	rotator.Mount()

	scheduler.Advance(interval)
	rotator.Select(0)
	require.Equal(t, 2, changes)

	rotator.Unmount()
	requests := scheduler.Requests()

	assert.Zero(t, scheduler.Pending())
	scheduler.Advance(time.Hour)
	assert.Equal(t, 2, changes)
	assert.Equal(t, requests, scheduler.Requests())
}
