// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/masjid/internal/rotation"
)

/*
TestSermonScroller_EdgeFlags verifies the buttons disable exactly at the edges.
*/
func TestSermonScroller_EdgeFlags(t *testing.T) {
	const width, viewport = 2000.0, 800.0

	tests := []struct {
		name      string
		offset    float64
		wantLeft  bool
		wantRight bool
	}{
		{"at_start", 0, false, true},
		{"middle", 600, true, true},
		{"just_inside_tolerance", 1189, true, true},
		{"at_tolerance", 1190, true, false},
		{"at_end", 1200, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scroller := rotation.NewSermonScroller(rotation.DefaultSermonOptions())
			scroller.Resize(width, viewport)
			scroller.OnScroll(tt.offset)

			state := scroller.State()
			assert.Equal(t, tt.wantLeft, state.CanScrollLeft)
			assert.Equal(t, tt.wantRight, state.CanScrollRight)
		})
	}
}

/*
TestSermonScroller_Scroll verifies stepping and clamping at both ends.
*/
func TestSermonScroller_Scroll(t *testing.T) {
	scroller := rotation.NewSermonScroller(rotation.SermonOptions{Step: 400})
	scroller.Resize(1500, 800)

	assert.Equal(t, rotation.ScrollInstruction{Left: 0, Smooth: true}, scroller.Scroll(rotation.DirectionLeft))
	assert.False(t, scroller.State().CanScrollLeft)

	assert.Equal(t, 400.0, scroller.Scroll(rotation.DirectionRight).Left)
	assert.Equal(t, 700.0, scroller.Scroll(rotation.DirectionRight).Left)

	state := scroller.State()
	assert.True(t, state.CanScrollLeft)
	assert.False(t, state.CanScrollRight)

	assert.Equal(t, 300.0, scroller.Scroll(rotation.DirectionLeft).Left)
}

/*
TestSermonScroller_NarrowRow verifies a row that fits its container cannot scroll.
*/
func TestSermonScroller_NarrowRow(t *testing.T) {
	scroller := rotation.NewSermonScroller(rotation.DefaultSermonOptions())
	scroller.Resize(600, 800)

	state := scroller.State()
	assert.False(t, state.CanScrollLeft)
	assert.False(t, state.CanScrollRight)
	assert.Zero(t, scroller.Scroll(rotation.DirectionRight).Left)
}

/*
TestSermonScroller_Tolerance verifies zero is a strict edge and a negative
value falls back to the 10px default.
*/
func TestSermonScroller_Tolerance(t *testing.T) {
	tests := []struct {
		name      string
		tolerance float64
		offset    float64
		wantRight bool
	}{
		{"zero_strict_inside", 0, 1199, true},
		{"zero_strict_edge", 0, 1200, false},
		{"negative_uses_default", -1, 1190, false},
		{"explicit", 25, 1174, true},
		{"explicit_edge", 25, 1175, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scroller := rotation.NewSermonScroller(rotation.SermonOptions{Step: 400, Tolerance: tt.tolerance})
			scroller.Resize(2000, 800)
			scroller.OnScroll(tt.offset)
			assert.Equal(t, tt.wantRight, scroller.State().CanScrollRight)
		})
	}
}
