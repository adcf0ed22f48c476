// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/taibuivan/masjid/internal/rotation"
)

/*
TestRealScheduler_Unmount runs every controller on real time and verifies that
unmounting leaves no goroutine and no further callback.
*/
func TestRealScheduler_Unmount(t *testing.T) {
	defer goleak.VerifyNone(t)

	scheduler := rotation.NewScheduler(time.Millisecond)

	var ticks, frames atomic.Int64
	hero := rotation.NewHeroRotator(makeSlides(3), scheduler, rotation.HeroOptions{
		Interval: 2 * time.Millisecond,
		Cooldown: 5 * time.Millisecond,
		OnChange: func(rotation.RotationState) { ticks.Add(1) },
	})
	board := rotation.NewNoticeScroller(makeNotices(3), scheduler, rotation.NoticeOptions{
		OnFrame: func(rotation.ScrollState) { frames.Add(1) },
	})

	hero.Mount()
	board.Mount()

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 2 && frames.Load() >= 2
	}, time.Second, time.Millisecond)

	hero.Select(1)
	hero.Unmount()
	board.Unmount()

	// Let any callback that was already running drain.
	time.Sleep(20 * time.Millisecond)
	settledTicks, settledFrames := ticks.Load(), frames.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settledTicks, ticks.Load())
	assert.Equal(t, settledFrames, frames.Load())
}
