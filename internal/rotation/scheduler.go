// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package rotation implements the timed rotation controllers behind the homepage:
the hero slide rotator, the notice board auto-scroller and the sermon
horizontal scroller.

Every controller consumes an already resolved, ordered slice of records and
emits render instructions. None of them performs I/O.

Lifecycle:

  - A controller owns its timers and frame loop. They are acquired by Mount and
    released by Unmount, and nothing is shared between instances.
  - Callbacks of one instance are serialised by the instance's mutex, so every
    state change is applied atomically between one callback and the next.
  - After Unmount no callback of the instance is pending.
*/
package rotation

import (
	"sync"
	"time"

	"github.com/taibuivan/masjid/internal/platform/constants"
)

// # Scheduling Primitives

// Cancel stops a scheduled callback. It is safe to call more than once.
type Cancel func()

// Scheduler provides the two timing primitives used by the controllers:
// wall-clock timers and per-frame callbacks.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Cancel

	// Every runs fn repeatedly, every d, until cancelled.
	Every(d time.Duration, fn func()) Cancel

	// RequestFrame runs fn once on the next display frame.
	RequestFrame(fn func()) Cancel
}

// realScheduler backs the primitives with the runtime timer wheel.
type realScheduler struct {
	frameInterval time.Duration
}

// NewScheduler returns a [Scheduler] driven by real time.
//
// A non-positive frameInterval falls back to [constants.FrameInterval].
func NewScheduler(frameInterval time.Duration) Scheduler {
	if frameInterval <= 0 {
		frameInterval = constants.FrameInterval
	}
	return &realScheduler{frameInterval: frameInterval}
}

// AfterFunc implements [Scheduler].
func (scheduler *realScheduler) AfterFunc(d time.Duration, fn func()) Cancel {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// Every implements [Scheduler]. The ticker goroutine exits on cancel.
func (scheduler *realScheduler) Every(d time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// RequestFrame implements [Scheduler].
func (scheduler *realScheduler) RequestFrame(fn func()) Cancel {
	return scheduler.AfterFunc(scheduler.frameInterval, fn)
}

// # Helpers

// wrap returns i modulo n in the range [0, n). n must be positive.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// stop calls cancel when it is set.
func stop(cancel Cancel) {
	if cancel != nil {
		cancel()
	}
}
