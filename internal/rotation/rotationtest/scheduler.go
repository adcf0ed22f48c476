// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package rotationtest provides a manually driven [rotation.Scheduler] for tests.
//
// Time only moves through [Scheduler.Advance] and frames only run through
// [Scheduler.Frame], so every timing property can be checked deterministically.
package rotationtest

import (
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/masjid/internal/rotation"
)

type timer struct {
	at        time.Duration
	every     time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

type frame struct {
	fn        func()
	cancelled bool
}

// Scheduler is a fake clock. Timers due at the same instant run in the order
// they were scheduled.
type Scheduler struct {
	mu       sync.Mutex
	now      time.Duration
	seq      uint64
	timers   []*timer
	frames   []*frame
	requests int
}

// New returns a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

var _ rotation.Scheduler = (*Scheduler)(nil)

// AfterFunc implements [rotation.Scheduler].
func (scheduler *Scheduler) AfterFunc(d time.Duration, fn func()) rotation.Cancel {
	return scheduler.addTimer(d, 0, fn)
}

// Every implements [rotation.Scheduler].
func (scheduler *Scheduler) Every(d time.Duration, fn func()) rotation.Cancel {
	return scheduler.addTimer(d, d, fn)
}

// RequestFrame implements [rotation.Scheduler].
func (scheduler *Scheduler) RequestFrame(fn func()) rotation.Cancel {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.requests++
	entry := &frame{fn: fn}
	scheduler.frames = append(scheduler.frames, entry)

	return func() {
		scheduler.mu.Lock()
		defer scheduler.mu.Unlock()
		entry.cancelled = true
	}
}

// Advance moves the clock forward by d, running every timer that falls due.
func (scheduler *Scheduler) Advance(d time.Duration) {
	scheduler.mu.Lock()
	target := scheduler.now + d

	for {
		next := scheduler.nextDueLocked(target)
		if next == nil {
			break
		}

		scheduler.now = next.at
		if next.every > 0 {
			next.at += next.every
			scheduler.seq++
			next.seq = scheduler.seq
		} else {
			next.cancelled = true
		}

		scheduler.mu.Unlock()
		next.fn()
		scheduler.mu.Lock()
	}

	scheduler.now = target
	scheduler.compactLocked()
	scheduler.mu.Unlock()
}

// Frame runs the callbacks requested before this call and returns how many ran.
// Frames requested by those callbacks wait for the next call.
func (scheduler *Scheduler) Frame() int {
	scheduler.mu.Lock()
	batch := scheduler.frames
	scheduler.frames = nil
	scheduler.mu.Unlock()

	ran := 0
	for _, entry := range batch {
		scheduler.mu.Lock()
		cancelled := entry.cancelled
		entry.cancelled = true
		scheduler.mu.Unlock()

		if cancelled {
			continue
		}
		entry.fn()
		ran++
	}
	return ran
}

// Frames runs n consecutive frames.
func (scheduler *Scheduler) Frames(n int) {
	for range n {
		scheduler.Frame()
	}
}

// Now returns the elapsed fake time.
func (scheduler *Scheduler) Now() time.Duration {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.now
}

// Pending returns the number of live timers and frame requests.
func (scheduler *Scheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	pending := 0
	for _, entry := range scheduler.timers {
		if !entry.cancelled {
			pending++
		}
	}
	for _, entry := range scheduler.frames {
		if !entry.cancelled {
			pending++
		}
	}
	return pending
}

// Requests returns how many times any primitive was scheduled.
func (scheduler *Scheduler) Requests() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.requests
}

func (scheduler *Scheduler) addTimer(d, every time.Duration, fn func()) rotation.Cancel {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.requests++
	scheduler.seq++
	entry := &timer{at: scheduler.now + d, every: every, seq: scheduler.seq, fn: fn}
	scheduler.timers = append(scheduler.timers, entry)

	return func() {
		scheduler.mu.Lock()
		defer scheduler.mu.Unlock()
		entry.cancelled = true
	}
}

func (scheduler *Scheduler) nextDueLocked(target time.Duration) *timer {
	var due []*timer
	for _, entry := range scheduler.timers {
		if !entry.cancelled && entry.at <= target {
			due = append(due, entry)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (scheduler *Scheduler) compactLocked() {
	live := scheduler.timers[:0]
	for _, entry := range scheduler.timers {
		if !entry.cancelled {
			live = append(live, entry)
		}
	}
	scheduler.timers = live
}
