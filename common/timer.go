package common

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidDuration = errors.New("timer: duration must be positive")

// timerEpsilon absorbs float drift when summed frame steps should land
// exactly on a timer's duration.
const timerEpsilon = time.Microsecond / 2

// Clock reports elapsed time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// FrameClock advances only when told to. The simulation steps it by each
// frame's delta so timers stay in lockstep with movement. Time accumulates
// in float seconds so fractional nanoseconds from steps like 1/60 s are not
// lost.
type FrameClock struct {
	seconds float64
}

// Now rounds the accumulated seconds to the nearest nanosecond.
func (c *FrameClock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return time.Duration(math.Round(c.seconds * float64(time.Second)))
}

// Advance moves the clock forward by dt seconds. Negative deltas are ignored.
func (c *FrameClock) Advance(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	c.seconds += dt
}

// WallClock reads real time relative to its creation.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// Timer is a one-shot countdown. It never fires callbacks; callers poll
// Active after Update.
type Timer struct {
	clock    Clock
	duration time.Duration
	start    time.Duration
	active   bool
}

func NewTimer(clock Clock, duration time.Duration) (*Timer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if clock == nil {
		return nil, errors.New("timer: clock is nil")
	}
	return &Timer{clock: clock, duration: duration}, nil
}

// Activate starts (or restarts) the countdown from now.
func (t *Timer) Activate() {
	if t == nil {
		return
	}
	t.start = t.clock.Now()
	t.active = true
}

func (t *Timer) Deactivate() {
	if t == nil {
		return
	}
	t.active = false
	t.start = 0
}

// Update deactivates the timer once its duration has elapsed.
func (t *Timer) Update() {
	if t == nil || !t.active {
		return
	}
	if t.clock.Now()-t.start >= t.duration-timerEpsilon {
		t.Deactivate()
	}
}

func (t *Timer) Active() bool {
	return t != nil && t.active
}

func (t *Timer) Duration() time.Duration {
	if t == nil {
		return 0
	}
	return t.duration
}

// Elapsed reports time since the last Activate, or zero while inactive.
func (t *Timer) Elapsed() time.Duration {
	if t == nil || !t.active {
		return 0
	}
	return t.clock.Now() - t.start
}
