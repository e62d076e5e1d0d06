package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimerRejectsInvalidDuration(t *testing.T) {
	clock := &FrameClock{}
	for _, d := range []time.Duration{0, -time.Second} {
		_, err := NewTimer(clock, d)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
	_, err := NewTimer(nil, time.Second)
	assert.Error(t, err)
}

func TestTimerActiveUntilDurationElapses(t *testing.T) {
	clock := &FrameClock{}
	timer, err := NewTimer(clock, 200*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, timer.Active())

	timer.Activate()
	transitions := 0
	was := timer.Active()
	for step := 0; step < 20; step++ {
		clock.Advance(0.025)
		timer.Update()
		elapsed := time.Duration(step+1) * 25 * time.Millisecond
		if elapsed < 200*time.Millisecond {
			assert.True(t, timer.Active(), "elapsed %v", elapsed)
		} else {
			assert.False(t, timer.Active(), "elapsed %v", elapsed)
		}
		if was != timer.Active() {
			transitions++
		}
		was = timer.Active()
	}
	assert.Equal(t, 1, transitions)
}

func TestTimerRestart(t *testing.T) {
	clock := &FrameClock{}
	timer, err := NewTimer(clock, time.Second)
	require.NoError(t, err)

	timer.Activate()
	clock.Advance(1)
	timer.Update()
	require.False(t, timer.Active())

	timer.Activate()
	clock.Advance(0.5)
	timer.Update()
	assert.True(t, timer.Active())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed())
}

func TestFrameClockIgnoresNegativeDelta(t *testing.T) {
	clock := &FrameClock{}
	clock.Advance(0.5)
	clock.Advance(-1)
	assert.Equal(t, 500*time.Millisecond, clock.Now())
}

func TestTimerExpiresOnTickAtCommonRates(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		dt       float64
		want     int
	}{
		{"6s at 60hz", 6 * time.Second, 1.0 / 60, 360},
		{"2s at 60hz", 2 * time.Second, 1.0 / 60, 120},
		{"200ms at 60hz", 200 * time.Millisecond, 1.0 / 60, 12},
		{"200ms at 30hz", 200 * time.Millisecond, 1.0 / 30, 6},
		{"1s at 30hz", time.Second, 1.0 / 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &FrameClock{}
			timer, err := NewTimer(clock, tt.duration)
			require.NoError(t, err)
			timer.Activate()

			ticks := 0
			for timer.Active() && ticks < 10*tt.want {
				clock.Advance(tt.dt)
				timer.Update()
				ticks++
			}
			assert.Equal(t, tt.want, ticks)
		})
	}
}

func TestFrameClockKeepsFractionalNanoseconds(t *testing.T) {
	clock := &FrameClock{}
	for i := 0; i < 60; i++ {
		clock.Advance(1.0 / 60)
	}
	assert.InDelta(t, float64(time.Second), float64(clock.Now()), float64(time.Microsecond))
}
