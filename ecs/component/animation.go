package component

import (
	"errors"
	"fmt"
)

var ErrEmptyAnimation = errors.New("animation: empty sequence")

type AnimationMode int

const (
	// AnimationLoop wraps back to frame 0 after the last frame.
	AnimationLoop AnimationMode = iota
	// AnimationOneShot destroys the owning entity after the last frame.
	AnimationOneShot
)

// Animation advances a fractional frame index through named sequences.
// Sequences maps a key such as "run_left" to its frame count.
type Animation struct {
	Sequences map[string]int
	Current   string
	Index     float64
	Rate      float64
	Mode      AnimationMode
	// Completed is set for the tick in which the sequence ran past its end.
	Completed bool
}

func NewAnimation(sequences map[string]int, current string, rate float64, mode AnimationMode) (*Animation, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("animation: no sequences: %w", ErrEmptyAnimation)
	}
	for key, n := range sequences {
		if n <= 0 {
			return nil, fmt.Errorf("animation: sequence %q: %w", key, ErrEmptyAnimation)
		}
	}
	if _, ok := sequences[current]; !ok {
		return nil, fmt.Errorf("animation: unknown initial sequence %q", current)
	}
	if rate < 0 {
		return nil, fmt.Errorf("animation: negative rate %v", rate)
	}
	return &Animation{
		Sequences: sequences,
		Current:   current,
		Rate:      rate,
		Mode:      mode,
	}, nil
}

// Len returns the frame count of the current sequence, or 0 if unknown.
func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return a.Sequences[a.Current]
}

// Play switches sequence without resetting the index. Unknown keys are
// ignored.
func (a *Animation) Play(key string) {
	if a == nil {
		return
	}
	if _, ok := a.Sequences[key]; ok {
		a.Current = key
	}
}

// Frame returns the current frame index clamped into the sequence.
func (a *Animation) Frame() int {
	n := a.Len()
	if n == 0 {
		return 0
	}
	i := int(a.Index)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

var AnimationComponent = NewComponent[Animation]()
