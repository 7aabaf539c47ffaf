package tui

import (
	"time"

	"github.com/vovakirdan/ecocatch/internal/games/ecocatch"
)

// Hold windows. A terminal reports a held key as one press, a pause of the
// keyboard's repeat delay, then a stream of repeats. The first window must
// bridge that pause; later ones only the gap between repeats.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

// HoldTracker turns terminal key presses into held-key state.
// Terminals send no release events, so a direction counts as held until no
// press for it has been seen within its hold window. The two directions are
// tracked independently.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	left    hold
	right   hold
}

type hold struct {
	active    bool
	repeating bool
	lastSeen  time.Time
}

// NewHoldTracker creates a tracker with the given windows.
// Non-positive windows fall back to the defaults.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{initial: initial, repeat: repeat}
}

// Press records a key event for a direction: -1 for left, 1 for right.
func (h *HoldTracker) Press(dir int, now time.Time) {
	switch dir {
	case -1:
		h.left.press(now, h.initial, h.repeat)
	case 1:
		h.right.press(now, h.initial, h.repeat)
	}
}

// Sample returns the held state at the given time.
func (h *HoldTracker) Sample(now time.Time) ecocatch.InputState {
	return ecocatch.InputState{
		Left:  h.left.held(now, h.initial, h.repeat),
		Right: h.right.held(now, h.initial, h.repeat),
	}
}

// Release drops every held direction.
func (h *HoldTracker) Release() {
	h.left = hold{}
	h.right = hold{}
}

func (k *hold) press(now time.Time, initial, repeat time.Duration) {
	if k.held(now, initial, repeat) {
		k.repeating = true
	} else {
		k.active = true
		k.repeating = false
	}
	k.lastSeen = now
}

func (k *hold) held(now time.Time, initial, repeat time.Duration) bool {
	if !k.active {
		return false
	}
	window := initial
	if k.repeating {
		window = repeat
	}
	return now.Sub(k.lastSeen) < window
}
