package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/ecocatch/internal/games/ecocatch"
)

func TestHoldTrackerDefaults(t *testing.T) {
	h := NewHoldTracker(0, -time.Second)
	if h.initial != DefaultInitialHold {
		t.Errorf("initial = %v, want %v", h.initial, DefaultInitialHold)
	}
	if h.repeat != DefaultRepeatHold {
		t.Errorf("repeat = %v, want %v", h.repeat, DefaultRepeatHold)
	}
}

func TestHoldTrackerWindows(t *testing.T) {
	const (
		initial = 500 * time.Millisecond
		repeat  = 100 * time.Millisecond
	)
	t0 := time.Unix(1_700_000_000, 0)
	ms := func(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

	tests := []struct {
		name    string
		presses []int // Press times in ms, all for the right direction
		at      int
		want    bool
	}{
		{"nothing pressed", nil, 0, false},
		{"same instant as press", []int{0}, 0, true},
		{"inside first window", []int{0}, 499, true},
		{"first window expired", []int{0}, 500, false},
		{"repeat extends hold", []int{0, 450}, 549, true},
		{"repeat window is short", []int{0, 450}, 550, false},
		{"steady repeats", []int{0, 450, 500, 550, 600}, 690, true},
		{"press after expiry starts new first window", []int{0, 900}, 1300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHoldTracker(initial, repeat)
			for _, p := range tt.presses {
				h.Press(1, ms(p))
			}
			got := h.Sample(ms(tt.at))
			if got.Right != tt.want {
				t.Errorf("Right held = %v, want %v", got.Right, tt.want)
			}
			if got.Left {
				t.Error("Left should not be held")
			}
		})
	}
}

func TestHoldTrackerDirectionsIndependent(t *testing.T) {
	t0 := time.Unix(1_700_000_000, 0)
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	h.Press(-1, t0)
	h.Press(1, t0.Add(200*time.Millisecond))

	got := h.Sample(t0.Add(300 * time.Millisecond))
	want := ecocatch.InputState{Left: true, Right: true}
	if got != want {
		t.Errorf("Sample() = %+v, want %+v", got, want)
	}

	// Left expires first
	got = h.Sample(t0.Add(600 * time.Millisecond))
	want = ecocatch.InputState{Right: true}
	if got != want {
		t.Errorf("Sample() = %+v, want %+v", got, want)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	t0 := time.Unix(1_700_000_000, 0)
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	h.Press(-1, t0)
	h.Press(1, t0)
	h.Release()

	if got := h.Sample(t0); got != (ecocatch.InputState{}) {
		t.Errorf("after Release, Sample() = %+v", got)
	}
}

func TestHoldTrackerIgnoresZeroDirection(t *testing.T) {
	t0 := time.Unix(1_700_000_000, 0)
	h := NewHoldTracker(0, 0)

	h.Press(0, t0)
	if got := h.Sample(t0); got != (ecocatch.InputState{}) {
		t.Errorf("Sample() = %+v, want nothing held", got)
	}
}
