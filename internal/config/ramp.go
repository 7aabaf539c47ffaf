package config

import "github.com/vovakirdan/ecocatch/internal/core"

// SpawnRamp computes the number of frames between item spawns.
// The delay shrinks linearly with score down to a floor.
type SpawnRamp struct {
	cfg SpawnConfig
}

// NewSpawnRamp creates a ramp for the given spawn tuning.
func NewSpawnRamp(cfg SpawnConfig) SpawnRamp {
	return SpawnRamp{cfg: cfg}
}

// Initial returns the delay a fresh game starts with.
func (r SpawnRamp) Initial() int {
	return r.cfg.BaseDelay
}

// Delay returns max(floor, base - floor(score/divisor)).
// A negative score can push the result above the base delay.
func (r SpawnRamp) Delay(score int) int {
	return core.Max(r.cfg.FloorDelay, r.cfg.BaseDelay-core.FloorDiv(score, r.cfg.ScoreDivisor))
}

// Next returns the delay to use after a spawn. It never exceeds current,
// so the delay is non-increasing for the life of a game even when caught
// trash lowers the score.
func (r SpawnRamp) Next(current, score int) int {
	if d := r.Delay(score); d < current {
		return d
	}
	return current
}
