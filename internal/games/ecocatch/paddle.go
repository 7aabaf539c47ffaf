package ecocatch

import (
	"github.com/vovakirdan/ecocatch/internal/config"
	"github.com/vovakirdan/ecocatch/internal/core"
)

// InputState is the set of held keys sampled once at the start of a frame.
type InputState struct {
	Left  bool
	Right bool
}

// Paddle is the player-controlled catcher. It only moves horizontally.
type Paddle struct {
	x, y  float64
	w, h  float64
	speed float64
	maxX  float64 // screen width minus paddle width
}

// newPaddle creates a paddle centered horizontally near the bottom of the screen.
func newPaddle(screen config.ScreenConfig, cfg config.PaddleConfig) *Paddle {
	return &Paddle{
		x:     screen.Width/2 - cfg.Width/2,
		y:     screen.Height - cfg.BottomOffset,
		w:     cfg.Width,
		h:     cfg.Height,
		speed: cfg.Speed,
		maxX:  screen.Width - cfg.Width,
	}
}

// Move shifts the paddle by direction*speed and clamps it to the screen.
// direction is -1, 0 or 1.
func (p *Paddle) Move(direction int) {
	p.x += float64(direction) * p.speed
	p.x = core.ClampF(p.x, 0, p.maxX)
}

// Update applies held keys. Holding both directions moves left then right,
// which cancels out unless the paddle is pinned against a wall.
func (p *Paddle) Update(in InputState) {
	if in.Left {
		p.Move(-1)
	}
	if in.Right {
		p.Move(1)
	}
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.x, p.y, p.w, p.h)
}
