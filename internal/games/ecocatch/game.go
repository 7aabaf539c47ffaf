// Package ecocatch implements the Eco Catch game: a paddle at the bottom of
// the screen catches falling recyclables for points and dodges trash.
// Missing too many recyclables ends the game.
//
// The package is pure simulation. It counts frames, not wall time, and
// never draws anything itself; Render turns a Snapshot into screen cells.
package ecocatch

import (
	"math/rand"

	"github.com/vovakirdan/ecocatch/internal/config"
)

// ID is the identifier used for logs and round records.
const ID = "ecocatch"

// Title is the display name of the game.
const Title = "Eco Catch"

// Phase is the state machine position of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// StepResult describes what happened during one Update call.
type StepResult struct {
	Spawned           bool // An item was spawned this frame
	CaughtRecyclables int
	CaughtTrash       int
	MissedRecyclables int
	MissedTrash       int
	Ended             bool // The game switched to game over this frame
}

// Game owns the whole session state. It is created by the driver and only
// mutated through Update, Reset and Restart.
type Game struct {
	cfg  config.EcoConfig
	ramp config.SpawnRamp
	rng  *rand.Rand

	paddle     *Paddle
	items      []Item
	score      int
	missed     int // Recyclables that left the screen uncaught
	gameOver   bool
	spawnTimer int
	spawnDelay int
	frame      uint64

	// Per-round tallies for the round log
	caught      int
	trashCaught int
}

// New creates a game in its initial Playing state.
// The RNG stream is seeded once and continues across resets, so a session
// is reproducible from its seed and inputs.
func New(cfg config.EcoConfig, seed int64) *Game {
	g := &Game{
		cfg:  cfg,
		ramp: config.NewSpawnRamp(cfg.Spawn),
		rng:  rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset returns every field to its start value, from any phase.
func (g *Game) Reset() {
	g.paddle = newPaddle(g.cfg.Screen, g.cfg.Paddle)
	g.items = g.items[:0]
	g.score = 0
	g.missed = 0
	g.gameOver = false
	g.spawnTimer = 0
	g.spawnDelay = g.ramp.Initial()
	g.frame = 0
	g.caught = 0
	g.trashCaught = 0
}

// Restart handles the player's restart command. It only has an effect in
// the game over phase and reports whether the game was reset.
func (g *Game) Restart() bool {
	if !g.gameOver {
		return false
	}
	g.Reset()
	return true
}

// Update advances the simulation by one frame. It does nothing once the
// game is over.
func (g *Game) Update(in InputState) StepResult {
	var res StepResult
	if g.gameOver {
		return res
	}

	g.frame++
	g.paddle.Update(in)

	g.spawnTimer++
	if g.spawnTimer >= g.spawnDelay {
		g.items = append(g.items, spawnItem(g.rng, g.cfg.Screen, g.cfg.Items))
		g.spawnTimer = 0
		g.spawnDelay = g.ramp.Next(g.spawnDelay, g.score)
		res.Spawned = true
	}

	// Items are independent, so filtering in place in spawn order gives the
	// same outcome as any other order.
	live := g.items[:0]
	for _, it := range g.items {
		it.Advance()

		switch {
		case it.CollidesWith(g.paddle):
			g.catch(it, &res)
		case it.IsOffScreen(g.cfg.Screen.Height):
			g.miss(it, &res)
		default:
			live = append(live, it)
		}
	}
	g.items = live

	if g.missed >= g.cfg.Scoring.MissLimit {
		g.gameOver = true
		res.Ended = true
	}

	return res
}

// catch scores an item that touched the paddle.
func (g *Game) catch(it Item, res *StepResult) {
	switch it.Category() {
	case Recyclable:
		g.score += g.cfg.Scoring.CatchRecyclable
		g.caught++
		res.CaughtRecyclables++
	case Trash:
		g.score += g.cfg.Scoring.CatchTrash
		g.trashCaught++
		res.CaughtTrash++
	}
}

// miss accounts for an item that fell off the bottom.
func (g *Game) miss(it Item, res *StepResult) {
	switch it.Category() {
	case Recyclable:
		g.missed++
		res.MissedRecyclables++
	case Trash:
		res.MissedTrash++
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	if g.gameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// Score returns the current score. It may be negative.
func (g *Game) Score() int {
	return g.score
}

// MissedRecyclables returns how many recyclables fell off screen.
func (g *Game) MissedRecyclables() int {
	return g.missed
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Frame returns the number of simulated frames since the last reset.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.EcoConfig {
	return g.cfg
}

// Tally returns per-round catch counts: recyclables caught and trash caught.
func (g *Game) Tally() (caught, trashCaught int) {
	return g.caught, g.trashCaught
}
