package ecocatch

import (
	"math"

	"github.com/vovakirdan/ecocatch/internal/core"
)

// ItemView is the read-only view of a live item.
type ItemView struct {
	Box      core.Box
	Category Category
}

// Snapshot is the read-only state handed to the renderer each frame.
// It holds copies, so drawing can never change the simulation.
type Snapshot struct {
	Frame             uint64
	ScreenW           float64
	ScreenH           float64
	Paddle            core.Box
	Items             []ItemView
	Score             int
	MissedRecyclables int
	MissLimit         int
	SpawnTimer        int
	SpawnDelay        int
	GameOver          bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	items := make([]ItemView, len(g.items))
	for i, it := range g.items {
		items[i] = ItemView{Box: it.Box(), Category: it.Category()}
	}

	return Snapshot{
		Frame:             g.frame,
		ScreenW:           g.cfg.Screen.Width,
		ScreenH:           g.cfg.Screen.Height,
		Paddle:            g.paddle.Box(),
		Items:             items,
		Score:             g.score,
		MissedRecyclables: g.missed,
		MissLimit:         g.cfg.Scoring.MissLimit,
		SpawnTimer:        g.spawnTimer,
		SpawnDelay:        g.spawnDelay,
		GameOver:          g.gameOver,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MissedRecyclables) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimer)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnDelay)        //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Items))

	for _, it := range snap.Items {
		h = h*31 + math.Float64bits(it.Box.X)
		h = h*31 + math.Float64bits(it.Box.Y)
		h = h*31 + uint64(it.Category) //#nosec G115 -- hash computation
	}

	if snap.GameOver {
		h = h*31 + 1
	}
	return h
}
