package ecocatch

import (
	"math/rand"

	"github.com/vovakirdan/ecocatch/internal/config"
	"github.com/vovakirdan/ecocatch/internal/core"
)

// Category tags a falling item. Only two categories exist and each has a
// fixed scoring rule and a fixed look.
type Category int

const (
	Recyclable Category = iota
	Trash
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Recyclable:
		return "recyclable"
	case Trash:
		return "trash"
	default:
		return "unknown"
	}
}

// Item is a falling object. Category and speed are fixed at spawn;
// only the vertical position changes afterwards.
type Item struct {
	x, y     float64
	w, h     float64
	speed    float64
	category Category
}

// spawnItem creates an item just above the visible area at a random
// column with a random speed and category. The category draw is independent
// of the speed draw.
func spawnItem(rng *rand.Rand, screen config.ScreenConfig, cfg config.ItemConfig) Item {
	it := Item{
		w: cfg.Width,
		h: cfg.Height,
	}
	it.x = rng.Float64() * (screen.Width - cfg.Width)
	it.y = -cfg.Height
	it.speed = cfg.MinSpeed + rng.Float64()*cfg.SpeedRange

	it.category = Trash
	if rng.Float64() < cfg.RecyclableChance {
		it.category = Recyclable
	}
	return it
}

// Advance moves the item down by its speed.
func (it *Item) Advance() {
	it.y += it.speed
}

// IsOffScreen reports whether the item's top edge has passed below the
// bottom of a screen of the given height.
func (it Item) IsOffScreen(screenH float64) bool {
	return it.y > screenH
}

// CollidesWith reports whether the item overlaps the paddle.
// Touching edges do not count.
func (it Item) CollidesWith(p *Paddle) bool {
	return it.Box().Overlaps(p.Box())
}

// Box returns the item's bounding box.
func (it Item) Box() core.Box {
	return core.NewBox(it.x, it.y, it.w, it.h)
}

// Speed returns the fall speed in units per frame.
func (it Item) Speed() float64 {
	return it.speed
}

// Category returns the item's category.
func (it Item) Category() Category {
	return it.category
}
