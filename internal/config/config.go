// Package config provides YAML-based tuning for the game: geometry, speeds,
// scoring and the spawn-rate ramp.
package config

// EcoConfig contains all tuning for a game session.
type EcoConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Items   ItemConfig    `yaml:"items"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

// ScreenConfig is the logical playfield size. It is fixed for a session and
// independent of the terminal the game is drawn into.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per frame
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom edge to the paddle top
}

// ItemConfig defines falling items.
type ItemConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MinSpeed         float64 `yaml:"min_speed"`
	SpeedRange       float64 `yaml:"speed_range"`       // Speed is drawn from [min, min+range)
	RecyclableChance float64 `yaml:"recyclable_chance"` // Probability an item is recyclable
}

// ScoringConfig defines points and the end condition.
type ScoringConfig struct {
	CatchRecyclable int `yaml:"catch_recyclable"`
	CatchTrash      int `yaml:"catch_trash"`
	MissLimit       int `yaml:"miss_limit"` // Missed recyclables that end the game
}

// SpawnConfig defines the linear spawn-rate ramp.
type SpawnConfig struct {
	BaseDelay    int `yaml:"base_delay"`    // Frames between spawns at score 0
	FloorDelay   int `yaml:"floor_delay"`   // Minimum frames between spawns
	ScoreDivisor int `yaml:"score_divisor"` // Points per frame of delay removed
}
