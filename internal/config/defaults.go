package config

import (
	_ "embed"
)

//go:embed defaults/ecocatch.yaml
var defaultEcoYAML []byte

// DefaultEcoConfig returns the built-in tuning.
func DefaultEcoConfig() EcoConfig {
	return EcoConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       60,
			Speed:        7,
			BottomOffset: 100,
		},
		Items: ItemConfig{
			Width:            40,
			Height:           40,
			MinSpeed:         3,
			SpeedRange:       2,
			RecyclableChance: 0.6,
		},
		Scoring: ScoringConfig{
			CatchRecyclable: 10,
			CatchTrash:      -5,
			MissLimit:       10,
		},
		Spawn: SpawnConfig{
			BaseDelay:    60,
			FloorDelay:   20,
			ScoreDivisor: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultEcoYAML
}
