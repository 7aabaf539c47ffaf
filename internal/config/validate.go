package config

import "fmt"

// ValidationError describes why a configuration was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration keeps the game's invariants
// satisfiable: the paddle fits on screen, items can spawn, the spawn delay
// has a floor at or below its base and the game can end.
func (c EcoConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_SCREEN",
			Message: fmt.Sprintf("screen must be positive, got %gx%g", c.Screen.Width, c.Screen.Height),
		}
	}

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PADDLE",
			Message: fmt.Sprintf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height),
		}
	}
	if c.Paddle.Width > c.Screen.Width {
		return ValidationError{
			Code:    "PADDLE_TOO_WIDE",
			Message: fmt.Sprintf("paddle width %g exceeds screen width %g", c.Paddle.Width, c.Screen.Width),
		}
	}
	if c.Paddle.Speed < 0 {
		return ValidationError{
			Code:    "INVALID_PADDLE",
			Message: fmt.Sprintf("paddle speed must not be negative, got %g", c.Paddle.Speed),
		}
	}
	if c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset > c.Screen.Height {
		return ValidationError{
			Code:    "INVALID_PADDLE",
			Message: fmt.Sprintf("paddle bottom offset %g must be within [%g, %g]", c.Paddle.BottomOffset, c.Paddle.Height, c.Screen.Height),
		}
	}

	if c.Items.Width <= 0 || c.Items.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_ITEM",
			Message: fmt.Sprintf("item size must be positive, got %gx%g", c.Items.Width, c.Items.Height),
		}
	}
	if c.Items.Width >= c.Screen.Width {
		return ValidationError{
			Code:    "ITEM_TOO_WIDE",
			Message: fmt.Sprintf("item width %g leaves no spawn range on screen width %g", c.Items.Width, c.Screen.Width),
		}
	}
	if c.Items.MinSpeed <= 0 || c.Items.SpeedRange < 0 {
		return ValidationError{
			Code:    "INVALID_ITEM",
			Message: fmt.Sprintf("item speed range [%g, %g) must be positive", c.Items.MinSpeed, c.Items.MinSpeed+c.Items.SpeedRange),
		}
	}
	if c.Items.RecyclableChance < 0 || c.Items.RecyclableChance > 1 {
		return ValidationError{
			Code:    "INVALID_CHANCE",
			Message: fmt.Sprintf("recyclable chance must be within [0, 1], got %g", c.Items.RecyclableChance),
		}
	}

	if c.Scoring.MissLimit < 1 {
		return ValidationError{
			Code:    "INVALID_MISS_LIMIT",
			Message: fmt.Sprintf("miss limit must be at least 1, got %d", c.Scoring.MissLimit),
		}
	}

	if c.Spawn.FloorDelay < 1 || c.Spawn.BaseDelay < c.Spawn.FloorDelay {
		return ValidationError{
			Code:    "INVALID_SPAWN",
			Message: fmt.Sprintf("spawn delays need 1 <= floor (%d) <= base (%d)", c.Spawn.FloorDelay, c.Spawn.BaseDelay),
		}
	}
	if c.Spawn.ScoreDivisor <= 0 {
		return ValidationError{
			Code:    "INVALID_SPAWN",
			Message: fmt.Sprintf("score divisor must be positive, got %d", c.Spawn.ScoreDivisor),
		}
	}

	return nil
}
