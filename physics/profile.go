package physics

import "github.com/lixenwraith/vi-bounce/parameter"

// PaddleProfile tunes the paddle hit model
type PaddleProfile struct {
	// Acceleration is the base multiplier on the separation-axis component
	// Effective value ranges over [Acceleration, 2*Acceleration] with penetration depth
	Acceleration float64
	// MinSpeed is the kick added along the separation axis, as a fraction of table width
	MinSpeed float64
}

// DefaultPaddleProfile mirrors parameter.Default table tuning
var DefaultPaddleProfile = PaddleProfileFrom(parameter.Default().Table)

// PaddleProfileFrom builds a profile from table configuration
func PaddleProfileFrom(cfg parameter.TableConfig) PaddleProfile {
	return PaddleProfile{
		Acceleration: cfg.Acceleration,
		MinSpeed:     cfg.MinSpeedAfterBounce,
	}
}
