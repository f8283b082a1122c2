package parameter

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config enumerates every runtime tunable
type Config struct {
	Ambient AmbientConfig `yaml:"ambient"`
	Table   TableConfig   `yaml:"table"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns the stock tuning of both scenes
func Default() Config {
	return Config{
		Ambient: defaultAmbient(),
		Table:   defaultTable(),
		Audio:   defaultAudio(),
		Log:     defaultLog(),
	}
}

// Validate rejects values the physics cannot run with
func (c Config) Validate() error {
	a := c.Ambient
	switch {
	case a.Count < 0:
		return invalid("ambient.count must be >= 0, got %d", a.Count)
	case a.Radius < 0:
		return invalid("ambient.radius must be >= 0, got %v", a.Radius)
	case a.Radius == 0 && !(a.RadiusMin > 0 && a.RadiusMax >= a.RadiusMin):
		return invalid("ambient.radius_min/radius_max must satisfy 0 < min <= max, got %v/%v", a.RadiusMin, a.RadiusMax)
	case a.SpeedMax < a.SpeedMin:
		return invalid("ambient.speed_max %v below speed_min %v", a.SpeedMax, a.SpeedMin)
	case a.AlphaStep < 0 || a.AlphaStep > 1:
		return invalid("ambient.alpha_step must be in [0, 1], got %v", a.AlphaStep)
	}

	t := c.Table
	switch {
	case !(t.WidthHeight > 0):
		return invalid("table.width_height must be > 0, got %v", t.WidthHeight)
	case !(t.ContainerFill > 0 && t.ContainerFill <= 1):
		return invalid("table.container_fill must be in (0, 1], got %v", t.ContainerFill)
	case !(t.PuckRadiusWidth > 0 && t.PuckRadiusHeight > 0):
		return invalid("table puck radius must be > 0")
	case !(t.BatRadiusWidth > 0 && t.BatRadiusHeight > 0):
		return invalid("table bat radius must be > 0")
	case !(t.Friction > 0 && t.Friction < 1):
		return invalid("table.friction must be in (0, 1), got %v", t.Friction)
	case t.Acceleration <= 0:
		return invalid("table.acceleration must be > 0, got %v", t.Acceleration)
	case t.PlayerMinY < 0 || t.PlayerMinY >= 1:
		return invalid("table.player_min_y must be in [0, 1), got %v", t.PlayerMinY)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
