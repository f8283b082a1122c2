package parameter

// Ambient scene defaults
const (
	// AmbientCount is the number of circles placed at startup
	AmbientCount = 200
	// AmbientRadius fixes every circle radius; 0 draws from [AmbientRadiusMin, AmbientRadiusMax)
	AmbientRadius    = 20
	AmbientRadiusMin = 5
	AmbientRadiusMax = 20
	// Speed components before the random rotation, integer-floored
	AmbientSpeedMin = 1
	AmbientSpeedMax = 3

	// AmbientProximityRadius is the pointer distance that reveals a circle
	AmbientProximityRadius = 150
	// AmbientAlphaStep is the per-frame fade increment
	AmbientAlphaStep = 0.1
)

// AmbientPalette is the circle color table
var AmbientPalette = []string{
	"#1500ff", // blue
	"#ed00b8", // pink
	"#ff0071", // red
	"#ff693e", // orange
	"#ffbb33", // light orange
	"#f9f871", // yellow
	"#00cd9a", // green
}

// AmbientConfig tunes the bouncing-circles scene
type AmbientConfig struct {
	Count     int     `yaml:"count"`
	Radius    float64 `yaml:"radius"`
	RadiusMin float64 `yaml:"radius_min"`
	RadiusMax float64 `yaml:"radius_max"`
	SpeedMin  float64 `yaml:"speed_min"`
	SpeedMax  float64 `yaml:"speed_max"`

	ProximityRadius float64 `yaml:"proximity_radius"`
	AlphaStep       float64 `yaml:"alpha_step"`

	Palette []string `yaml:"palette"`
}

// Table (air hockey) defaults; lengths are fractions of table width or height
const (
	// TableWidthHeight is width / height of the playing surface
	TableWidthHeight = 0.52
	// TableContainerFill is the share of the container the table may occupy
	TableContainerFill = 0.8

	TablePuckRadiusWidth  = 0.1
	TablePuckRadiusHeight = 0.052
	TableBatRadiusWidth   = 0.1
	TableBatRadiusHeight  = 0.052

	// TableFriction is the per-frame velocity retention factor
	TableFriction = 0.99
	// TableAcceleration is the base paddle hit multiplier
	TableAcceleration = 1.05
	// TableMinSpeedAfterBounce is the paddle kick as a fraction of table width
	TableMinSpeedAfterBounce = 0.0075

	// TablePlayerMinY is the top of the player's half
	TablePlayerMinY = 0.5
)

// TableConfig tunes the puck/paddle game
type TableConfig struct {
	WidthHeight   float64 `yaml:"width_height"`
	ContainerFill float64 `yaml:"container_fill"`

	PuckRadiusWidth  float64 `yaml:"puck_radius_width"`
	PuckRadiusHeight float64 `yaml:"puck_radius_height"`
	BatRadiusWidth   float64 `yaml:"bat_radius_width"`
	BatRadiusHeight  float64 `yaml:"bat_radius_height"`

	Friction            float64 `yaml:"friction"`
	Acceleration        float64 `yaml:"acceleration"`
	MinSpeedAfterBounce float64 `yaml:"min_speed_after_bounce"`

	PuckStart Point `yaml:"puck_start"`
	PuckSpeed Point `yaml:"puck_speed"`
	BatStart  Point `yaml:"bat_start"`

	PlayerMinY float64 `yaml:"player_min_y"`
}

// Point is a plain coordinate pair for configuration files
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func defaultAmbient() AmbientConfig {
	return AmbientConfig{
		Count:           AmbientCount,
		Radius:          AmbientRadius,
		RadiusMin:       AmbientRadiusMin,
		RadiusMax:       AmbientRadiusMax,
		SpeedMin:        AmbientSpeedMin,
		SpeedMax:        AmbientSpeedMax,
		ProximityRadius: AmbientProximityRadius,
		AlphaStep:       AmbientAlphaStep,
		Palette:         append([]string(nil), AmbientPalette...),
	}
}

func defaultTable() TableConfig {
	return TableConfig{
		WidthHeight:         TableWidthHeight,
		ContainerFill:       TableContainerFill,
		PuckRadiusWidth:     TablePuckRadiusWidth,
		PuckRadiusHeight:    TablePuckRadiusHeight,
		BatRadiusWidth:      TableBatRadiusWidth,
		BatRadiusHeight:     TableBatRadiusHeight,
		Friction:            TableFriction,
		Acceleration:        TableAcceleration,
		MinSpeedAfterBounce: TableMinSpeedAfterBounce,
		PuckStart:           Point{X: 0.6, Y: 0.5},
		PuckSpeed:           Point{X: 0, Y: 0.01},
		BatStart:            Point{X: 0.5, Y: 0.85},
		PlayerMinY:          TablePlayerMinY,
	}
}
