package scene

import (
	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/lixenwraith/vi-bounce/physics"
	"github.com/lixenwraith/vi-bounce/vmath"
)

// Table is the air hockey scene
// Bodies are stored in fractions of the table: x of width, y of height, radius of width
type Table struct {
	cfg      parameter.TableConfig
	state    physics.State
	pipeline physics.Pipeline

	puck *physics.Body
	bat  *physics.Body

	// Table placement inside the container, host units
	origin        vmath.Vec2
	width, height float64
}

// NewTable builds the puck and the player's bat and fits the table into the container
func NewTable(cfg parameter.TableConfig, containerW, containerH float64, onHit physics.ContactFunc) *Table {
	puck := physics.NewMover(
		vmath.V(cfg.PuckStart.X, cfg.PuckStart.Y),
		vmath.V(cfg.PuckSpeed.X, cfg.PuckSpeed.Y),
		cfg.PuckRadiusWidth,
	)
	bat := physics.NewController(vmath.V(cfg.BatStart.X, cfg.BatStart.Y), cfg.BatRadiusWidth)

	t := &Table{
		cfg:  cfg,
		puck: puck,
		bat:  bat,
		state: physics.State{
			Bodies:  []*physics.Body{puck, bat},
			Arena:   physics.Arena{Width: 1, Height: 1},
			Pointer: bat.Position,
		},
		pipeline: TablePipeline(cfg, onHit),
	}
	t.Resize(containerW, containerH)
	return t
}

// TablePipeline is paddle collision, wall clamp, friction, movement, then bat follow
func TablePipeline(cfg parameter.TableConfig, onHit physics.ContactFunc) physics.Pipeline {
	return physics.Pipeline{
		physics.CollidePhase(physics.PaddleResolver{Profile: physics.PaddleProfileFrom(cfg), OnContact: onHit}),
		physics.ConstrainPhase(physics.ClampBounds{MarginX: cfg.PuckRadiusWidth, MarginY: cfg.PuckRadiusHeight}),
		physics.FrictionPhase(physics.Friction{Factor: cfg.Friction}),
		physics.MovePhase(),
		physics.FollowPhase(physics.Follow{Bounds: PlayerBounds(cfg)}),
	}
}

// PlayerBounds is the bat's legal travel rectangle: the lower half, inset by the bat radius
func PlayerBounds(cfg parameter.TableConfig) physics.Rect {
	return physics.Rect{
		MinX: cfg.BatRadiusWidth,
		MinY: cfg.PlayerMinY + cfg.BatRadiusHeight,
		MaxX: 1 - cfg.BatRadiusWidth,
		MaxY: 1 - cfg.BatRadiusHeight,
	}
}

// Fit returns the largest table of the configured aspect inside the filled share of the container
func Fit(cfg parameter.TableConfig, containerW, containerH float64) (width, height float64) {
	maxWidth := containerW * cfg.ContainerFill
	maxHeight := containerH * cfg.ContainerFill
	if maxWidth < maxHeight*cfg.WidthHeight {
		return maxWidth, maxWidth / cfg.WidthHeight
	}
	return maxHeight * cfg.WidthHeight, maxHeight
}

func (t *Table) Name() string { return string(ModeTable) }

// Step is skipped while the table has no area, fractions are undefined there
func (t *Table) Step() {
	if t.width <= 0 || t.height <= 0 {
		return
	}
	t.pipeline.Step(&t.state)
}

// Resize refits the table and centers it in the container
func (t *Table) Resize(containerW, containerH float64) {
	t.width, t.height = Fit(t.cfg, containerW, containerH)
	t.origin = vmath.V((containerW-t.width)/2, (containerH-t.height)/2)
	t.state.Frame = physics.Frame{ScaleX: t.width, ScaleY: t.height}
}

// SetPointer converts a host position to table fractions, clamped to the table
func (t *Table) SetPointer(x, y float64) {
	if t.width <= 0 || t.height <= 0 {
		return
	}
	tableX := vmath.Clamp(x-t.origin.X, 0, t.width)
	tableY := vmath.Clamp(y-t.origin.Y, 0, t.height)
	t.state.Pointer = vmath.V(tableX/t.width, tableY/t.height)
}

func (t *Table) Bodies() []*physics.Body { return t.state.Bodies }

func (t *Table) Project(b *physics.Body) (vmath.Vec2, float64) {
	pos := t.state.Frame.ToReal(b.Position)
	return t.origin.Added(pos), t.state.Frame.Radius(b.Radius)
}

func (t *Table) Bounces() int { return t.state.Bounces }

func (t *Table) Tick() uint64 { return t.state.Tick }

func (t *Table) Puck() *physics.Body { return t.puck }

func (t *Table) Bat() *physics.Body { return t.bat }

// Bounds returns the table rectangle in host units
func (t *Table) Bounds() (origin vmath.Vec2, width, height float64) {
	return t.origin, t.width, t.height
}

// Pointer returns the last pointer position in table fractions
func (t *Table) Pointer() vmath.Vec2 { return t.state.Pointer }
