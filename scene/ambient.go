package scene

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/lixenwraith/vi-bounce/physics"
	"github.com/lixenwraith/vi-bounce/vmath"
)

// Ambient is the bouncing-circles scene; bodies live directly in host units
type Ambient struct {
	state    physics.State
	pipeline physics.Pipeline
}

// NewAmbient places cfg.Count non-overlapping circles in a width x height arena
// Returns physics.ErrPlacementExhausted (wrapped) when they do not fit
func NewAmbient(cfg parameter.AmbientConfig, width, height float64, rng *rand.Rand, onContact physics.ContactFunc) (*Ambient, error) {
	arena := physics.Arena{Width: width, Height: height}
	sampler := &physics.RandomSampler{
		Rng:       rng,
		Arena:     arena,
		Radius:    cfg.Radius,
		RadiusMin: cfg.RadiusMin,
		RadiusMax: cfg.RadiusMax,
		SpeedMin:  cfg.SpeedMin,
		SpeedMax:  cfg.SpeedMax,
		Palette:   cfg.Palette,
	}
	bodies, err := physics.Place(cfg.Count, sampler, physics.PlacementBudget)
	if err != nil {
		return nil, fmt.Errorf("ambient scene %.0fx%.0f: %w", width, height, err)
	}

	return &Ambient{
		state: physics.State{
			Bodies: bodies,
			Arena:  arena,
			Frame:  physics.Identity,
		},
		pipeline: AmbientPipeline(cfg, onContact),
	}, nil
}

// AmbientPipeline is collision, reflection, movement, then proximity fade
func AmbientPipeline(cfg parameter.AmbientConfig, onContact physics.ContactFunc) physics.Pipeline {
	return physics.Pipeline{
		physics.CollidePhase(physics.ElasticResolver{OnContact: onContact}),
		physics.ConstrainPhase(physics.ReflectBounds{}),
		physics.MovePhase(),
		physics.FadePhase(physics.ProximityFade{Radius: cfg.ProximityRadius, Step: cfg.AlphaStep}),
	}
}

func (a *Ambient) Name() string { return string(ModeAmbient) }

func (a *Ambient) Step() { a.pipeline.Step(&a.state) }

func (a *Ambient) Resize(width, height float64) {
	a.state.Arena = physics.Arena{Width: width, Height: height}
}

func (a *Ambient) SetPointer(x, y float64) {
	a.state.Pointer = vmath.V(x, y)
}

func (a *Ambient) Bodies() []*physics.Body { return a.state.Bodies }

func (a *Ambient) Project(b *physics.Body) (vmath.Vec2, float64) {
	return b.Position, b.Radius
}

func (a *Ambient) Bounces() int { return a.state.Bounces }

func (a *Ambient) Tick() uint64 { return a.state.Tick }

// Arena returns the current extent
func (a *Ambient) Arena() physics.Arena { return a.state.Arena }
