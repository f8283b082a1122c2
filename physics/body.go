package physics

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-bounce/vmath"
)

// Kind discriminates bodies reacting to physics from bodies driven by input
type Kind uint8

const (
	// KindMover is subject to collision response and boundary constraints
	KindMover Kind = iota
	// KindController follows an external input source and never reacts to collisions
	KindController
)

func (k Kind) String() string {
	switch k {
	case KindMover:
		return "mover"
	case KindController:
		return "controller"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Body is one circular physical entity
// Position, Velocity and Radius share the owning scene's coordinate system
// Velocity is displacement per frame
type Body struct {
	ID       uuid.UUID
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
	Kind     Kind

	// Render-only attributes, ignored by physics
	Color string
	Alpha float64
}

// NewMover creates a collidable body; panics on non-positive radius
func NewMover(pos, vel vmath.Vec2, radius float64) *Body {
	return newBody(KindMover, pos, vel, radius)
}

// NewController creates an input-driven body at rest; panics on non-positive radius
func NewController(pos vmath.Vec2, radius float64) *Body {
	return newBody(KindController, pos, vmath.Vec2{}, radius)
}

func newBody(kind Kind, pos, vel vmath.Vec2, radius float64) *Body {
	if !(radius > 0) {
		panic(fmt.Sprintf("physics: %s radius must be positive, got %v", kind, radius))
	}
	return &Body{
		ID:       uuid.New(),
		Position: pos,
		Velocity: vel,
		Radius:   radius,
		Kind:     kind,
	}
}

// IsMover reports whether the body takes part in collision and boundary physics
func (b *Body) IsMover() bool {
	return b.Kind == KindMover
}

// DistanceTo returns center distance in body coordinates
func (b *Body) DistanceTo(o *Body) float64 {
	return vmath.Distance(b.Position, o.Position)
}

// Overlaps reports strict circle overlap in body coordinates
func (b *Body) Overlaps(o *Body) bool {
	return b.DistanceTo(o) < b.Radius+o.Radius
}

// Movers filters bodies by KindMover, preserving order
func Movers(bodies []*Body) []*Body {
	out := make([]*Body, 0, len(bodies))
	for _, b := range bodies {
		if b.IsMover() {
			out = append(out, b)
		}
	}
	return out
}
