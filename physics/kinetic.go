package physics

import "github.com/lixenwraith/vi-bounce/vmath"

// Move advances position by one frame of velocity
func Move(b *Body) {
	b.Position = b.Position.Added(b.Velocity)
}

// Friction decays real-space velocity by Factor each frame
type Friction struct {
	Factor float64
}

// Apply scales velocity in real units and stores it back in body coordinates
func (f Friction) Apply(b *Body, frame Frame) {
	decayed := frame.ToReal(b.Velocity).Scaled(f.Factor)
	b.Velocity = frame.FromReal(decayed)
}

// ProximityFade ramps Alpha toward 1 while the pointer is within Radius, toward 0 otherwise
type ProximityFade struct {
	Radius float64
	Step   float64
}

func (p ProximityFade) Apply(b *Body, pointer vmath.Vec2) {
	if vmath.Distance(b.Position, pointer) < p.Radius {
		b.Alpha = min(b.Alpha+p.Step, 1)
	} else {
		b.Alpha = max(b.Alpha-p.Step, 0)
	}
}
