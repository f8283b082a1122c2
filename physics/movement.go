package physics

import "github.com/lixenwraith/vi-bounce/vmath"

// Follow drives Controllers to an input position clamped to their travel rectangle
type Follow struct {
	Bounds Rect
}

// Drive sets position directly; Controllers carry no velocity
func (f Follow) Drive(b *Body, target vmath.Vec2) {
	if b.Kind != KindController {
		return
	}
	b.Position = f.Bounds.Clamp(target)
}
