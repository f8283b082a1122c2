package physics

// Boundary constrains a Mover at the arena edge by rewriting its velocity
type Boundary interface {
	Constrain(b *Body, arena Arena)
}

// ReflectBounds mirrors velocity when the predicted next position leaves the arena
// Axes are tested independently so a corner flips both
type ReflectBounds struct{}

func (ReflectBounds) Constrain(b *Body, arena Arena) {
	if !b.IsMover() {
		return
	}
	next := b.Position.Added(b.Velocity)
	if next.X < b.Radius || next.X > arena.Width-b.Radius {
		b.Velocity = b.Velocity.MirroredHorizontal()
	}
	if next.Y < b.Radius || next.Y > arena.Height-b.Radius {
		b.Velocity = b.Velocity.MirroredVertical()
	}
}

// ClampBounds forces velocity away from any wall the current position has crossed
// Margins are the body radius as fractions of the arena width and height
// Unlike ReflectBounds the sign is forced, not flipped, so a body already
// moving away from the wall keeps its direction
type ClampBounds struct {
	MarginX, MarginY float64
}

func (c ClampBounds) Constrain(b *Body, arena Arena) {
	if !b.IsMover() {
		return
	}
	if b.Position.X < c.MarginX {
		b.Velocity = b.Velocity.PositiveX()
	}
	if b.Position.X > arena.Width-c.MarginX {
		b.Velocity = b.Velocity.NegativeX()
	}
	if b.Position.Y < c.MarginY {
		b.Velocity = b.Velocity.PositiveY()
	}
	if b.Position.Y > arena.Height-c.MarginY {
		b.Velocity = b.Velocity.NegativeY()
	}
}
