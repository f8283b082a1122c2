package physics

import "github.com/lixenwraith/vi-bounce/vmath"

// Frame converts body coordinates into real pixel units and back
// The ambient scene stores real units already (Identity); the table stores
// fractions of its width and height
type Frame struct {
	ScaleX, ScaleY float64
}

// Identity maps body coordinates 1:1 to real units
var Identity = Frame{ScaleX: 1, ScaleY: 1}

// ToReal scales a position or velocity into real units
func (f Frame) ToReal(v vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: v.X * f.ScaleX, Y: v.Y * f.ScaleY}
}

// FromReal scales a real-unit position or velocity back into body coordinates
func (f Frame) FromReal(v vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: v.X / f.ScaleX, Y: v.Y / f.ScaleY}
}

// Radius converts a body radius to real units; radii are always fractions of width
func (f Frame) Radius(r float64) float64 {
	return r * f.ScaleX
}

// Arena is the playfield extent in body coordinates
type Arena struct {
	Width, Height float64
}

// Rect is an axis-aligned travel rectangle in body coordinates
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Clamp pins p inside the rectangle
func (r Rect) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, r.MinX, r.MaxX),
		Y: vmath.Clamp(p.Y, r.MinY, r.MaxY),
	}
}

// Contains reports whether p lies inside the closed rectangle
func (r Rect) Contains(p vmath.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}
