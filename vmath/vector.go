package vmath

import "math"

// Vec2 is an immutable 2D vector; every operation returns a new value
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Angle returns the quadrant-aware angle in radians within [0, 2π), rounded to precision digits
// Zero vector maps to 0. Vertical vectors map to π/2 (y > 0) and 3π/2 (y < 0)
func (v Vec2) Angle(precision int) float64 {
	var angle float64
	switch {
	case v.X == 0 && v.Y == 0:
		angle = 0
	case v.X == 0 && v.Y > 0:
		angle = math.Pi / 2
	case v.X == 0:
		angle = 3 * math.Pi / 2
	case v.X > 0 && v.Y >= 0:
		angle = math.Atan(v.Y / v.X)
	case v.X < 0:
		// Second and third quadrant share the π offset
		angle = math.Pi + math.Atan(v.Y/v.X)
	default:
		angle = 2*math.Pi + math.Atan(v.Y/v.X)
	}
	return Round(angle, precision)
}

// AngleDeg returns Angle in degrees
func (v Vec2) AngleDeg(precision int) float64 {
	return Round(RadToDeg(v.Angle(DefaultPrecision)), precision)
}

// Magnitude returns the Euclidean norm
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotated returns the vector turned by rad, magnitude rebuilt from the new angle
func (v Vec2) Rotated(rad float64) Vec2 {
	newAngle := v.Angle(DefaultPrecision) + rad
	mag := v.Magnitude()
	return Vec2{
		X: mag * math.Cos(newAngle),
		Y: mag * math.Sin(newAngle),
	}
}

// MirroredHorizontal negates X (reflection across the vertical axis)
// Use for left/right wall bounces
func (v Vec2) MirroredHorizontal() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// MirroredVertical negates Y (reflection across the horizontal axis)
// Use for top/bottom wall bounces
func (v Vec2) MirroredVertical() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// Reversed negates both components
func (v Vec2) Reversed() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// PositiveX forces X to point right, keeping its magnitude
func (v Vec2) PositiveX() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: v.Y}
}

// NegativeX forces X to point left, keeping its magnitude
func (v Vec2) NegativeX() Vec2 {
	return Vec2{X: -math.Abs(v.X), Y: v.Y}
}

// PositiveY forces Y to point down (screen space), keeping its magnitude
func (v Vec2) PositiveY() Vec2 {
	return Vec2{X: v.X, Y: math.Abs(v.Y)}
}

// NegativeY forces Y to point up (screen space), keeping its magnitude
func (v Vec2) NegativeY() Vec2 {
	return Vec2{X: v.X, Y: -math.Abs(v.Y)}
}

func (v Vec2) Scaled(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vec2) ScaledX(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y}
}

func (v Vec2) ScaledY(factor float64) Vec2 {
	return Vec2{X: v.X, Y: v.Y * factor}
}

func (v Vec2) Added(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
