package vmath

import "math"

// DefaultPrecision is the digit count used for angles inside rotations
const DefaultPrecision = 16

// exactDigits is the decimal precision at which float64 rounding is a no-op
const exactDigits = 16

// Round rounds n to precision decimal digits
// Precision of 16 or more returns n unchanged, float64 holds no further digits
func Round(n float64, precision int) float64 {
	if precision >= exactDigits || math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	if precision < 0 {
		precision = 0
	}
	p := math.Pow(10, float64(precision))
	return math.Round(n*p) / p
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
