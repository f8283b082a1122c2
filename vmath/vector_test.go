package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestAngleQuadrants(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"zero", V(0, 0), 0},
		{"positive x axis", V(3, 0), 0},
		{"first quadrant", V(1, 1), math.Pi / 4},
		{"positive y axis", V(0, 2), math.Pi / 2},
		{"second quadrant", V(-1, 1), 3 * math.Pi / 4},
		{"negative x axis", V(-4, 0), math.Pi},
		{"third quadrant", V(-1, -1), 5 * math.Pi / 4},
		{"negative y axis", V(0, -2), 3 * math.Pi / 2},
		{"fourth quadrant", V(1, -1), 7 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.Angle(DefaultPrecision), tolerance)
		})
	}
}

func TestAngleRange(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		rad := DegToRad(deg)
		v := V(math.Cos(rad)*5, math.Sin(rad)*5)
		a := v.Angle(DefaultPrecision)
		require.GreaterOrEqual(t, a, 0.0, "deg=%v", deg)
		require.Less(t, a, 2*math.Pi+tolerance, "deg=%v", deg)
	}
}

// atan(y/x) with x = -0 yields atan(-Inf) = -π/2 under the quadrant rules;
// the vertical special case maps both zero signs to π/2
func TestAngleNegativeZeroX(t *testing.T) {
	v := V(math.Copysign(0, -1), 1)
	assert.InDelta(t, math.Pi/2, v.Angle(DefaultPrecision), tolerance)

	legacy := math.Atan(v.Y / v.X)
	assert.InDelta(t, -math.Pi/2, legacy, tolerance, "quadrant formula diverges for -0")
}

func TestAnglePrecision(t *testing.T) {
	v := V(1, 1)
	assert.Equal(t, 0.79, v.Angle(2))
	assert.Equal(t, 2.0, V(0, 1).Angle(0))
}

func TestRotatedPreservesMagnitude(t *testing.T) {
	vectors := []Vec2{V(1, 0), V(3, 4), V(-2, 7), V(-5, -5), V(0, -3), V(0.001, 1000)}
	angles := []float64{0, 0.3, math.Pi / 2, math.Pi, -1.2, 5, 17}

	for _, v := range vectors {
		for _, a := range angles {
			assert.InDelta(t, v.Magnitude(), v.Rotated(a).Magnitude(), 1e-9*math.Max(1, v.Magnitude()))
		}
	}
}

func TestRotatedInverse(t *testing.T) {
	vectors := []Vec2{V(1, 0), V(3, 4), V(-2, 7), V(-5, -5), V(0, -3)}
	angles := []float64{0.3, math.Pi / 2, math.Pi, -1.2, 2.5}

	for _, v := range vectors {
		for _, a := range angles {
			back := v.Rotated(a).Rotated(-a)
			assert.InDelta(t, v.X, back.X, 1e-9, "v=%v a=%v", v, a)
			assert.InDelta(t, v.Y, back.Y, 1e-9, "v=%v a=%v", v, a)
		}
	}
}

func TestRotatedZeroVector(t *testing.T) {
	r := V(0, 0).Rotated(1.3)
	assert.InDelta(t, 0, r.X, tolerance)
	assert.InDelta(t, 0, r.Y, tolerance)
}

func TestRotatedQuarterTurn(t *testing.T) {
	r := V(2, 0).Rotated(math.Pi / 2)
	assert.InDelta(t, 0, r.X, tolerance)
	assert.InDelta(t, 2, r.Y, tolerance)
}

func TestMirrorInvolution(t *testing.T) {
	for _, v := range []Vec2{V(1, 2), V(-3, 0.5), V(0, -7)} {
		assert.Equal(t, v, v.MirroredHorizontal().MirroredHorizontal())
		assert.Equal(t, v, v.MirroredVertical().MirroredVertical())
	}

	v := V(1, 2)
	assert.Equal(t, V(-1, 2), v.MirroredHorizontal())
	assert.Equal(t, V(1, -2), v.MirroredVertical())
	assert.Equal(t, V(-1, -2), v.Reversed())
}

func TestForcedSigns(t *testing.T) {
	v := V(-3, 4)
	assert.Equal(t, V(3, 4), v.PositiveX())
	assert.Equal(t, V(-3, 4), v.NegativeX())
	assert.Equal(t, V(-3, 4), v.PositiveY())
	assert.Equal(t, V(-3, -4), v.NegativeY())
	assert.Equal(t, V(3, 4), V(3, 4).PositiveX())
}

func TestComponentwiseHelpers(t *testing.T) {
	v := V(2, -3)
	assert.Equal(t, V(4, -6), v.Scaled(2))
	assert.Equal(t, V(6, -3), v.ScaledX(3))
	assert.Equal(t, V(2, -1.5), v.ScaledY(0.5))
	assert.Equal(t, V(3, -1), v.Added(V(1, 2)))
	assert.Equal(t, V(1, -5), v.Sub(V(1, 2)))
	assert.Equal(t, -4.0, v.Dot(V(1, 2)))
	assert.Equal(t, 5.0, V(3, 4).Magnitude())

	// Receiver untouched
	assert.Equal(t, V(2, -3), v)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.14, Round(math.Pi, 2))
	assert.Equal(t, 3.0, Round(math.Pi, 0))
	assert.Equal(t, math.Pi, Round(math.Pi, 16))
	assert.Equal(t, math.Pi, Round(math.Pi, 20))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestDistanceAndConversions(t *testing.T) {
	assert.Equal(t, 5.0, Distance(V(0, 0), V(3, 4)))
	assert.InDelta(t, 180, RadToDeg(math.Pi), tolerance)
	assert.InDelta(t, math.Pi/2, DegToRad(90), tolerance)
	assert.InDelta(t, 45, V(1, 1).AngleDeg(DefaultPrecision), 1e-9)
	assert.Equal(t, 1.0, Clamp(5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-5, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
