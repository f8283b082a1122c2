package physics

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/vi-bounce/vmath"
)

// PlacementBudget is the number of candidates tried per body before giving up
const PlacementBudget = 100

// ErrPlacementExhausted means the requested count or radius does not fit the arena
var ErrPlacementExhausted = errors.New("placement exhausted")

// Sampler produces one random placement candidate
type Sampler interface {
	Sample() *Body
}

// SamplerFunc adapts a function to Sampler
type SamplerFunc func() *Body

func (f SamplerFunc) Sample() *Body { return f() }

// Place fills count non-overlapping Movers, rejecting candidates that overlap
// any already placed body; budget <= 0 uses PlacementBudget
func Place(count int, s Sampler, budget int) ([]*Body, error) {
	if budget <= 0 {
		budget = PlacementBudget
	}
	placed := make([]*Body, 0, count)
	for i := 0; i < count; i++ {
		accepted := false
		for attempt := 0; attempt < budget; attempt++ {
			candidate := s.Sample()
			if !overlapsAny(candidate, placed) {
				placed = append(placed, candidate)
				accepted = true
				break
			}
		}
		if !accepted {
			return placed, fmt.Errorf("%w: body %d of %d rejected after %d attempts", ErrPlacementExhausted, i+1, count, budget)
		}
	}
	return placed, nil
}

func overlapsAny(candidate *Body, placed []*Body) bool {
	for _, p := range placed {
		if candidate.Overlaps(p) {
			return true
		}
	}
	return false
}

// RandomSampler draws ambient circles with integer-floored ranges, so radii,
// coordinates, speed components and the rotation angle are whole numbers
type RandomSampler struct {
	Rng   *rand.Rand
	Arena Arena

	// Radius > 0 fixes the radius, otherwise it is drawn from [RadiusMin, RadiusMax)
	Radius               float64
	RadiusMin, RadiusMax float64

	// Speed components are drawn from [SpeedMin, SpeedMax) before a random rotation
	SpeedMin, SpeedMax float64

	Palette []string
}

func (s *RandomSampler) Sample() *Body {
	r := s.Radius
	if r <= 0 {
		r = RandRange(s.Rng, s.RadiusMin, s.RadiusMax)
	}
	pos := vmath.Vec2{
		X: RandRange(s.Rng, r, s.Arena.Width-r),
		Y: RandRange(s.Rng, r, s.Arena.Height-r),
	}
	vel := vmath.Vec2{
		X: RandRange(s.Rng, s.SpeedMin, s.SpeedMax),
		Y: RandRange(s.Rng, s.SpeedMin, s.SpeedMax),
	}.Rotated(RandRange(s.Rng, 0, 2*math.Pi))

	b := NewMover(pos, vel, r)
	if len(s.Palette) > 0 {
		b.Color = s.Palette[int(RandRange(s.Rng, 0, float64(len(s.Palette))))]
	}
	return b
}

// RandRange returns floor(uniform[lo, hi)); lo when hi <= lo
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return math.Floor(lo)
	}
	return math.Floor(rng.Float64()*(hi-lo) + lo)
}
