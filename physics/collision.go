package physics

import (
	"github.com/lixenwraith/vi-bounce/vmath"
)

// ContactFunc observes a resolved bounce; depth is penetration in [0, 1] of the summed radii
type ContactFunc func(mover, other *Body, depth float64)

// Resolver detects overlapping pairs and rewrites their velocities
// Resolve returns the number of bounces applied
type Resolver interface {
	Resolve(bodies []*Body, frame Frame) int
}

// ElasticResolver bounces Mover pairs symmetrically along their separation axis
//
// Every ordered pair (a, b) with a != b is visited, so an unordered pair is
// examined twice per pass. The approach test is symmetric in a and b and a
// bounce always turns an approaching pair into a separating one, so the second
// visit is a no-op unless the first visit found the pair already separating.
type ElasticResolver struct {
	OnContact ContactFunc
}

func (r ElasticResolver) Resolve(bodies []*Body, frame Frame) int {
	bounces := 0
	for _, a := range bodies {
		if !a.IsMover() {
			continue
		}
		for _, b := range bodies {
			// Identity, not index or position: coincident twins still compare
			if a == b || !b.IsMover() {
				continue
			}
			posA, posB := frame.ToReal(a.Position), frame.ToReal(b.Position)
			dist := vmath.Distance(posA, posB)
			maxDist := frame.Radius(a.Radius) + frame.Radius(b.Radius)
			if dist >= maxDist {
				continue
			}
			if bounceElastic(a, b, posA, posB, frame) {
				bounces++
				if r.OnContact != nil {
					r.OnContact(a, b, penetration(dist, maxDist))
				}
			}
		}
	}
	return bounces
}

// bounceElastic mirrors both velocities across the separation axis when the pair approaches
// θ and the approach test are computed once, before either velocity changes
func bounceElastic(a, b *Body, posA, posB vmath.Vec2, frame Frame) bool {
	velA, velB := frame.ToReal(a.Velocity), frame.ToReal(b.Velocity)
	delta := posA.Sub(posB)
	if !approaching(delta, velA.Sub(velB)) {
		return false
	}

	// Coincident centers give angle 0, keeping the response defined
	angle := delta.Angle(vmath.DefaultPrecision)
	a.Velocity = frame.FromReal(reflectAcross(velA, angle))
	b.Velocity = frame.FromReal(reflectAcross(velB, angle))
	return true
}

// reflectAcross negates the component of v along the axis at angle
func reflectAcross(v vmath.Vec2, angle float64) vmath.Vec2 {
	return v.Rotated(-angle).MirroredHorizontal().Rotated(angle)
}

// approaching is the closing test: relative position against relative velocity
func approaching(deltaPos, deltaVel vmath.Vec2) bool {
	return deltaPos.Dot(deltaVel) < 0
}

func penetration(dist, maxDist float64) float64 {
	if maxDist <= 0 {
		return 0
	}
	return (maxDist - dist) / maxDist
}

// PaddleResolver bounces Movers off Controllers with a depth-scaled speed-up
// Mover-vs-Mover contact is not modeled. Controller velocity is ignored
type PaddleResolver struct {
	Profile   PaddleProfile
	OnContact ContactFunc
}

func (r PaddleResolver) Resolve(bodies []*Body, frame Frame) int {
	bounces := 0
	for _, m := range bodies {
		if !m.IsMover() {
			continue
		}
		for _, c := range bodies {
			if m == c || c.Kind != KindController {
				continue
			}
			posM, posC := frame.ToReal(m.Position), frame.ToReal(c.Position)
			dist := vmath.Distance(posM, posC)
			maxDist := frame.Radius(m.Radius) + frame.Radius(c.Radius)
			if dist >= maxDist {
				continue
			}
			r.bounce(m, posM.Sub(posC), dist, maxDist, frame)
			bounces++
			if r.OnContact != nil {
				r.OnContact(m, c, penetration(dist, maxDist))
			}
		}
	}
	return bounces
}

// bounce applies the paddle hit in real units:
// rotate into the separation frame, reverse the axis component if closing,
// add the minimum kick, scale the axis component by the depth-weighted
// acceleration, rotate back and store as body-coordinate velocity
func (r PaddleResolver) bounce(m *Body, delta vmath.Vec2, dist, maxDist float64, frame Frame) {
	speed := frame.ToReal(m.Velocity)
	angle := delta.Angle(vmath.DefaultPrecision)
	local := speed.Rotated(-angle)

	if approaching(delta, speed) {
		local = local.MirroredHorizontal()
	}

	accel := r.Profile.Acceleration * ((maxDist-dist)/maxDist + 1)
	minKick := vmath.Vec2{X: r.Profile.MinSpeed * frame.ScaleX}

	hit := local.Added(minKick).ScaledX(accel).Rotated(angle)
	m.Velocity = frame.FromReal(hit)
}
