package physics

import "github.com/lixenwraith/vi-bounce/vmath"

// State is the per-scene simulation state handed to every phase
// Arena and Frame are refreshed by the host on resize and read fresh each frame
type State struct {
	Bodies  []*Body
	Arena   Arena
	Frame   Frame
	Pointer vmath.Vec2 // body coordinates

	Tick    uint64 // completed Steps
	Bounces int // bounces resolved during the last Step
}

// Phase is one named stage of a frame
type Phase struct {
	Name string
	Run  func(*State)
}

// Pipeline runs its phases in order, once per rendered frame
type Pipeline []Phase

// Step advances the state by exactly one frame
func (p Pipeline) Step(s *State) {
	s.Bounces = 0
	for _, phase := range p {
		phase.Run(s)
	}
	s.Tick++
}

// Names lists phase names in execution order
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, phase := range p {
		names[i] = phase.Name
	}
	return names
}

// CollidePhase resolves pairwise contacts
func CollidePhase(r Resolver) Phase {
	return Phase{Name: "collide", Run: func(s *State) {
		s.Bounces += r.Resolve(s.Bodies, s.Frame)
	}}
}

// ConstrainPhase applies the boundary policy to every Mover
func ConstrainPhase(bound Boundary) Phase {
	return Phase{Name: "constrain", Run: func(s *State) {
		for _, b := range s.Bodies {
			bound.Constrain(b, s.Arena)
		}
	}}
}

// FrictionPhase decays Mover velocities
func FrictionPhase(f Friction) Phase {
	return Phase{Name: "friction", Run: func(s *State) {
		for _, b := range s.Bodies {
			if b.IsMover() {
				f.Apply(b, s.Frame)
			}
		}
	}}
}

// MovePhase integrates Mover positions
func MovePhase() Phase {
	return Phase{Name: "move", Run: func(s *State) {
		for _, b := range s.Bodies {
			if b.IsMover() {
				Move(b)
			}
		}
	}}
}

// FadePhase updates proximity alpha against the post-move positions
func FadePhase(f ProximityFade) Phase {
	return Phase{Name: "fade", Run: func(s *State) {
		for _, b := range s.Bodies {
			f.Apply(b, s.Pointer)
		}
	}}
}

// FollowPhase drives Controllers to the pointer
func FollowPhase(f Follow) Phase {
	return Phase{Name: "follow", Run: func(s *State) {
		for _, b := range s.Bodies {
			f.Drive(b, s.Pointer)
		}
	}}
}
