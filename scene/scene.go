// Package scene holds the two simulations and the per-frame contract with the host.
// Host units are whatever the renderer measures the screen in; each scene owns
// the mapping between host units and its bodies' coordinates.
package scene

import (
	"github.com/lixenwraith/vi-bounce/physics"
	"github.com/lixenwraith/vi-bounce/vmath"
)

// Scene is driven by the host once per rendered frame
type Scene interface {
	Name() string

	// Step advances exactly one frame: collision, boundary, integration, then input-driven updates
	Step()

	// Resize stores the current drawable extent in host units; read fresh by the next Step
	Resize(width, height float64)

	// SetPointer records the cursor position in host units
	SetPointer(x, y float64)

	Bodies() []*physics.Body

	// Project returns a body's center and radius in host units
	Project(b *physics.Body) (center vmath.Vec2, radius float64)

	// Bounces reports collisions resolved by the last Step
	Bounces() int

	// Tick counts completed Steps
	Tick() uint64
}

// Mode names a scene selectable from the command line
type Mode string

const (
	ModeAmbient Mode = "circles"
	ModeTable   Mode = "hockey"
)
