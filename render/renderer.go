// Package render draws scenes onto a tcell screen.
// Host units are virtual pixels: each cell spans CellWidth x CellHeight of them,
// so a row is twice as tall as a column is wide and circles stay round.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-bounce/physics"
	"github.com/lixenwraith/vi-bounce/scene"
	"github.com/lixenwraith/vi-bounce/vmath"
)

// Default cell geometry in host units
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const fillRune = '█'

// tableScene is satisfied by scene.Table; furniture is drawn only for it
type tableScene interface {
	Bounds() (origin vmath.Vec2, width, height float64)
}

// Renderer rasterizes circles into cells; not safe for concurrent use
type Renderer struct {
	screen       tcell.Screen
	cellW, cellH float64
	background   RGB
	colors       map[string]RGB
}

// NewRenderer uses the default cell geometry
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:     screen,
		cellW:      CellWidth,
		cellH:      CellHeight,
		background: RGBBackground,
		colors:     make(map[string]RGB),
	}
}

// Extent returns the screen size in host units
func (r *Renderer) Extent() (width, height float64) {
	cols, rows := r.screen.Size()
	return float64(cols) * r.cellW, float64(rows) * r.cellH
}

// CellCenter maps a cell to the host position of its center
func (r *Renderer) CellCenter(col, row int) vmath.Vec2 {
	return vmath.V((float64(col)+0.5)*r.cellW, (float64(row)+0.5)*r.cellH)
}

// Draw clears the screen, paints s and shows the frame
func (r *Renderer) Draw(s scene.Scene) {
	r.screen.SetStyle(tcell.StyleDefault.Background(r.background.Tcell()))
	r.screen.Clear()

	if t, ok := s.(tableScene); ok {
		r.drawTable(t.Bounds())
	}

	for _, b := range s.Bodies() {
		center, radius := s.Project(b)
		r.drawBody(b, center, radius)
	}

	r.screen.Show()
}

// drawBody paints uncolored bodies opaque by kind; palette bodies get a
// full-color outline ring and an interior fill blended by Alpha
func (r *Renderer) drawBody(b *physics.Body, center vmath.Vec2, radius float64) {
	if b.Color == "" {
		solid := RGBPuck
		if b.Kind == physics.KindController {
			solid = RGBBat
		}
		r.paintCircle(center, radius, r.style(solid), r.style(solid), true)
		return
	}

	ring := r.palette(b.Color)
	fill := Blend(r.background, ring, b.Alpha)
	r.paintCircle(center, radius, r.style(ring), r.style(fill), b.Alpha > 0)
}

func (r *Renderer) style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(r.background.Tcell())
}

func (r *Renderer) palette(s string) RGB {
	if c, ok := r.colors[s]; ok {
		return c
	}
	c, err := ParseColor(s)
	if err != nil {
		c = RGBFallback
	}
	r.colors[s] = c
	return c
}

// paintCircle draws edge cells with ring and interior cells with fill, interior only when withFill
// A circle smaller than a cell still marks the cell holding its center as edge
func (r *Renderer) paintCircle(center vmath.Vec2, radius float64, ring, fill tcell.Style, withFill bool) {
	hit := r.circleCells(center, radius, func(col, row int, edge bool) {
		switch {
		case edge:
			r.screen.SetContent(col, row, fillRune, nil, ring)
		case withFill:
			r.screen.SetContent(col, row, fillRune, nil, fill)
		}
	})
	if !hit {
		r.screen.SetContent(int(math.Floor(center.X/r.cellW)), int(math.Floor(center.Y/r.cellH)), fillRune, nil, ring)
	}
}

// circleCells visits on-screen cells whose center lies strictly inside the circle
// edge is set when a 4-neighbor cell center falls outside; reports whether any cell was inside
func (r *Renderer) circleCells(center vmath.Vec2, radius float64, visit func(col, row int, edge bool)) bool {
	cols, rows := r.screen.Size()
	inside := func(col, row int) bool {
		return vmath.Distance(r.CellCenter(col, row), center) < radius
	}

	minCol := int(math.Floor((center.X - radius) / r.cellW))
	maxCol := int(math.Ceil((center.X + radius) / r.cellW))
	minRow := int(math.Floor((center.Y - radius) / r.cellH))
	maxRow := int(math.Ceil((center.Y + radius) / r.cellH))

	hit := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !inside(col, row) {
				continue
			}
			hit = true
			if col < 0 || col >= cols || row < 0 || row >= rows {
				continue
			}
			edge := !inside(col-1, row) || !inside(col+1, row) || !inside(col, row-1) || !inside(col, row+1)
			visit(col, row, edge)
		}
	}
	return hit
}

// cell maps a host position to the cell containing it
func (r *Renderer) cell(x, y float64) (col, row int) {
	return int(math.Floor(x / r.cellW)), int(math.Floor(y / r.cellH))
}

// drawTable outlines the table, its center line, both goal gates and the start circles
func (r *Renderer) drawTable(origin vmath.Vec2, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	edge := r.style(RGBTableEdge)
	line := r.style(RGBCenterLine)

	left := int(math.Floor(origin.X/r.cellW)) - 1
	right := int(math.Ceil((origin.X + width) / r.cellW))
	top := int(math.Floor(origin.Y/r.cellH)) - 1
	bottom := int(math.Ceil((origin.Y + height) / r.cellH))
	_, middle := r.cell(0, origin.Y+height/2)

	for col := left + 1; col < right; col++ {
		r.screen.SetContent(col, top, '─', nil, edge)
		r.screen.SetContent(col, bottom, '─', nil, edge)
		r.screen.SetContent(col, middle, '╌', nil, line)
	}
	for row := top + 1; row < bottom; row++ {
		r.screen.SetContent(left, row, '│', nil, edge)
		r.screen.SetContent(right, row, '│', nil, edge)
	}
	r.screen.SetContent(left, top, '┌', nil, edge)
	r.screen.SetContent(right, top, '┐', nil, edge)
	r.screen.SetContent(left, bottom, '└', nil, edge)
	r.screen.SetContent(right, bottom, '┘', nil, edge)

	// Gates span the middle half of the width, 15% deep from each end
	gateLeft, topGate := r.cell(origin.X+width*0.25, origin.Y+height*0.15)
	gateRight, bottomGate := r.cell(origin.X+width*0.75, origin.Y+height*0.85)
	r.drawGate(gateLeft, gateRight, top+1, topGate, '└', '┘', line)
	r.drawGate(gateLeft, gateRight, bottom-1, bottomGate, '┌', '┐', line)

	startRadius := width * 0.125
	for _, fy := range []float64{0.375, 0.625} {
		center := vmath.V(origin.X+width/2, origin.Y+height*fy)
		r.circleCells(center, startRadius, func(col, row int, isEdge bool) {
			if isEdge {
				r.screen.SetContent(col, row, '·', nil, line)
			}
		})
	}
}

// drawGate draws posts on the rows between from and bar, then the crossbar on row bar
func (r *Renderer) drawGate(leftCol, rightCol, from, bar int, cornerLeft, cornerRight rune, style tcell.Style) {
	lo, hi := min(from, bar), max(from, bar)
	for row := lo; row <= hi; row++ {
		if row == bar {
			continue
		}
		r.screen.SetContent(leftCol, row, '│', nil, style)
		r.screen.SetContent(rightCol, row, '│', nil, style)
	}
	for col := leftCol + 1; col < rightCol; col++ {
		r.screen.SetContent(col, bar, '─', nil, style)
	}
	r.screen.SetContent(leftCol, bar, cornerLeft, nil, style)
	r.screen.SetContent(rightCol, bar, cornerRight, nil, style)
}
