package tui

import (
	"math"

	"github.com/randomtoy/spinwheel/internal/domain"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// holeRatio is the share of the radius left empty at the hub.
const holeRatio = 0.3

const maxLabelRunes = 12

type CellKind int

const (
	CellEmpty CellKind = iota
	CellSlice
	CellLabel
	CellPointer
)

// Cell is one character of the rasterized wheel.
type Cell struct {
	Kind  CellKind
	Rune  rune
	Slice int
}

// Canvas is a rasterized wheel, row-major.
type Canvas struct {
	W, H  int
	Cells []Cell
}

func newCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, Cells: make([]Cell, w*h)}
}

// At returns the cell at x, y, or an empty cell outside the canvas.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return Cell{}
	}
	return c.Cells[y*c.W+x]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.Cells[y*c.W+x] = cell
}

// geometry is the wheel placement inside a canvas.
type geometry struct {
	cx, cy float64
	radius float64
}

func wheelGeometry(w, h int) geometry {
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	// One spare row/column ring outside the rim for the pointers.
	r := math.Min(cy-1, (cx-2)/cellAspect)
	return geometry{cx: cx, cy: cy, radius: math.Max(r, 0)}
}

// frameAngle is the clockwise angle from 12 o'clock of the cell at x, y.
func (g geometry) frameAngle(x, y int) (angle, dist float64) {
	dx := (float64(x) - g.cx) / cellAspect
	dy := float64(y) - g.cy
	angle = domain.Normalize(math.Atan2(dx, -dy) * 180 / math.Pi)
	return angle, math.Hypot(dx, dy)
}

// point maps a frame angle and distance back to a cell.
func (g geometry) point(angle, dist float64) (int, int) {
	rad := angle * math.Pi / 180
	x := g.cx + math.Sin(rad)*dist*cellAspect
	y := g.cy - math.Cos(rad)*dist
	return int(math.Round(x)), int(math.Round(y))
}

// DrawWheel rasterizes labels rotated by rotation degrees, with a marker for
// every pointer offset.
func DrawWheel(w, h int, labels []string, rotation float64, pointers []float64) *Canvas {
	c := newCanvas(w, h)
	n := len(labels)
	g := wheelGeometry(w, h)
	if n == 0 || g.radius < 2 {
		return c
	}
	slice := domain.FullCircle / float64(n)
	hole := g.radius * holeRatio

	for y := range h {
		for x := range w {
			angle, dist := g.frameAngle(x, y)
			if dist > g.radius || dist < hole {
				continue
			}
			c.set(x, y, Cell{Kind: CellSlice, Rune: '█', Slice: domain.SliceUnder(n, rotation, angle)})
		}
	}

	labelDist := (hole + g.radius) / 2
	for i, l := range labels {
		// Inverse of the SliceUnder mapping for the slice centre.
		centre := domain.Normalize(float64(i)*slice + slice/2 - rotation - slice)
		x, y := g.point(centre, labelDist)
		text := []rune(l)
		if len(text) > maxLabelRunes {
			text = append(text[:maxLabelRunes-1], '…')
		}
		x -= len(text) / 2
		for j, r := range text {
			c.set(x+j, y, Cell{Kind: CellLabel, Rune: r, Slice: i})
		}
	}

	for _, p := range pointers {
		x, y := g.point(p, g.radius+1)
		c.set(x, y, Cell{Kind: CellPointer, Rune: pointerRune(p), Slice: -1})
	}
	return c
}

// pointerRune picks an arrow aimed at the hub.
func pointerRune(angle float64) rune {
	switch a := domain.Normalize(angle); {
	case a >= 315 || a < 45:
		return '▼'
	case a < 135:
		return '◀'
	case a < 225:
		return '▲'
	default:
		return '▶'
	}
}
