package grid

import (
	"math"

	"github.com/matzehuels/hexgrid/pkg/hexagon"
)

// Layout computes hexagon centers for a canvas.
type Layout struct {
	canvas Canvas
	spec   hexagon.Spec
}

// New returns the layout of hexagons described by s over c.
func New(c Canvas, s hexagon.Spec) Layout {
	return Layout{canvas: c, spec: s}
}

// Canvas returns the canvas being tiled.
func (l Layout) Canvas() Canvas { return l.canvas }

// Spec returns the hexagon dimensions.
func (l Layout) Spec() hexagon.Spec { return l.spec }

// ColumnOffset is the horizontal distance between adjacent column centers.
func (l Layout) ColumnOffset() float64 {
	return l.spec.Width/2 + l.spec.Edge/2
}

// Columns returns the x coordinate of every column center, left to right.
func (l Layout) Columns() []float64 {
	return centered(l.canvas.Width, l.ColumnOffset(), 0)
}

// Rows returns the y coordinates of the hexagon centers in the given column,
// top to bottom. Odd columns hold one more row than even columns.
func (l Layout) Rows(column int) []float64 {
	return centered(l.canvas.Height, l.spec.Height, column&1)
}

// Count returns the total number of hexagons in the layout.
func (l Layout) Count() int {
	n := 0
	for i := range l.Columns() {
		n += len(l.Rows(i))
	}
	return n
}

// Size returns the number of columns and hexagons without computing any
// positions. The counts are float64 so an oversized layout can be measured
// before anything is allocated; they may be +Inf.
func (l Layout) Size() (columns, hexagons float64) {
	columns = slots(l.canvas.Width, l.ColumnOffset(), 0)
	if columns == 0 {
		return 0, 0
	}
	odd := math.Floor(columns / 2)
	even := columns - odd
	return columns, even*slots(l.canvas.Height, l.spec.Height, 0) + odd*slots(l.canvas.Height, l.spec.Height, 1)
}

// slots is the length of centered(extent, step, extra).
func slots(extent, step float64, extra int) float64 {
	n := math.Ceil(extent/step) + float64(extra)
	if !(n > 0) {
		return 0
	}
	return n
}

// centered returns enough positions spaced by step to cover extent, plus extra,
// arranged symmetrically about extent/2.
func centered(extent, step float64, extra int) []float64 {
	n := slots(extent, step, extra)
	if n == 0 || math.IsInf(n, 0) {
		return nil
	}
	count := int(n)
	start := step/2 - (float64(count)*step-extent)/2

	out := make([]float64, count)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
