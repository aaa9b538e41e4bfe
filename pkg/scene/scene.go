// Package scene assembles a hexagon tiling into an ordered list of drawing
// primitives.
//
// [Build] walks the grid column by column, left to right, and each column top to
// bottom, handing every hexagon to a [styles.Renderer]. The resulting [Scene] is
// a plain value: the sinks in package sink serialize it to SVG, JSON, PNG or PDF.
// Identical inputs always produce the same primitives in the same order.
package scene

import (
	"github.com/matzehuels/hexgrid/pkg/grid"
	"github.com/matzehuels/hexgrid/pkg/hexagon"
	"github.com/matzehuels/hexgrid/pkg/render/styles"
)

// Kind identifies the type of a primitive.
type Kind string

const (
	KindPolygon Kind = "polygon"
	KindLine    Kind = "line"
)

// Primitive is a single draw call.
type Primitive struct {
	Kind   Kind
	Points []hexagon.Point // closed ring for polygons, two endpoints for lines
}

// Scene is a finished drawing.
type Scene struct {
	Width      float64
	Height     float64
	Style      styles.Style
	Renderer   string // name of the renderer that drew the scene
	Hexagons   int
	Primitives []Primitive
}

// Build lays out hexagons of spec s over canvas c and draws each one with r.
func Build(c grid.Canvas, s hexagon.Spec, r styles.Renderer) *Scene {
	sc := &Scene{
		Width:    c.Width,
		Height:   c.Height,
		Style:    r.Style(),
		Renderer: r.Name(),
	}

	l := grid.New(c, s)
	for col, x := range l.Columns() {
		for _, y := range l.Rows(col) {
			r.Draw(sc, hexagon.New(hexagon.Point{X: x, Y: y}, s))
			sc.Hexagons++
		}
	}
	return sc
}

// Polygon implements styles.Surface.
func (sc *Scene) Polygon(pts []hexagon.Point) {
	sc.Primitives = append(sc.Primitives, Primitive{Kind: KindPolygon, Points: pts})
}

// Line implements styles.Surface.
func (sc *Scene) Line(a, b hexagon.Point) {
	sc.Primitives = append(sc.Primitives, Primitive{Kind: KindLine, Points: []hexagon.Point{a, b}})
}

// Counts returns the number of polygons and lines in the scene.
func (sc *Scene) Counts() (polygons, lines int) {
	for _, p := range sc.Primitives {
		switch p.Kind {
		case KindPolygon:
			polygons++
		case KindLine:
			lines++
		}
	}
	return polygons, lines
}

var _ styles.Surface = (*Scene)(nil)
