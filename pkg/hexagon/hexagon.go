package hexagon

import "math"

// sqrt3 is the ratio between the flat-to-flat height and the side length.
var sqrt3 = math.Sqrt(3)

// Point is a position in output units.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p·f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Scale(1 - t).Add(q.Scale(t))
}

// Spec holds the dimensions shared by every hexagon of a tiling.
type Spec struct {
	Height float64 // flat-to-flat
	Edge   float64 // side length, Height/√3
	Width  float64 // vertex-to-vertex, 2·Edge
}

// NewSpec derives a Spec from a flat-to-flat height.
func NewSpec(height float64) Spec {
	edge := height / sqrt3
	return Spec{Height: height, Edge: edge, Width: 2 * edge}
}

// SpecInInches derives a Spec from a height in inches rendered at dpi.
func SpecInInches(height, dpi float64) Spec {
	return NewSpec(height * dpi)
}

// Hexagon is a positioned hexagon.
type Hexagon struct {
	Center   Point
	Vertices [6]Point
}

// New returns the hexagon described by s centered at c.
func New(c Point, s Spec) Hexagon {
	halfEdge, halfHeight, halfWidth := s.Edge/2, s.Height/2, s.Width/2
	return Hexagon{
		Center: c,
		Vertices: [6]Point{
			{c.X - halfEdge, c.Y - halfHeight},
			{c.X + halfEdge, c.Y - halfHeight},
			{c.X + halfWidth, c.Y},
			{c.X + halfEdge, c.Y + halfHeight},
			{c.X - halfEdge, c.Y + halfHeight},
			{c.X - halfWidth, c.Y},
		},
	}
}

// Vertex returns the i-th vertex, wrapping i modulo six in both directions.
func (h Hexagon) Vertex(i int) Point {
	return h.Vertices[((i%6)+6)%6]
}

// Edge is a side of a hexagon running from A to B.
type Edge struct {
	A, B Point
}

// Reverse returns the edge traversed in the opposite direction.
func (e Edge) Reverse() Edge { return Edge{A: e.B, B: e.A} }

// Edges returns the six sides in vertex order, each running from a vertex to its
// successor.
func (h Hexagon) Edges() [6]Edge {
	var edges [6]Edge
	for i := range edges {
		edges[i] = Edge{A: h.Vertex(i), B: h.Vertex(i + 1)}
	}
	return edges
}

// Points returns the vertices as a slice.
func (h Hexagon) Points() []Point {
	pts := make([]Point, len(h.Vertices))
	copy(pts, h.Vertices[:])
	return pts
}
