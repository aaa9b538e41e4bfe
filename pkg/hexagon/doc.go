// Package hexagon provides the geometry of a single regular hexagon.
//
// # Orientation
//
// Hexagons are sized by their flat-to-flat height. The top and bottom edges are
// horizontal and the two remaining vertices point left and right:
//
//	  0 ___ 1
//	   /   \
//	5 /     \ 2
//	  \     /
//	   \___/
//	  4     3
//
// # Sizing
//
// A [Spec] derives everything else from the height:
//
//	edge  = height / √3   (side length)
//	width = 2 · edge      (vertex-to-vertex)
//
// [SpecInInches] scales a height given in inches by a DPI factor first.
//
// # Vertices
//
// [New] places a hexagon at a center point. Its six vertices are ordered
// clockwise (in screen coordinates, y down) starting at the top-left corner, and
// the ordering is cyclic: [Hexagon.Edges] pairs each vertex with its successor
// modulo six.
//
// Nothing in this package validates its input. A zero height produces a
// degenerate hexagon collapsed onto its center.
package hexagon
