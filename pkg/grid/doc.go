// Package grid lays hexagons out over a rectangular canvas.
//
// # Columns
//
// Adjacent columns interlock: the pointed side vertices of one column sit in
// the notches of the next, so column centers are spaced by
//
//	offset = width/2 + edge/2
//
// Enough columns are allocated to cover the canvas width (ceil(W/offset)) and the
// strip is centered, spreading the excess evenly on both sides. The first and
// last columns are therefore usually clipped by the canvas edge.
//
// # Rows
//
// Rows are spaced by the hexagon height. Odd columns receive one extra row,
// and because both parities are centered independently, odd columns end up
// shifted by half a height relative to even ones. That shift is the brick
// offset which makes the hexagons tile without gaps.
//
// # Degenerate input
//
// A [Layout] performs no validation. A non-positive canvas or hexagon size
// yields empty sequences instead of an error; rejecting such input belongs to
// the caller.
package grid
