package styles

import "github.com/matzehuels/hexgrid/pkg/hexagon"

// Outline draws every hexagon as a closed polygon.
type Outline struct{}

func (Outline) Draw(s Surface, h hexagon.Hexagon) { s.Polygon(h.Points()) }
func (Outline) Style() Style                      { return baseStyle }
func (Outline) Name() string                      { return NameOutline }

var _ Renderer = Outline{}
