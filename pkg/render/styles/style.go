package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/hexagon"
)

// Renderer names accepted by ByName.
const (
	NameOutline   = "hexes"
	NameCrowsFoot = "crowsfeet"
)

// Surface receives drawing primitives.
type Surface interface {
	// Polygon adds a closed polygon through pts.
	Polygon(pts []hexagon.Point)
	// Line adds a straight segment from a to b.
	Line(a, b hexagon.Point)
}

// Renderer draws hexagon edges.
type Renderer interface {
	// Draw emits the primitives for h onto s.
	Draw(s Surface, h hexagon.Hexagon)
	// Style returns the declaration applied to every primitive drawn.
	Style() Style
	// Name returns the identifier accepted by ByName.
	Name() string
}

// LineCap is the shape drawn at the ends of open strokes.
type LineCap string

const (
	CapButt  LineCap = "butt"
	CapRound LineCap = "round"
)

// Style describes how primitives are painted.
type Style struct {
	Fill        string  // "none" or a CSS color
	Stroke      string  // CSS color
	StrokeWidth float64 // in output units
	LineCap     LineCap // empty leaves the default (butt)
}

// String returns the style as a CSS rule matching every element.
func (s Style) String() string {
	var b strings.Builder
	b.WriteString("* { ")
	fmt.Fprintf(&b, "fill: %s; stroke: %s; ", s.Fill, s.Stroke)
	if s.LineCap != "" && s.LineCap != CapButt {
		fmt.Fprintf(&b, "stroke-linecap: %s; ", s.LineCap)
	}
	fmt.Fprintf(&b, "stroke-width: %s }", strconv.FormatFloat(s.StrokeWidth, 'f', -1, 64))
	return b.String()
}

// baseStyle is an unfilled black one-unit stroke.
var baseStyle = Style{Fill: "none", Stroke: "#000000", StrokeWidth: 1}

// ByName returns the renderer registered under name.
func ByName(name string) (Renderer, error) {
	switch name {
	case NameOutline:
		return Outline{}, nil
	case NameCrowsFoot:
		return NewCrowsFoot(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %s (must be '%s' or '%s')", name, NameOutline, NameCrowsFoot)
	}
}

// Names lists the accepted renderer names, default first.
func Names() []string {
	return []string{NameOutline, NameCrowsFoot}
}
