package styles

import "github.com/matzehuels/hexgrid/pkg/hexagon"

// Dash weights: a dash ends a fraction crowsFootDash of the way along its side,
// at crowsFootGap·start + crowsFootDash·end.
const (
	crowsFootDash = 0.25
	crowsFootGap  = 1 - crowsFootDash
)

// CrowsFoot draws each side of a hexagon as two dashes, one running inward from
// each endpoint, leaving the middle of the side open. The three dashes meeting
// at a vertex read as a crow's foot.
type CrowsFoot struct{}

// NewCrowsFoot returns the crow's foot renderer.
func NewCrowsFoot() CrowsFoot { return CrowsFoot{} }

// Draw emits twelve segments: every side is traversed in both directions and a
// dash is drawn from the start of each traversal.
func (CrowsFoot) Draw(s Surface, h hexagon.Hexagon) {
	for _, e := range h.Edges() {
		for _, d := range [2]hexagon.Edge{e, e.Reverse()} {
			s.Line(d.A, d.A.Scale(crowsFootGap).Add(d.B.Scale(crowsFootDash)))
		}
	}
}

func (CrowsFoot) Style() Style {
	st := baseStyle
	st.LineCap = CapRound
	return st
}

func (CrowsFoot) Name() string { return NameCrowsFoot }

var _ Renderer = CrowsFoot{}
