package styles

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/hexagon"
)

// recorder is a Surface that remembers what was drawn.
type recorder struct {
	polygons [][]hexagon.Point
	lines    [][2]hexagon.Point
}

func (r *recorder) Polygon(pts []hexagon.Point) { r.polygons = append(r.polygons, pts) }
func (r *recorder) Line(a, b hexagon.Point)     { r.lines = append(r.lines, [2]hexagon.Point{a, b}) }

func testHexagon() hexagon.Hexagon {
	return hexagon.New(hexagon.Point{X: 40, Y: 30}, hexagon.NewSpec(20))
}

func TestOutlineDraw(t *testing.T) {
	var r recorder
	h := testHexagon()
	Outline{}.Draw(&r, h)

	if len(r.polygons) != 1 {
		t.Fatalf("polygons = %d, want 1", len(r.polygons))
	}
	if len(r.lines) != 0 {
		t.Errorf("lines = %d, want 0", len(r.lines))
	}
	for i, p := range r.polygons[0] {
		if p != h.Vertices[i] {
			t.Errorf("point %d = %v, want %v", i, p, h.Vertices[i])
		}
	}
}

func TestCrowsFootDraw(t *testing.T) {
	var r recorder
	h := testHexagon()
	NewCrowsFoot().Draw(&r, h)

	if len(r.lines) != 12 {
		t.Fatalf("lines = %d, want 12", len(r.lines))
	}
	if len(r.polygons) != 0 {
		t.Errorf("polygons = %d, want 0", len(r.polygons))
	}

	side := hexagon.NewSpec(20).Edge
	starts := make(map[hexagon.Point]int)
	for i, l := range r.lines {
		length := math.Hypot(l[1].X-l[0].X, l[1].Y-l[0].Y)
		if math.Abs(length-side/4) > 1e-9 {
			t.Errorf("line %d length = %v, want %v", i, length, side/4)
		}
		starts[l[0]]++
	}
	// every vertex starts exactly two dashes, one along each adjacent side
	for i, v := range h.Vertices {
		if starts[v] != 2 {
			t.Errorf("vertex %d starts %d dashes, want 2", i, starts[v])
		}
	}
}

func TestCrowsFootLeavesGap(t *testing.T) {
	var r recorder
	h := testHexagon()
	NewCrowsFoot().Draw(&r, h)

	// the first side is drawn from both ends; the dashes must not meet
	e := h.Edges()[0]
	fwd, back := r.lines[0], r.lines[1]
	if fwd[0] != e.A || back[0] != e.B {
		t.Fatalf("unexpected dash order: %v %v", fwd, back)
	}
	gap := math.Hypot(back[1].X-fwd[1].X, back[1].Y-fwd[1].Y)
	side := hexagon.NewSpec(20).Edge
	if math.Abs(gap-side/2) > 1e-9 {
		t.Errorf("gap = %v, want %v", gap, side/2)
	}
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		name string
		r    Renderer
		want string
	}{
		{"outline", Outline{}, "* { fill: none; stroke: #000000; stroke-width: 1 }"},
		{"crowsfoot", CrowsFoot{}, "* { fill: none; stroke: #000000; stroke-linecap: round; stroke-width: 1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Style().String(); got != tt.want {
				t.Errorf("Style() = %q, want %q", got, tt.want)
			}
			if strings.Contains(tt.r.Style().String(), "dasharray") {
				t.Error("style must not use a dash array")
			}
		})
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"hexes", NameOutline, false},
		{"crowsfeet", NameCrowsFoot, false},
		{"", "", true},
		{"dashed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ByName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("ByName(%q) code = %v, want %v", tt.name, errors.GetCode(err), errors.ErrCodeInvalidStyle)
				}
				return
			}
			if r.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != NameOutline {
		t.Errorf("Names() = %v", names)
	}
	for _, n := range names {
		if _, err := ByName(n); err != nil {
			t.Errorf("ByName(%q) error = %v", n, err)
		}
	}
}
