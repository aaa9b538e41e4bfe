package scene

import (
	"reflect"
	"testing"

	"github.com/matzehuels/hexgrid/pkg/grid"
	"github.com/matzehuels/hexgrid/pkg/hexagon"
	"github.com/matzehuels/hexgrid/pkg/render/styles"
)

func TestBuildOutline(t *testing.T) {
	c := grid.NewCanvas(100, 100)
	s := hexagon.NewSpec(20)
	sc := Build(c, s, styles.Outline{})

	want := grid.New(c, s).Count()
	polygons, lines := sc.Counts()
	if polygons != want {
		t.Errorf("polygons = %d, want %d", polygons, want)
	}
	if lines != 0 {
		t.Errorf("lines = %d, want 0", lines)
	}
	if sc.Hexagons != want {
		t.Errorf("Hexagons = %d, want %d", sc.Hexagons, want)
	}
	if sc.Width != 100 || sc.Height != 100 {
		t.Errorf("size = %vx%v, want 100x100", sc.Width, sc.Height)
	}
	if sc.Style != (styles.Outline{}).Style() {
		t.Errorf("Style = %v, want outline style", sc.Style)
	}
	if sc.Renderer != styles.NameOutline {
		t.Errorf("Renderer = %q, want %q", sc.Renderer, styles.NameOutline)
	}
}

func TestBuildCrowsFoot(t *testing.T) {
	c := grid.NewCanvas(100, 100)
	s := hexagon.NewSpec(20)
	sc := Build(c, s, styles.NewCrowsFoot())

	want := 12 * grid.New(c, s).Count()
	polygons, lines := sc.Counts()
	if lines != want {
		t.Errorf("lines = %d, want %d", lines, want)
	}
	if polygons != 0 {
		t.Errorf("polygons = %d, want 0", polygons)
	}
}

func TestBuildInInches(t *testing.T) {
	c := grid.CanvasInInches(5, 5, 2)
	s := hexagon.SpecInInches(1, 2)
	sc := Build(c, s, styles.Outline{})

	if sc.Width != 10 || sc.Height != 10 {
		t.Errorf("size = %vx%v, want 10x10", sc.Width, sc.Height)
	}
	if s.Height != 2 {
		t.Errorf("hex height = %v, want 2", s.Height)
	}
	if sc.Hexagons != grid.New(c, s).Count() {
		t.Errorf("Hexagons = %d, want %d", sc.Hexagons, grid.New(c, s).Count())
	}
}

func TestBuildOrder(t *testing.T) {
	c := grid.NewCanvas(100, 100)
	s := hexagon.NewSpec(20)
	sc := Build(c, s, styles.Outline{})
	l := grid.New(c, s)

	i := 0
	for col, x := range l.Columns() {
		for _, y := range l.Rows(col) {
			want := hexagon.New(hexagon.Point{X: x, Y: y}, s).Points()
			if !reflect.DeepEqual(sc.Primitives[i].Points, want) {
				t.Fatalf("primitive %d = %v, want hexagon at (%v, %v)", i, sc.Primitives[i].Points, x, y)
			}
			i++
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	c := grid.NewCanvas(73, 41)
	s := hexagon.NewSpec(6.5)
	a := Build(c, s, styles.NewCrowsFoot())
	b := Build(c, s, styles.NewCrowsFoot())
	if !reflect.DeepEqual(a, b) {
		t.Error("Build should be deterministic")
	}
}

func TestBuildDegenerate(t *testing.T) {
	sc := Build(grid.NewCanvas(0, 100), hexagon.NewSpec(20), styles.Outline{})
	if len(sc.Primitives) != 0 || sc.Hexagons != 0 {
		t.Errorf("zero-width canvas produced %d primitives", len(sc.Primitives))
	}
}
