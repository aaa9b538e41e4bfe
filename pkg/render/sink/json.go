package sink

import (
	"encoding/json"

	"github.com/matzehuels/hexgrid/pkg/scene"
)

type jsonOutput struct {
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Style      string          `json:"style"`
	Renderer   string          `json:"renderer"`
	Hexagons   int             `json:"hexagons"`
	Primitives []jsonPrimitive `json:"primitives"`
}

type jsonPrimitive struct {
	Kind   string       `json:"kind"`
	Points [][2]float64 `json:"points"`
}

// RenderJSON exports the scene as a pretty-printed JSON document.
func RenderJSON(sc *scene.Scene) ([]byte, error) {
	out := jsonOutput{
		Width:      sc.Width,
		Height:     sc.Height,
		Style:      sc.Style.String(),
		Renderer:   sc.Renderer,
		Hexagons:   sc.Hexagons,
		Primitives: make([]jsonPrimitive, 0, len(sc.Primitives)),
	}
	for _, p := range sc.Primitives {
		jp := jsonPrimitive{Kind: string(p.Kind), Points: make([][2]float64, len(p.Points))}
		for i, pt := range p.Points {
			jp.Points[i] = [2]float64{pt.X, pt.Y}
		}
		out.Primitives = append(out.Primitives, jp)
	}
	return json.MarshalIndent(out, "", "  ")
}
