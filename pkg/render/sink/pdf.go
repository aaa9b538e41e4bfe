package sink

import (
	"github.com/matzehuels/hexgrid/pkg/render"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(sc *scene.Scene) ([]byte, error) {
	return render.ToPDF(RenderSVG(sc, WithPretty()))
}
