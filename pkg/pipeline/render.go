package pipeline

import (
	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/render/sink"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// Render serializes sc in opts.Format. Pretty only affects SVG, which is
// otherwise emitted on a single line, and Scale only affects PNG.
func Render(sc *scene.Scene, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Pretty {
			svgOpts = append(svgOpts, sink.WithPretty())
		}
		return sink.RenderSVG(sc, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(sc)
	case FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		return sink.RenderPNG(sc, sink.WithScale(scale))
	case FormatPDF:
		return sink.RenderPDF(sc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", opts.Format)
	}
}
