package sink

import (
	"bytes"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/render/styles"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the pixel density relative to output units (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes sc to PNG.
func RenderPNG(sc *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(math.Ceil(sc.Width * r.scale))
	h := int(math.Ceil(sc.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png: canvas %vx%v has no pixels", sc.Width, sc.Height)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.White)
	dc.Scale(r.scale, r.scale)
	applyStyle(dc, sc.Style)

	for i, p := range sc.Primitives {
		tracePrimitive(dc, p)
		if err := dc.Stroke(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "png: stroke primitive %d", i)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "png: encode")
	}
	return buf.Bytes(), nil
}

func applyStyle(dc *gg.Context, st styles.Style) {
	dc.SetHexColor(st.Stroke)
	dc.SetLineWidth(st.StrokeWidth)
	switch st.LineCap {
	case styles.CapRound:
		dc.SetLineCap(gg.LineCapRound)
	default:
		dc.SetLineCap(gg.LineCapButt)
	}
}

func tracePrimitive(dc *gg.Context, p scene.Primitive) {
	for i, pt := range p.Points {
		if i == 0 {
			dc.MoveTo(pt.X, pt.Y)
			continue
		}
		dc.LineTo(pt.X, pt.Y)
	}
	if p.Kind == scene.KindPolygon {
		dc.ClosePath()
	}
}
