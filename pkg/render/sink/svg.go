package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/hexgrid/pkg/hexagon"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8" ?>`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pretty bool
}

// WithPretty emits an XML header and one indented element per line.
func WithPretty() SVGOption { return func(r *svgRenderer) { r.pretty = true } }

// RenderSVG serializes sc as an SVG document.
func RenderSVG(sc *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if r.pretty {
		buf.WriteString(xmlHeader + "\n")
	}

	w, h := num(sc.Width), num(sc.Height)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" baseProfile="full" width="%s" height="%s" viewBox="0 0 %s %s">`,
		w, h, w, h)
	r.newline(&buf)

	r.indent(&buf)
	fmt.Fprintf(&buf, `<style type="text/css">%s</style>`, sc.Style)
	r.newline(&buf)

	for _, p := range sc.Primitives {
		r.indent(&buf)
		writePrimitive(&buf, p)
		r.newline(&buf)
	}

	buf.WriteString("</svg>")
	if r.pretty {
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

func (r *svgRenderer) newline(buf *bytes.Buffer) {
	if r.pretty {
		buf.WriteByte('\n')
	}
}

func (r *svgRenderer) indent(buf *bytes.Buffer) {
	if r.pretty {
		buf.WriteString("  ")
	}
}

func writePrimitive(buf *bytes.Buffer, p scene.Primitive) {
	switch p.Kind {
	case scene.KindPolygon:
		buf.WriteString(`<polygon points="`)
		writePoints(buf, p.Points)
		buf.WriteString(`" />`)
	case scene.KindLine:
		a, b := p.Points[0], p.Points[1]
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" />`, num(a.X), num(a.Y), num(b.X), num(b.Y))
	}
}

func writePoints(buf *bytes.Buffer, pts []hexagon.Point) {
	for i, pt := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(num(pt.X))
		buf.WriteByte(',')
		buf.WriteString(num(pt.Y))
	}
}

// num formats v in its shortest round-trip form without an exponent.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
