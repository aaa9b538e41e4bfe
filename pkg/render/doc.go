// Package render converts rendered scenes between output formats.
//
// The [sink] subpackage serializes a scene to SVG, JSON and PNG natively. PDF
// has no pure-Go path here: [ToPDF] hands the SVG to the external rsvg-convert
// tool (from librsvg).
//
//	svg := sink.RenderSVG(sc)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/hexgrid/pkg/render/sink
package render
