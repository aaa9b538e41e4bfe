// Package sink serializes a [scene.Scene] into output formats.
//
// # SVG
//
// [RenderSVG] writes one <svg> element sized to the canvas, one <style>
// element carrying the renderer's style, and one <polygon> or <line> per
// primitive, in scene order. Coordinates use the shortest decimal form that
// round-trips, so identical scenes serialize to identical bytes.
//
//	svg := sink.RenderSVG(sc)                    // single line, for stdout
//	svg := sink.RenderSVG(sc, sink.WithPretty()) // indented, with XML header
//
// # JSON
//
// [RenderJSON] exports the scene's size, style and primitives for tools that
// want the geometry rather than a picture.
//
// # PNG and PDF
//
// [RenderPNG] rasterizes the scene in-process with github.com/gogpu/gg.
// [RenderPDF] renders SVG first and converts it with rsvg-convert, see
// [render.ToPDF].
//
// [render.ToPDF]: github.com/matzehuels/hexgrid/pkg/render.ToPDF
package sink
