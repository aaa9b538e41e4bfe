// Package pkg holds the hexgrid libraries.
//
// # Overview
//
// hexgrid covers a rectangular canvas with flat-topped hexagons and draws
// their edges in one of two styles: complete outlines, or "crow's feet" that
// mark only the corners. The packages are layered:
//
//  1. [hexagon] - points, hexagon dimensions and vertex geometry
//  2. [grid] - canvas and the column/row layout that tiles it
//  3. [render/styles] - edge renderers drawing onto a surface
//  4. [scene] - the recorded drawing, one primitive per polygon or line
//  5. [render/sink] - SVG, JSON, PNG and PDF serialization
//  6. [pipeline] - options, validation and the layout → render runner
//
// # Data flow
//
//	pipeline.Options
//	       ↓
//	  grid.Layout (column centres, row centres)
//	       ↓
//	  styles.Renderer.Draw → scene.Scene
//	       ↓
//	  sink.RenderSVG / RenderJSON / RenderPNG / RenderPDF
//
// Supporting packages: [config] loads TOML or YAML presets, [errors] carries
// coded errors, [observability] exposes pipeline hooks and [buildinfo] holds
// the version.
package pkg
