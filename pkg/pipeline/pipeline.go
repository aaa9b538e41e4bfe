// Package pipeline connects user-facing options to the hexagon layout and the
// output sinks.
//
// The pipeline has two stages:
//
//  1. Layout: build a [scene.Scene] from the canvas, hexagon size and style
//  2. Render: serialize the scene to SVG, JSON, PNG or PDF
//
// The geometry packages assume valid input. [Options.Validate] is where
// non-positive sizes, unknown styles and unknown formats are rejected, before
// any geometry runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width: 8.5, Height: 11, HexSize: 0.5, DPI: 300,
//	    Style: "crowsfeet", Format: "png",
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("grid.png", result.Artifact, 0o644)
package pipeline

import (
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/grid"
	"github.com/matzehuels/hexgrid/pkg/hexagon"
	"github.com/matzehuels/hexgrid/pkg/render/styles"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultDPI leaves dimensions in output units.
	DefaultDPI = 1.0

	// DefaultStyle is the default edge renderer.
	DefaultStyle = styles.NameOutline

	// DefaultFormat is the default output format.
	DefaultFormat = FormatSVG

	// DefaultScale draws one PNG pixel per output unit.
	DefaultScale = 1.0
)

// Size limits. Larger requests are rejected before layout so that a typo in
// HEX_SIZE fails with a message instead of exhausting memory.
const (
	// MaxHexagons bounds the hexagon count; it also bounds the column count,
	// since every column holds at least one hexagon.
	MaxHexagons = 500_000

	// MaxPNGPixels bounds the raster area (8192×8192).
	MaxPNGPixels = 8192 * 8192
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// IsBinary reports whether format produces non-text output.
func IsBinary(format string) bool {
	return format == FormatPNG || format == FormatPDF
}

// FormatFromPath returns the output format named by path's extension.
func FormatFromPath(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ValidFormats[ext] {
		return ext, true
	}
	return "", false
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one generated tiling.
// Width, Height and HexSize are in inches when DPI is above one and in output
// units otherwise; either way they are multiplied by DPI.
type Options struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	HexSize float64 `json:"hex_size"` // flat-to-flat
	DPI     float64 `json:"dpi,omitempty"`

	Style  string `json:"style,omitempty"`
	Format string `json:"format,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`

	// Scale is PNG pixels per output unit; other formats ignore it.
	Scale float64 `json:"scale,omitempty"`
}

// SetDefaults fills unset fields with their defaults.
func (o *Options) SetDefaults() {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate checks every field, returning the first problem found.
func (o *Options) Validate() error {
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"width", o.Width},
		{"height", o.Height},
		{"hex size", o.HexSize},
		{"dpi", o.DPI},
		{"scale", o.Scale},
	} {
		if err := errors.ValidateDimension(d.name, d.value); err != nil {
			return err
		}
	}
	if _, err := styles.ByName(o.Style); err != nil {
		return err
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return o.validateSize()
}

// validateSize rejects layouts and rasters above the size limits.
func (o *Options) validateSize() error {
	canvas := o.Canvas()
	columns, hexagons := grid.New(canvas, o.HexSpec()).Size()
	if !(hexagons <= MaxHexagons) {
		return errors.New(errors.ErrCodeInvalidInput,
			"hex size %g is too small for a %gx%g canvas: %.3g hexagons in %.3g columns (limit %d)",
			o.HexSize, o.Width, o.Height, hexagons, columns, MaxHexagons)
	}
	if o.Format == FormatPNG {
		pixels := math.Ceil(canvas.Width*o.Scale) * math.Ceil(canvas.Height*o.Scale)
		if !(pixels <= MaxPNGPixels) {
			return errors.New(errors.ErrCodeInvalidInput,
				"png would be %.3g pixels (limit %d); lower the dpi or scale", pixels, MaxPNGPixels)
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// Canvas returns the canvas in output units.
func (o *Options) Canvas() grid.Canvas {
	return grid.CanvasInInches(o.Width, o.Height, o.DPI)
}

// HexSpec returns the hexagon dimensions in output units.
func (o *Options) HexSpec() hexagon.Spec {
	return hexagon.SpecInInches(o.HexSize, o.DPI)
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the laid-out drawing.
	Scene *scene.Scene

	// Format is the format of Artifact.
	Format string

	// Artifact is the serialized scene.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Columns    int
	Hexagons   int
	Primitives int
	LayoutTime time.Duration
	RenderTime time.Duration
}
