package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexgrid/pkg/grid"
	"github.com/matzehuels/hexgrid/pkg/observability"
	"github.com/matzehuels/hexgrid/pkg/render/styles"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// Runner executes the pipeline and reports progress to its logger.
// It holds no per-run state and may be shared between goroutines.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Execute validates opts, lays out the tiling and renders it.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	sc, stats, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result := &Result{Scene: sc, Format: opts.Format, Stats: stats}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	data, err := Render(sc, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(data), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	result.Artifact = data

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout builds the scene described by opts, which must already be validated.
func (r *Runner) Layout(ctx context.Context, opts Options) (*scene.Scene, Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}
	renderer, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, Stats{}, err
	}

	canvas, spec := opts.Canvas(), opts.HexSpec()
	r.Logger.Debug("computing layout",
		"canvas", fmt.Sprintf("%gx%g", canvas.Width, canvas.Height),
		"hex_height", spec.Height,
		"hex_edge", spec.Edge,
		"style", renderer.Name())

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, renderer.Name())
	sc := scene.Build(canvas, spec, renderer)
	stats := Stats{
		Columns:    len(grid.New(canvas, spec).Columns()),
		Hexagons:   sc.Hexagons,
		Primitives: len(sc.Primitives),
		LayoutTime: time.Since(start),
	}
	observability.Pipeline().OnLayoutComplete(ctx, renderer.Name(), sc.Hexagons, stats.LayoutTime)

	r.Logger.Info("computed layout",
		"columns", stats.Columns,
		"hexagons", stats.Hexagons,
		"primitives", stats.Primitives,
		"duration", stats.LayoutTime)

	return sc, stats, nil
}
