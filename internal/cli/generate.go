package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexgrid/pkg/config"
	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/pipeline"
)

// generateFlags holds the flag values of the generate command.
type generateFlags struct {
	dpi    float64
	scale  float64
	style  string
	format string
	output string
	config string
	pretty bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   appName + " WIDTH HEIGHT HEX_SIZE",
		Short: "Generate hexagonal grid paper",
		Long: `Generate a tiling of flat-topped hexagons covering a WIDTH x HEIGHT canvas.

HEX_SIZE is the flat-to-flat height of one hexagon. All three dimensions are
multiplied by --dpi, so with --dpi 300 they are read as inches.

Without --output the compact serialization is printed to stdout. With
--output it is written pretty-printed to the file, and the format defaults to
the file's extension.`,
		Example: `  # 100x100 canvas with 20-unit hexagons, to stdout
  hexgrid 100 100 20

  # US letter at 300 dpi with half-inch crow's feet
  hexgrid 8.5 11 0.5 --dpi 300 --style crowsfeet -o letter.svg

  # Raster output at twice the pixel density
  hexgrid 8.5 11 0.5 --dpi 150 --scale 2 -o letter.png`,
		Args:         exactDimensions,
		SilenceUsage: true,
		// main reports errors with ReportError.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args, &f)
		},
	}

	cmd.Flags().Float64VarP(&f.dpi, "dpi", "d", pipeline.DefaultDPI, "dots per inch; dimensions are multiplied by this")
	cmd.Flags().StringVarP(&f.style, "style", "s", pipeline.DefaultStyle, "edge style: hexes or crowsfeet")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: svg, json, png or pdf (default: from --output, else svg)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "preset file (.toml, .yaml or .yml)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "pretty-print output written to stdout")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG pixels per output unit")

	_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(
		[]string{"hexes", "crowsfeet"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatPNG, pipeline.FormatPDF},
		cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func exactDimensions(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return errors.New(errors.ErrCodeInvalidInput,
			"expected WIDTH HEIGHT HEX_SIZE, got %d argument(s)", len(args))
	}
	return nil
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string, f *generateFlags) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	logger := loggerFromContext(ctx)

	opts, output, err := resolveOptions(cmd, args, f)
	if err != nil {
		return err
	}
	if output != "" {
		opts.Pretty = true
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if output == "" && pipeline.IsBinary(opts.Format) && isTerminal(c.stdout) {
		return errors.New(errors.ErrCodeInvalidInput,
			"refusing to write %s to a terminal; use --output or redirect stdout", opts.Format)
	}

	p := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := c.writeArtifact(ctx, output, result); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %s", result.Format))

	if output != "" {
		printSuccess(c.stderr, "Generated %s grid", opts.Style)
		printFile(c.stderr, output)
		printStats(c.stderr, result.Stats.Columns, result.Stats.Hexagons, result.Stats.Primitives)
	}
	return nil
}

// resolveOptions merges positional arguments, flags and an optional preset.
// Explicit flags win over the preset; the output extension picks the format
// only when neither names one.
func resolveOptions(cmd *cobra.Command, args []string, f *generateFlags) (pipeline.Options, string, error) {
	dims, err := parseDimensions(args)
	if err != nil {
		return pipeline.Options{}, "", err
	}
	// Zero is rejected here; pipeline defaults would turn it into 1.
	if err := errors.ValidateDimension("dpi", f.dpi); err != nil {
		return pipeline.Options{}, "", err
	}
	if err := errors.ValidateDimension("scale", f.scale); err != nil {
		return pipeline.Options{}, "", err
	}
	opts := pipeline.Options{
		Width:   dims[0],
		Height:  dims[1],
		HexSize: dims[2],
		DPI:     f.dpi,
		Style:   f.style,
		Format:  f.format,
		Pretty:  f.pretty,
		Scale:   f.scale,
	}
	output := f.output

	if f.config != "" {
		cfg, err := config.Load(f.config)
		if err != nil {
			return pipeline.Options{}, "", err
		}
		cfg.Apply(&opts, cmd.Flags().Changed)
		if cfg.Output != "" && !cmd.Flags().Changed("output") {
			output = cfg.Output
		}
	}

	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return pipeline.Options{}, "", err
		}
		if opts.Format == "" {
			if format, ok := pipeline.FormatFromPath(output); ok {
				opts.Format = format
			}
		}
	}
	return opts, output, nil
}

// parseDimensions parses WIDTH, HEIGHT and HEX_SIZE. Range checks happen in
// pipeline.Options.Validate.
func parseDimensions(args []string) ([3]float64, error) {
	var dims [3]float64
	names := [3]string{"width", "height", "hex size"}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return dims, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", names[i], arg)
		}
		dims[i] = v
	}
	return dims, nil
}

// writeArtifact writes the result to path, or to stdout when path is empty.
// Text written to stdout always ends with a newline.
func (c *CLI) writeArtifact(ctx context.Context, path string, result *pipeline.Result) error {
	logger := loggerFromContext(ctx)
	if path == "" {
		data := result.Artifact
		if !pipeline.IsBinary(result.Format) && !bytes.HasSuffix(data, []byte("\n")) {
			data = append(data, '\n')
		}
		_, err := c.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, result.Artifact, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("wrote output", "path", path, "bytes", len(result.Artifact))
	return nil
}
