package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/observability"
	"github.com/matzehuels/timesnake/pkg/pipeline"
)

// defaultBase names output files when rendering the built-in chart.
const defaultBase = "timeline"

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	output     string // output file (single format) or base path (multiple)
	formats    string // comma-separated output formats
	scale      float64
	rasterizer string
	precision  int
	title      string
	noCache    bool
	refresh    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	flags := renderFlags{
		formats:    pipeline.FormatSVG,
		scale:      pipeline.DefaultScale,
		rasterizer: pipeline.DefaultRasterizer,
	}

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart to SVG, PNG, PDF or JSON",
		Long: `Render a chart file (.toml, .yaml or .json) to one or more output formats.

Without a chart argument the built-in reference chart is rendered: the years
1066 to 2024 with both world wars highlighted.

PNG and PDF output need rsvg-convert (librsvg). With --rasterizer chrome, PNG
is rendered in headless Chrome instead.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeChart(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", flags.formats, "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.scale, "scale", flags.scale, "PNG scale factor")
	cmd.Flags().StringVar(&flags.rasterizer, "rasterizer", flags.rasterizer, "PNG rasterizer: rsvg, chrome")
	cmd.Flags().IntVar(&flags.precision, "precision", 0, "decimals in path coordinates (default 2)")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title (default: the chart title)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached artifacts")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("rasterizer", completeRasterizers)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, flags renderFlags) error {
	logger := loggerFromContext(ctx)

	ch, input, err := loadChart(args)
	if err != nil {
		return err
	}
	formats, err := pipeline.ParseFormats(flags.formats)
	if err != nil {
		return err
	}
	paths, err := outputPaths(flags.output, input, formats)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newStageSpinner(c.status, "Rendering "+chartName(input))
	prev := observability.Pipeline()
	observability.SetPipelineHooks(stageHooks{spinner: spinner})
	spinner.start(ctx)

	result, err := runner.Execute(ctx, pipeline.Options{
		Chart:      ch,
		Formats:    formats,
		Scale:      flags.scale,
		Rasterizer: flags.rasterizer,
		Precision:  flags.precision,
		Title:      flags.title,
		Refresh:    flags.refresh,
		Logger:     logger,
	})
	spinner.finish()
	observability.SetPipelineHooks(prev)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, f := range formats {
		start := time.Now()
		if err := os.WriteFile(paths[f], result.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[f], err)
		}
		logWritten(logger, f, paths[f], len(result.Artifacts[f]), time.Since(start))
	}

	c.printSuccess("Rendered %s", chartName(input))
	for _, f := range formats {
		c.printFile(paths[f])
	}
	c.printStats(result.Scene.Counts(), result.Stats.Rows, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to the file it is written to. A single format
// is written to output as given. Several formats share a base path taken from
// output (minus any format extension) or from the chart file name.
func outputPaths(output, input string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
	} else {
		base := basePath(output, input)
		for _, f := range formats {
			paths[f] = base + "." + f
		}
	}
	for _, p := range paths {
		if err := errors.ValidatePath(p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// basePath derives the output base path from the output and input paths.
func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input == "" {
		return defaultBase
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

func chartName(input string) string {
	if input == "" {
		return "reference chart"
	}
	return input
}
