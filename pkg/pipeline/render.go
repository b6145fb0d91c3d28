package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/timesnake/pkg/chart"
	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
	"github.com/matzehuels/timesnake/pkg/render/timeline/sink"
)

// Render serializes a scene composed from c in one format. The chart supplies
// the document title and background.
func Render(ctx context.Context, c *chart.Chart, l *layout.Layout, s *scene.Scene, format string, opts Options) ([]byte, error) {
	svgOpts := buildSVGOptions(c, opts)

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, s, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale)}
		if opts.Rasterizer == RasterizerChrome {
			pngOpts = append(pngOpts, sink.WithBrowser())
		}
		return sink.RenderPNG(ctx, l, s, pngOpts...)
	case FormatPDF:
		return sink.RenderPDF(ctx, l, s, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		data, err := sink.RenderJSON(l, s, sink.WithJSONPathData(), sink.WithJSONPrecision(opts.Precision))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize scene")
		}
		return data, nil
	}
	return nil, ValidateFormat(format)
}

// RenderAll renders every format in opts.Formats.
func RenderAll(ctx context.Context, c *chart.Chart, l *layout.Layout, s *scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := Render(ctx, c, l, s, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(c *chart.Chart, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithPrecision(opts.Precision)}

	title := opts.Title
	if title == "" {
		title = c.Title
	}
	if title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(title))
	}
	if c.Style.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(c.Style.Background))
	}
	return svgOpts
}
