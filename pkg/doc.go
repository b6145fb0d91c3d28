// Package pkg provides the libraries behind timesnake, which draws historical
// timelines as a snake of centuries.
//
// # Overview
//
// Each century is one horizontal row. Rows alternate direction and are joined
// at alternating ends by semicircular turns, so the years run as one
// continuous path down the canvas. The pkg directory is organized as:
//
//  1. [render/timeline] - Geometry and drawing (layout, path, scene, sink, styles)
//  2. [chart] - Chart files: what to draw on the snake
//  3. [pipeline] - Orchestration (layout → compose → render) with caching
//  4. [cache], [observability], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
//	chart file (TOML, YAML, JSON)
//	         ↓
//	    [chart] package (decode + validate)
//	         ↓
//	    [render/timeline/layout] package (year → point, sampling)
//	         ↓
//	    [render/timeline/scene] package (capsules, markers, labels)
//	         ↓
//	    [render/timeline/sink] package
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/timesnake/pkg/render/timeline/layout"
//	    "github.com/matzehuels/timesnake/pkg/render/timeline/scene"
//	    "github.com/matzehuels/timesnake/pkg/render/timeline/sink"
//	    "github.com/matzehuels/timesnake/pkg/render/timeline/styles"
//	)
//
//	l, _ := layout.New(layout.DefaultParams())
//	r := scene.NewRenderer(l, styles.Default())
//	s := scene.New()
//
//	_ = r.Timeline(s, 1066, 2024, l.RowHeight(), 0)
//	for y := 1000.0; y <= 2000; y += 100 {
//	    _ = r.Label(s, y, 0)
//	}
//	svg := sink.RenderSVG(l, s)
//
// Or run the whole pipeline, with caching, on a chart:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Chart:   chart.Reference(),
//	    Formats: []string{"svg", "png"},
//	})
//
// # Package Organization
//
// [render/timeline/layout] - The snake geometry. [layout.New] derives turn
// radii, straight-segment length and distance per year from the canvas
// parameters; [layout.Layout.Point] maps a year to the canvas and
// [layout.Layout.Sample] samples a year range densely enough to follow the turns.
//
// [render/timeline/path] - A structured path builder serialized to SVG path
// data only at the output boundary, plus the Hobby spline that turns sampled
// points into a smooth curve.
//
// [render/timeline/scene] - Drawable elements in draw order and the
// renderer that draws capsules, bordered timelines, markers and labels.
//
// [render/timeline/sink] - SVG, JSON, PNG and PDF output.
//
// [render] - Format conversion: rsvg-convert for PNG and PDF, headless Chrome
// for PNG.
//
// [chart] - The chart file format and the embedded reference chart.
//
// [pipeline] - The run shared by the CLI and the HTTP server.
//
// [cache] - Artifact caches on disk, in Redis or nowhere.
//
// [render/timeline]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/render/timeline
// [render/timeline/layout]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/render/timeline/layout
// [render/timeline/path]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/render/timeline/path
// [render/timeline/scene]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/render/timeline/scene
// [render/timeline/sink]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/render/timeline/sink
// [render]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/render
// [chart]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/chart
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/timesnake/pkg/buildinfo
package pkg
