// Package pipeline provides the render pipeline shared by the CLI and the
// HTTP server.
//
// A run goes through three stages:
//
//  1. Layout: derive the snake geometry from the chart's layout parameters
//  2. Compose: draw the chart's tracks, timelines, markers and labels into a scene
//  3. Render: serialize the scene in each requested format (SVG, PNG, PDF, JSON)
//
// Rendered artifacts are cached by a key derived from the chart content and
// the render options, so an unchanged chart is not redrawn.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Chart:   chart.Reference(),
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/timesnake/pkg/cache"
	"github.com/matzehuels/timesnake/pkg/chart"
	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
	"github.com/matzehuels/timesnake/pkg/render/timeline/sink"
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

// Rasterizers turn SVG into PNG.
const (
	RasterizerRSVG   = "rsvg"
	RasterizerChrome = "chrome"
)

// Defaults shared by the CLI and the server.
const (
	DefaultScale      = 1.0
	DefaultRasterizer = RasterizerRSVG
	MaxScale          = 8.0
)

// ContentTypes maps each output format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// Options configures one pipeline run.
type Options struct {
	// Chart is the drawing to render. When nil, Source is decoded with
	// SourceFormat, and when both are empty the reference chart is used.
	Chart        *chart.Chart `json:"-"`
	Source       []byte       `json:"-"`
	SourceFormat chart.Format `json:"source_format,omitempty"`

	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Rasterizer string   `json:"rasterizer,omitempty"`
	// Precision is the number of decimals in path data. Zero selects
	// sink.DefaultPrecision.
	Precision int `json:"precision,omitempty"`
	// Title overrides the chart title in the SVG <title> element.
	Title string `json:"title,omitempty"`
	// Refresh skips cache reads. Fresh artifacts are still written back.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Chart     *chart.Chart
	ChartHash string
	Layout    *layout.Layout
	Scene     *scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows        int
	Elements    int
	LayoutTime  time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // every requested format was served from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list such as "svg,png".
// Duplicates are dropped and order is kept.
func ParseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// ValidateRasterizer checks that a rasterizer name is valid.
func ValidateRasterizer(r string) error {
	if r != RasterizerRSVG && r != RasterizerChrome {
		return errors.New(errors.ErrCodeInvalidInput, "invalid rasterizer: %q (must be one of: rsvg, chrome)", r)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateRasterizer(o.Rasterizer); err != nil {
		return err
	}
	if err := errors.ValidateFinite("scale", o.Scale); err != nil {
		return err
	}
	if o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	if o.Precision < 0 || o.Precision > 6 {
		return errors.New(errors.ErrCodeInvalidInput, "precision must be between 0 and 6, got %d", o.Precision)
	}
	if len(o.Source) > 0 && o.SourceFormat == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "source format is required with a chart source")
	}

	o.validated = true
	return nil
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Rasterizer == "" {
		o.Rasterizer = DefaultRasterizer
	}
	if o.Precision == 0 {
		o.Precision = sink.DefaultPrecision
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for one output format. Options
// that do not affect the format are left out so, for example, changing the
// PNG scale keeps the cached SVG.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		Precision: o.Precision,
	}
	if format != FormatJSON {
		k.Title = o.Title
	}
	if format == FormatPNG {
		k.Scale = o.Scale
		k.Rasterizer = o.Rasterizer
	}
	return k
}
