package sink

import (
	"context"

	"github.com/matzehuels/timesnake/pkg/render"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
	browser bool
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithBrowser rasterizes in headless Chrome instead of rsvg-convert.
func WithBrowser() PNGOption {
	return func(r *pngRenderer) { r.browser = true }
}

// RenderPNG renders the scene as PNG via SVG conversion.
// Requires librsvg, or Chrome when [WithBrowser] is set.
func RenderPNG(ctx context.Context, l *layout.Layout, s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(l, s, r.svgOpts...)
	if r.browser {
		return render.BrowserPNG(ctx, svg, l.Width(), l.Height(), r.scale)
	}
	return render.ToPNG(ctx, svg, r.scale)
}
