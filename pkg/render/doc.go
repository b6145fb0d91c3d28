// Package render converts finished SVG documents into other formats.
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg):
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [BrowserPNG] rasterizes through headless Chrome instead, for machines
// where Chrome is available but librsvg is not, or where browser font
// rendering is preferred.
//
// The timeline itself lives under pkg/render/timeline: [layout] maps years
// to coordinates, [scene] collects drawable elements and [sink] serializes
// them.
//
// [layout]: github.com/matzehuels/timesnake/pkg/render/timeline/layout
// [scene]: github.com/matzehuels/timesnake/pkg/render/timeline/scene
// [sink]: github.com/matzehuels/timesnake/pkg/render/timeline/sink
package render
