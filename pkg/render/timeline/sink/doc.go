// Package sink serializes a finished timeline scene.
//
// A "sink" takes a [layout.Layout] and the [scene.Scene] drawn on it and
// produces a final output format:
//
//   - SVG: the document itself, see [RenderSVG]
//   - JSON: layout constants plus structured elements, see [RenderJSON]
//   - PDF: via rsvg-convert, see [RenderPDF]
//   - PNG: via rsvg-convert or headless Chrome, see [RenderPNG]
//
// Basic usage:
//
//	svg := sink.RenderSVG(l, s,
//	    sink.WithPrecision(3),
//	    sink.WithBackground("white"),
//	)
//
// Path data is only turned into markup here; everything upstream works
// with structured paths.
package sink
