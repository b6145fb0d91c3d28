package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
	"github.com/matzehuels/timesnake/pkg/render/timeline/styles"
)

// DefaultPrecision is the number of decimals written for coordinates.
const DefaultPrecision = 2

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	precision  int
	background string
	title      string
}

func WithPrecision(p int) SVGOption      { return func(r *svgRenderer) { r.precision = max(p, 0) } }
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }
func WithTitle(t string) SVGOption      { return func(r *svgRenderer) { r.title = t } }

// RenderSVG writes the scene as a standalone SVG document. The viewBox spans
// the layout's canvas and elements are emitted in scene order.
func RenderSVG(l *layout.Layout, s *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := r.num(l.Width()), r.num(l.Height())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n", w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.EscapeXML(r.background))
	}

	for _, e := range s.Elements() {
		r.renderElement(&buf, e)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderElement(buf *bytes.Buffer, e scene.Element) {
	switch e := e.(type) {
	case scene.Stroke:
		fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			e.Path.SVG(r.precision), styles.EscapeXML(e.Color), r.num(e.Width))
	case scene.Circle:
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			r.num(e.Center.X), r.num(e.Center.Y), r.num(e.Radius), styles.EscapeXML(e.Fill))
	case scene.Text:
		fmt.Fprintf(buf, `  <text x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="%s" fill="%s">%s</text>`+"\n",
			r.num(e.Pos.X), r.num(e.Pos.Y), styles.EscapeXML(e.FontFamily), r.num(e.FontSize),
			e.Anchor, styles.EscapeXML(e.Fill), styles.EscapeXML(e.Content))
	}
}

func (r *svgRenderer) num(v float64) string { return styles.FormatNumber(v, r.precision) }
