package sink

import (
	"encoding/json"

	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/path"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	pathData  bool
	precision int
}

// WithJSONPathData adds each stroke's serialized SVG path data next to its
// segment list.
func WithJSONPathData() JSONOption { return func(r *jsonRenderer) { r.pathData = true } }

// WithJSONPrecision sets the decimals of the serialized path data.
func WithJSONPrecision(p int) JSONOption { return func(r *jsonRenderer) { r.precision = p } }

type jsonOutput struct {
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Params   layout.Params  `json:"params"`
	Layout   *layout.Layout `json:"layout"`
	Elements []jsonElement  `json:"elements"`
}

type jsonElement struct {
	Kind scene.Kind `json:"kind"`

	Color string         `json:"color,omitempty"`
	Width float64        `json:"width,omitempty"`
	Path  []path.Segment `json:"path,omitempty"`
	D     string         `json:"d,omitempty"`

	Center *layout.Point `json:"center,omitempty"`
	Radius float64       `json:"radius,omitempty"`
	Fill   string        `json:"fill,omitempty"`

	Position   *layout.Point `json:"position,omitempty"`
	Content    string        `json:"content,omitempty"`
	FontFamily string        `json:"font_family,omitempty"`
	FontSize   float64       `json:"font_size,omitempty"`
	Anchor     scene.Anchor  `json:"anchor,omitempty"`
}

// RenderJSON exports the layout constants and the scene elements, in draw
// order, as a pretty-printed JSON document. Strokes carry their structured
// path so other tools can redraw them at any precision.
func RenderJSON(l *layout.Layout, s *scene.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    l.Width(),
		Height:   l.Height(),
		Params:   l.Params(),
		Layout:   l,
		Elements: make([]jsonElement, 0, s.Len()),
	}
	for _, e := range s.Elements() {
		out.Elements = append(out.Elements, r.element(e))
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r *jsonRenderer) element(e scene.Element) jsonElement {
	je := jsonElement{Kind: e.Kind()}
	switch e := e.(type) {
	case scene.Stroke:
		je.Color, je.Width, je.Path = e.Color, e.Width, e.Path.Segments()
		if r.pathData {
			je.D = e.Path.SVG(r.precision)
		}
	case scene.Circle:
		c := e.Center
		je.Center, je.Radius, je.Fill = &c, e.Radius, e.Fill
	case scene.Text:
		p := e.Pos
		je.Position, je.Content, je.Fill = &p, e.Content, e.Fill
		je.FontFamily, je.FontSize, je.Anchor = e.FontFamily, e.FontSize, e.Anchor
	}
	return je
}
