package scene

import (
	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/path"
	"github.com/matzehuels/timesnake/pkg/render/timeline/styles"
)

// Renderer turns years and year ranges into scene elements for one layout
// and style. It holds no mutable state and may be shared.
type Renderer struct {
	layout *layout.Layout
	style  styles.Style
}

// NewRenderer returns a renderer drawing on l with style s.
func NewRenderer(l *layout.Layout, s styles.Style) *Renderer {
	return &Renderer{layout: l, style: s}
}

func (r *Renderer) Layout() *layout.Layout { return r.layout }
func (r *Renderer) Style() styles.Style    { return r.style }

// Capsule appends a stroke of the given width and color that follows the
// snake from one year to another. The curve passes through every sampled
// point of the range.
func (r *Renderer) Capsule(s *Scene, from, to, width, offset float64, color string) error {
	st, err := r.capsule(from, to, width, offset, color)
	if err != nil {
		return err
	}
	s.Add(st)
	return nil
}

func (r *Renderer) capsule(from, to, width, offset float64, color string) (Stroke, error) {
	if err := checkWidth(width); err != nil {
		return Stroke{}, err
	}
	pts, err := r.layout.Sample(from, to, offset)
	if err != nil {
		return Stroke{}, err
	}
	curve, err := path.Through(pts)
	if err != nil {
		return Stroke{}, err
	}
	return Stroke{Path: curve, Color: color, Width: width}, nil
}

// Timeline appends a bordered capsule: a full-width capsule in the border
// color under a capsule narrowed by the border width in the fill color.
// Either both strokes are added or neither.
func (r *Renderer) Timeline(s *Scene, from, to, width, offset float64) error {
	return r.TimelineColor(s, from, to, width, offset, r.style.FillColor)
}

// TimelineColor is like [Renderer.Timeline] with a custom fill color.
func (r *Renderer) TimelineColor(s *Scene, from, to, width, offset float64, fill string) error {
	if width <= r.style.BorderWidth {
		return errors.New(errors.ErrCodeInvalidInput,
			"timeline width %g must exceed the border width %g", width, r.style.BorderWidth)
	}
	border, err := r.capsule(from, to, width, offset, r.style.BorderColor)
	if err != nil {
		return err
	}
	inner, err := r.capsule(from, to, width-r.style.BorderWidth, offset, fill)
	if err != nil {
		return err
	}
	s.Add(border, inner)
	return nil
}

// Marker appends a small dot at year.
func (r *Renderer) Marker(s *Scene, year, offset float64) error {
	p, err := r.layout.Point(year, offset)
	if err != nil {
		return err
	}
	s.Add(Circle{Center: p, Radius: r.style.MarkerRadius, Fill: r.style.MarkerColor})
	return nil
}

// Label appends the year as text centred above its row, clear of any
// full-height timeline drawn there.
func (r *Renderer) Label(s *Scene, year, offset float64) error {
	return r.Text(s, year, offset, styles.FormatYear(year))
}

// Text is like [Renderer.Label] with custom content.
func (r *Renderer) Text(s *Scene, year, offset float64, content string) error {
	p, err := r.layout.Point(year, offset)
	if err != nil {
		return err
	}
	p.Y -= r.layout.RowHeight()/2 + r.style.LabelGap
	s.Add(Text{
		Pos:        p,
		Content:    content,
		FontFamily: r.style.FontFamily,
		FontSize:   r.style.FontSize,
		Anchor:     AnchorMiddle,
		Fill:       r.style.TextColor,
	})
	return nil
}

// Track appends a stroke along the whole visible snake at the given offset.
func (r *Renderer) Track(s *Scene, offset, width float64, color string) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	pts, err := r.layout.Centerline(offset)
	if err != nil {
		return err
	}
	curve, err := path.Through(pts)
	if err != nil {
		return err
	}
	s.Add(Stroke{Path: curve, Color: color, Width: width})
	return nil
}

func checkWidth(w float64) error {
	if err := errors.ValidateFinite("stroke width", w); err != nil {
		return err
	}
	if w <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "stroke width must be positive, got %g", w)
	}
	return nil
}
