package scene

import (
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/path"
)

// Kind names the type of a drawable element.
type Kind string

const (
	KindStroke Kind = "stroke"
	KindCircle Kind = "circle"
	KindText   Kind = "text"
)

// Element is a drawable value. Elements are never modified after they are
// added to a [Scene].
type Element interface {
	Kind() Kind
	// Bounds returns the area the element covers on the canvas.
	Bounds() path.Rect
}

// Stroke is an unfilled path drawn with round caps and round joins, so the
// ends of a stroked range appear as semicircles.
type Stroke struct {
	Path  *path.Path
	Color string
	Width float64
}

func (Stroke) Kind() Kind { return KindStroke }

func (s Stroke) Bounds() path.Rect {
	r, _ := s.Path.Bounds()
	return r.Inflate(s.Width / 2)
}

// Circle is a filled dot.
type Circle struct {
	Center layout.Point
	Radius float64
	Fill   string
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Bounds() path.Rect {
	return path.Rect{Min: c.Center, Max: c.Center}.Inflate(c.Radius)
}

// Anchor is the horizontal alignment of a text element around its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text. Pos is the anchor point on the baseline.
type Text struct {
	Pos        layout.Point
	Content    string
	FontFamily string
	FontSize   float64
	Anchor     Anchor
	Fill       string
}

func (Text) Kind() Kind { return KindText }

// Bounds estimates the text box from the font size, assuming an average
// glyph width of 0.6em.
func (t Text) Bounds() path.Rect {
	w := float64(len([]rune(t.Content))) * t.FontSize * 0.6
	left := t.Pos.X
	switch t.Anchor {
	case AnchorMiddle:
		left -= w / 2
	case AnchorEnd:
		left -= w
	}
	return path.Rect{
		Min: layout.Point{X: left, Y: t.Pos.Y - t.FontSize},
		Max: layout.Point{X: left + w, Y: t.Pos.Y + t.FontSize*0.25},
	}
}
