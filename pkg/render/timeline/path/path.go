package path

import (
	"math"
	"strings"

	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/styles"
)

// Verb is a path drawing command.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	CubicTo
	Close
)

var verbLetters = [...]string{MoveTo: "M", LineTo: "L", CubicTo: "C", Close: "Z"}

// String returns the SVG command letter.
func (v Verb) String() string {
	if int(v) < len(verbLetters) {
		return verbLetters[v]
	}
	return "?"
}

func (v Verb) MarshalText() ([]byte, error) {
	if int(v) >= len(verbLetters) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown path verb %d", v)
	}
	return []byte(v.String()), nil
}

func (v *Verb) UnmarshalText(b []byte) error {
	for i, s := range verbLetters {
		if s == string(b) {
			*v = Verb(i)
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown path verb %q", b)
}

// Segment is one command with its points. CubicTo carries two control points
// followed by the end point; MoveTo and LineTo carry one point; Close none.
type Segment struct {
	Verb   Verb           `json:"verb"`
	Points []layout.Point `json:"points,omitempty"`
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min layout.Point `json:"min"`
	Max layout.Point `json:"max"`
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: layout.Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: layout.Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: layout.Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: layout.Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Path is an ordered list of drawing commands. Builder methods return the
// path so calls can be chained. The zero value is an empty path.
type Path struct {
	segs []Segment
}

// New returns an empty path.
func New() *Path { return &Path{} }

func (p *Path) add(v Verb, pts ...layout.Point) *Path {
	p.segs = append(p.segs, Segment{Verb: v, Points: pts})
	return p
}

func (p *Path) MoveTo(pt layout.Point) *Path { return p.add(MoveTo, pt) }
func (p *Path) LineTo(pt layout.Point) *Path { return p.add(LineTo, pt) }
func (p *Path) Close() *Path                 { return p.add(Close) }

// CubicTo appends a cubic Bézier from the current point to end.
func (p *Path) CubicTo(c1, c2, end layout.Point) *Path { return p.add(CubicTo, c1, c2, end) }

// Len returns the number of commands.
func (p *Path) Len() int { return len(p.segs) }

// Segments returns a copy of the commands.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		out[i] = Segment{Verb: s.Verb, Points: append([]layout.Point(nil), s.Points...)}
	}
	return out
}

// Bounds returns the box around every point of the path, control points
// included, so the curve itself always lies inside. ok is false for a path
// without points.
func (p *Path) Bounds() (r Rect, ok bool) {
	for _, s := range p.segs {
		for _, pt := range s.Points {
			if !ok {
				r = Rect{Min: pt, Max: pt}
				ok = true
				continue
			}
			r = r.Union(Rect{Min: pt, Max: pt})
		}
	}
	return r, ok
}

// SVG serializes the path as the value of an SVG d attribute, with
// coordinates rounded to precision decimals.
func (p *Path) SVG(precision int) string {
	var sb strings.Builder
	for i, s := range p.segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Verb.String())
		for j, pt := range s.Points {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(styles.FormatNumber(pt.X, precision))
			sb.WriteByte(' ')
			sb.WriteString(styles.FormatNumber(pt.Y, precision))
		}
	}
	return sb.String()
}

func (p *Path) String() string { return p.SVG(2) }
