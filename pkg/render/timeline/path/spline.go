package path

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/arithm/jhobby"

	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
)

// hobbyWindow is the number of knots solved together. Windows overlap by one
// knot and share the chord direction there, so the curve stays smooth across
// window boundaries.
const hobbyWindow = 64

// minKnotDistance drops knots closer than this to their predecessor. The
// solver rejects zero-length segments.
const minKnotDistance = 1e-6

// Through returns a smooth curve passing through every point in order, one
// cubic Bézier per pair of neighbouring points. Control points come from
// Hobby's spline interpolation with default tension and curl.
//
// A single point yields a zero-length line so that round caps still draw a
// dot. Two points yield a straight line.
func Through(pts []layout.Point) (*Path, error) {
	pts = dedupe(pts)
	p := New()
	switch len(pts) {
	case 0:
		return p, nil
	case 1:
		return p.MoveTo(pts[0]).LineTo(pts[0]), nil
	case 2:
		return p.MoveTo(pts[0]).LineTo(pts[1]), nil
	}

	p.MoveTo(pts[0])
	last := len(pts) - 1
	for start := 0; start < last; start += hobbyWindow - 1 {
		end := min(start+hobbyWindow-1, last)
		if err := p.hobby(pts, start, end); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// hobby appends the curve through pts[start..end].
func (p *Path) hobby(pts []layout.Point, start, end int) error {
	knots := jhobby.Nullpath()
	for i := start; i <= end; i++ {
		knots.Knot(pair(pts[i]))
		if i < end {
			knots.Curve()
		}
	}
	knots = knots.End()
	if start > 0 {
		knots.SetPostDir(0, chord(pts, start))
	}
	if end < len(pts)-1 {
		knots.SetPreDir(end-start, chord(pts, end))
	}

	ctrls, err := jhobby.FindHobbyControls(knots, knots.Controls)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "interpolate %d points", end-start+1)
	}
	for i := 0; i < end-start; i++ {
		p.CubicTo(point(ctrls.PostControl(i)), point(ctrls.PreControl(i+1)), pts[start+i+1])
	}
	return nil
}

// chord is the direction through the neighbours of pts[i].
func chord(pts []layout.Point, i int) arithm.Pair {
	return pair(pts[i+1]) - pair(pts[i-1])
}

func dedupe(pts []layout.Point) []layout.Point {
	if len(pts) < 2 {
		return pts
	}
	out := make([]layout.Point, 1, len(pts))
	out[0] = pts[0]
	for _, q := range pts[1:] {
		if q.Dist(out[len(out)-1]) > minKnotDistance {
			out = append(out, q)
		}
	}
	// Keep the exact end point.
	if last := pts[len(pts)-1]; out[len(out)-1] != last {
		if len(out) > 1 {
			out[len(out)-1] = last
		} else {
			out = append(out, last)
		}
	}
	return out
}

func pair(p layout.Point) arithm.Pair { return arithm.P(p.X, p.Y) }

func point(z arithm.Pair) layout.Point { return layout.Point{X: z.X(), Y: z.Y()} }

// Polyline joins the points with straight lines.
func Polyline(pts []layout.Point) *Path {
	p := New()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	if len(pts) == 1 {
		return p.LineTo(pts[0])
	}
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}
