package layout

import (
	"math"

	"github.com/matzehuels/timesnake/pkg/errors"
)

// MaxSamples caps the number of points [Layout.Sample] returns for one range.
const MaxSamples = 1 << 20

// Sample walks the year range [from, to] and returns the mapped points in
// path order: the point at from, every Step years from ceil(from) while
// strictly before to, and finally the point at to.
//
// A range with to == from yields a single point. A range with to < from, or
// one that would need more than [MaxSamples] points, is rejected with
// INVALID_RANGE.
func (l *Layout) Sample(from, to, offset float64) ([]Point, error) {
	if to < from {
		return nil, errors.New(errors.ErrCodeInvalidRange, "range ends before it starts: %g..%g", from, to)
	}
	start, err := l.Locate(from)
	if err != nil {
		return nil, err
	}
	end, err := l.Locate(to)
	if err != nil {
		return nil, err
	}
	if err := errors.ValidateFinite("offset", offset); err != nil {
		return nil, err
	}
	step := l.params.Step
	if n := (to - from) / step; n > MaxSamples {
		return nil, errors.New(errors.ErrCodeInvalidRange,
			"range %g..%g at a step of %g years needs more than %d samples", from, to, step, MaxSamples)
	}

	first := l.point(start, offset)
	if to == from {
		return []Point{first}, nil
	}

	pts := make([]Point, 0, int((to-from)/step)+3)
	pts = append(pts, first)

	base := math.Ceil(from)
	for k := 0; ; k++ {
		year := base + float64(k)*step
		if year >= to {
			break
		}
		if year == from {
			continue
		}
		// from <= year < to, so the year is always in range.
		pos, _ := l.Locate(year)
		pts = append(pts, l.point(pos, offset))
	}

	return append(pts, l.point(end, offset)), nil
}

// Centerline samples the visible snake, from the epoch to the end of the last
// row's straight segment. The last row's turn falls below the canvas.
func (l *Layout) Centerline(offset float64) ([]Point, error) {
	return l.Sample(l.Epoch(), l.TurnStart(l.params.Rows-1), offset)
}
