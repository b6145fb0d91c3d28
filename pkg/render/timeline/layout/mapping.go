package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/timesnake/pkg/errors"
)

// Point is a position in canvas space. Y grows downwards, as in SVG.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Segment tells which part of a row a year falls on.
type Segment int

const (
	// Straight is the horizontal part of a row where x is linear in the year.
	Straight Segment = iota
	// Turn is the semicircle joining the end of a row to the start of the next.
	Turn
)

func (s Segment) String() string {
	if s == Turn {
		return "turn"
	}
	return "straight"
}

// Position describes where a year lies on the snake. Row is always one of the
// layout's rows; the last drawable year is reported at the end of the last
// row's turn.
type Position struct {
	Year      float64 `json:"year"`
	Row       int     `json:"row"`
	YearInRow float64 `json:"year_in_row"`
	Segment   Segment `json:"segment"`
	// Direction is +1 on rows running left to right and -1 otherwise.
	Direction int `json:"direction"`
	// Angle is the swept angle of the turn in radians, 0 on straight segments.
	Angle float64 `json:"angle"`
}

// Locate decomposes year into its row and segment. Years outside
// [Epoch, LastYear] are rejected with YEAR_OUT_OF_RANGE.
func (l *Layout) Locate(year float64) (Position, error) {
	if err := l.checkYear(year); err != nil {
		return Position{}, err
	}

	y := year - l.params.Epoch
	row := int(math.Floor(y / YearsPerRow))
	pos := Position{
		Year:      year,
		Row:       row,
		YearInRow: y - float64(row)*YearsPerRow,
		Direction: 1,
	}
	// LastYear closes the turn of the last row.
	if row == l.params.Rows {
		pos.Row--
		pos.YearInRow += YearsPerRow
	}
	if pos.Row%2 == 1 {
		pos.Direction = -1
	}
	if pos.YearInRow >= l.LinearYears {
		pos.Segment = Turn
		degrees := 180 * (pos.YearInRow - l.LinearYears) * l.DistancePerYear / l.CentreArcLength
		pos.Angle = math.Pi * degrees / 180
	}
	return pos, nil
}

func (l *Layout) checkYear(year float64) error {
	if err := errors.ValidateFinite("year", year); err != nil {
		return errors.Wrap(errors.ErrCodeYearOutOfRange, err, "invalid year")
	}
	if year < l.params.Epoch {
		return errors.New(errors.ErrCodeYearOutOfRange, "year %g is before the epoch %g", year, l.params.Epoch)
	}
	if year > l.LastYear() {
		return errors.New(errors.ErrCodeYearOutOfRange, "year %g is after the last drawable year %g", year, l.LastYear())
	}
	return nil
}

// Point maps year onto the snake centerline, displaced by offset tracks along
// the path normal (see [Params.TrackSpacing]).
func (l *Layout) Point(year, offset float64) (Point, error) {
	pos, err := l.Locate(year)
	if err != nil {
		return Point{}, err
	}
	if err := errors.ValidateFinite("offset", offset); err != nil {
		return Point{}, err
	}
	return l.point(pos, offset), nil
}

func (l *Layout) point(pos Position, offset float64) Point {
	p := l.centre(pos)
	if d := offset * l.params.TrackSpacing; d != 0 {
		p = p.Add(l.normal(pos).Scale(d))
	}
	return p
}

func (l *Layout) centre(pos Position) Point {
	dir := float64(pos.Direction)
	x := l.params.Margin + l.ExteriorRadius
	y := l.params.Margin + l.params.RowHeight/2 + float64(pos.Row)*l.RowPitch()
	if pos.Direction < 0 {
		x += l.LinearLength
	}

	if pos.Segment == Straight {
		return Point{x + pos.YearInRow*l.DistancePerYear*dir, y}
	}

	cx := x + l.LinearLength*dir
	cy := y + l.CentreRadius
	return Point{
		X: cx + math.Sin(pos.Angle)*l.CentreRadius*dir,
		Y: cy - math.Cos(pos.Angle)*l.CentreRadius,
	}
}

// Tangent returns the unit direction of travel at year.
func (l *Layout) Tangent(year float64) (Point, error) {
	pos, err := l.Locate(year)
	if err != nil {
		return Point{}, err
	}
	return tangent(pos), nil
}

// Normal returns the unit normal on the left-hand side of travel at year.
// It is continuous along the whole snake, so a positive offset stays on the
// same side of the path through every turn: above even rows, below odd rows.
func (l *Layout) Normal(year float64) (Point, error) {
	pos, err := l.Locate(year)
	if err != nil {
		return Point{}, err
	}
	return l.normal(pos), nil
}

func (l *Layout) normal(pos Position) Point {
	t := tangent(pos)
	return Point{t.Y, -t.X}
}

func tangent(pos Position) Point {
	dir := float64(pos.Direction)
	if pos.Segment == Straight {
		return Point{dir, 0}
	}
	return Point{dir * math.Cos(pos.Angle), math.Sin(pos.Angle)}
}

// RowStart returns the first year of row r.
func (l *Layout) RowStart(r int) float64 {
	return l.params.Epoch + float64(r)*YearsPerRow
}

// TurnStart returns the year at which row r leaves its straight segment.
func (l *Layout) TurnStart(r int) float64 {
	return l.RowStart(r) + l.LinearYears
}
