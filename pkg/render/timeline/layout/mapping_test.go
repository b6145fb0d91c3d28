package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/timesnake/pkg/errors"
)

func newDefault(t *testing.T) *Layout {
	t.Helper()
	l, err := New(DefaultParams())
	require.NoError(t, err)
	return l
}

func mustPoint(t *testing.T, l *Layout, year, offset float64) Point {
	t.Helper()
	p, err := l.Point(year, offset)
	require.NoError(t, err)
	return p
}

func assertNear(t *testing.T, want, got Point, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x of %v vs %v", want, got)
	assert.InDelta(t, want.Y, got.Y, delta, "y of %v vs %v", want, got)
}

// The reference drawing uses a 3776 wide canvas in this scenario.
func TestPointReferenceScenario(t *testing.T) {
	p := DefaultParams()
	p.CanvasWidth = 3776
	l, err := New(p)
	require.NoError(t, err)

	start := mustPoint(t, l, 1000, 0)
	assert.Equal(t, Point{32 + 285, 32 + 125}, start)

	// 1100 is both the end of row 0's turn and the start of row 1.
	next := mustPoint(t, l, 1100, 0)
	assertNear(t, Point{start.X + l.LinearLength, start.Y + 320}, next, 1e-9)

	pos, err := l.Locate(1100 - 1e-9)
	require.NoError(t, err)
	require.Equal(t, Turn, pos.Segment)
	assertNear(t, next, l.point(pos, 0), 1e-6)
}

func TestPointContinuousAtTurnStart(t *testing.T) {
	l := newDefault(t)
	const e = 1e-7
	for r := 0; r < DefaultRows; r++ {
		join := l.TurnStart(r)
		before := mustPoint(t, l, join-e, 0)
		after := mustPoint(t, l, join+e, 0)
		assertNear(t, before, after, 1e-4)

		pb, _ := l.Locate(join - e)
		pa, _ := l.Locate(join + e)
		assert.Equal(t, Straight, pb.Segment, "row %d", r)
		assert.Equal(t, Turn, pa.Segment, "row %d", r)
	}
}

func TestPointContinuousAtRowBoundary(t *testing.T) {
	l := newDefault(t)
	const e = 1e-7
	for r := 1; r <= DefaultRows; r++ {
		boundary := l.RowStart(r)
		assertNear(t, mustPoint(t, l, boundary-e, 0), mustPoint(t, l, boundary, 0), 1e-4)
	}
}

func TestDirectionAlternates(t *testing.T) {
	l := newDefault(t)
	for r := 0; r < DefaultRows; r++ {
		a := mustPoint(t, l, l.RowStart(r)+10, 0)
		b := mustPoint(t, l, l.RowStart(r)+20, 0)
		if r%2 == 0 {
			assert.Greater(t, b.X, a.X, "row %d should run left to right", r)
		} else {
			assert.Less(t, b.X, a.X, "row %d should run right to left", r)
		}
		assert.Equal(t, a.Y, b.Y)

		pos, err := l.Locate(l.RowStart(r) + 10)
		require.NoError(t, err)
		assert.Equal(t, r, pos.Row)
		assert.Equal(t, 1-2*(r%2), pos.Direction)
	}
}

func TestRowsStackVertically(t *testing.T) {
	l := newDefault(t)
	for r := 0; r+1 < DefaultRows; r++ {
		maxY := math.Inf(-1)
		for y := l.RowStart(r); y < l.RowStart(r+1); y += 0.25 {
			maxY = math.Max(maxY, mustPoint(t, l, y, 0).Y)
		}
		nextRow := mustPoint(t, l, l.RowStart(r+1)+1, 0).Y
		assert.Less(t, maxY, nextRow, "row %d overlaps row %d", r, r+1)
	}
}

func TestTurnStaysOnArc(t *testing.T) {
	l := newDefault(t)
	pos, err := l.Locate(1095)
	require.NoError(t, err)
	require.Equal(t, Turn, pos.Segment)

	p := mustPoint(t, l, 1095, 0)
	centre := Point{32 + 285 + l.LinearLength, 32 + 125 + l.CentreRadius}
	assert.InDelta(t, l.CentreRadius, p.Dist(centre), 1e-9)
	assert.Greater(t, p.X, centre.X)
}

func TestPointOutOfRange(t *testing.T) {
	l := newDefault(t)
	for _, year := range []float64{999.99, -5, 2100.01, math.NaN(), math.Inf(1)} {
		_, err := l.Point(year, 0)
		assert.True(t, errors.Is(err, errors.ErrCodeYearOutOfRange), "year %v: %v", year, err)
	}
	_, err := l.Point(2100, 0)
	assert.NoError(t, err)
}

func TestLocateLastYear(t *testing.T) {
	l := newDefault(t)
	pos, err := l.Locate(l.LastYear())
	require.NoError(t, err)

	assert.Equal(t, DefaultRows-1, pos.Row)
	assert.Equal(t, Turn, pos.Segment)
	assert.Equal(t, 1, pos.Direction)
	assert.InDelta(t, YearsPerRow, pos.YearInRow, 1e-9)
	assert.InDelta(t, math.Pi, pos.Angle, 1e-9)

	// The end of the last turn, one row pitch below the last straight segment.
	p := mustPoint(t, l, l.LastYear(), 0)
	assert.InDelta(t, 32+285+l.LinearLength, p.X, 1e-6)
	assert.InDelta(t, 32+125+float64(DefaultRows)*l.RowPitch(), p.Y, 1e-6)
}

func TestOffsetWithoutSpacingIsCenterline(t *testing.T) {
	l := newDefault(t)
	for _, year := range []float64{1000, 1066.5, 1090, 1500} {
		assert.Equal(t, mustPoint(t, l, year, 0), mustPoint(t, l, year, 1))
		assert.Equal(t, mustPoint(t, l, year, 0), mustPoint(t, l, year, -1))
	}
}

func TestOffsetDisplacesAlongNormal(t *testing.T) {
	p := DefaultParams()
	p.TrackSpacing = 10
	l, err := New(p)
	require.NoError(t, err)

	// Even rows: positive offsets sit above the centerline.
	assertNear(t, mustPoint(t, l, 1050, 0).Add(Point{0, -10}), mustPoint(t, l, 1050, 1), eps)
	// Odd rows travel the other way, so the left side is below.
	assertNear(t, mustPoint(t, l, 1150, 0).Add(Point{0, 10}), mustPoint(t, l, 1150, 1), eps)

	for _, year := range []float64{1090, 1095, 1199} {
		c := mustPoint(t, l, year, 0)
		assert.InDelta(t, 10, c.Dist(mustPoint(t, l, year, 1)), 1e-9)
		assert.InDelta(t, 20, c.Dist(mustPoint(t, l, year, -2)), 1e-9)
	}
}

func TestNormalIsContinuous(t *testing.T) {
	l := newDefault(t)
	const e = 1e-7
	for r := 0; r < DefaultRows; r++ {
		for _, join := range []float64{l.TurnStart(r), l.RowStart(r + 1)} {
			a, err := l.Normal(join - e)
			require.NoError(t, err)
			b, err := l.Normal(join)
			require.NoError(t, err)
			assertNear(t, a, b, 1e-6)
		}
	}
}

func TestNormalIsPerpendicularToTangent(t *testing.T) {
	l := newDefault(t)
	for _, year := range []float64{1010, 1093, 1150, 1195} {
		n, err := l.Normal(year)
		require.NoError(t, err)
		tg, err := l.Tangent(year)
		require.NoError(t, err)
		assert.InDelta(t, 1, math.Hypot(n.X, n.Y), eps)
		assert.InDelta(t, 0, n.X*tg.X+n.Y*tg.Y, eps)
	}
}

func TestPointIsDeterministic(t *testing.T) {
	l := newDefault(t)
	for _, year := range []float64{1000, 1066.25, 1091.3, 1999.75} {
		a := mustPoint(t, l, year, 1)
		b := mustPoint(t, l, year, 1)
		assert.Equal(t, math.Float64bits(a.X), math.Float64bits(b.X))
		assert.Equal(t, math.Float64bits(a.Y), math.Float64bits(b.Y))
	}
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "straight", Straight.String())
	assert.Equal(t, "turn", Turn.String())
}
