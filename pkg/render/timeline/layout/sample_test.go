package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/timesnake/pkg/errors"
)

func TestSampleEndpoints(t *testing.T) {
	l := newDefault(t)
	tests := []struct {
		name     string
		from, to float64
		want     int
	}{
		{"whole years", 1066, 1067, 5},
		{"fractional start", 1065.9, 1067, 6},
		{"shorter than a step", 1066.1, 1066.2, 2},
		{"across a turn", 1080, 1120, 161},
		{"single year", 1500, 1500, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := l.Sample(tt.from, tt.to, 0)
			require.NoError(t, err)
			require.Len(t, pts, tt.want)
			assert.Equal(t, mustPoint(t, l, tt.from, 0), pts[0])
			assert.Equal(t, mustPoint(t, l, tt.to, 0), pts[len(pts)-1])
		})
	}
}

func TestSampleFollowsStep(t *testing.T) {
	p := DefaultParams()
	p.Step = 1
	l, err := New(p)
	require.NoError(t, err)

	pts, err := l.Sample(1000.5, 1003, 0)
	require.NoError(t, err)
	want := []Point{
		mustPoint(t, l, 1000.5, 0),
		mustPoint(t, l, 1001, 0),
		mustPoint(t, l, 1002, 0),
		mustPoint(t, l, 1003, 0),
	}
	assert.Equal(t, want, pts)
}

func TestSampleStaysNearPath(t *testing.T) {
	l := newDefault(t)
	pts, err := l.Sample(1050, 1250, 0)
	require.NoError(t, err)
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, pts[i-1].Dist(pts[i]), l.DistancePerYear*l.Params().Step+1e-9)
	}
}

func TestSampleErrors(t *testing.T) {
	l := newDefault(t)

	_, err := l.Sample(1500, 1400, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)

	// Order is checked before the domain.
	_, err = l.Sample(1400, 900, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)

	_, err = l.Sample(900, 1100, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeYearOutOfRange), "got %v", err)

	_, err = l.Sample(1900, 2200, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeYearOutOfRange), "got %v", err)
}

func TestSampleIsDeterministic(t *testing.T) {
	l := newDefault(t)
	a, err := l.Sample(1066, 2024, -1)
	require.NoError(t, err)
	b, err := l.Sample(1066, 2024, -1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCenterline(t *testing.T) {
	l := newDefault(t)
	pts, err := l.Centerline(0)
	require.NoError(t, err)
	assert.Equal(t, mustPoint(t, l, 1000, 0), pts[0])
	last := pts[len(pts)-1]
	assert.LessOrEqual(t, last.Y, l.Height())
	assert.Equal(t, mustPoint(t, l, l.TurnStart(DefaultRows-1), 0), last)
}

func TestSampleCapsPointCount(t *testing.T) {
	p := DefaultParams()
	p.Step = MinStep
	l, err := New(p)
	require.NoError(t, err)

	_, err = l.Sample(1000, 2100, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)
	_, err = l.Centerline(0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)

	pts, err := l.Sample(1000, 1100, 0)
	require.NoError(t, err)
	assert.Len(t, pts, 100_001)
}
