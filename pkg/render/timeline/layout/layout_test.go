package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/timesnake/pkg/errors"
)

const eps = 1e-9

func TestNewDerivesConstants(t *testing.T) {
	l, err := New(DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 285.0, l.ExteriorRadius)
	assert.Equal(t, 160.0, l.CentreRadius)
	assert.Equal(t, 35.0, l.InteriorRadius)
	assert.Equal(t, 3206.0, l.LinearLength)
	assert.InDelta(t, 160*math.Pi, l.CentreArcLength, eps)
	assert.InDelta(t, l.CentreArcLength+l.LinearLength, l.TotalLength, eps)
	assert.InDelta(t, l.TotalLength/100, l.DistancePerYear, eps)
	assert.InDelta(t, 86.4464, l.LinearYears, 1e-3)

	assert.Equal(t, 3840.0, l.Width())
	assert.Equal(t, 3514.0, l.Height())
	assert.Equal(t, 2100.0, l.LastYear())
	assert.Equal(t, 320.0, l.RowPitch())
}

func TestNewRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"row narrower than turn", func(p *Params) { p.CanvasWidth = 600 }},
		{"zero linear length", func(p *Params) { p.CanvasWidth = 2*p.Margin + 2*(p.RowHeight+p.RowGap/2) }},
		{"zero row height", func(p *Params) { p.RowHeight = 0 }},
		{"negative row gap", func(p *Params) { p.RowGap = -1 }},
		{"negative margin", func(p *Params) { p.Margin = -5 }},
		{"no rows", func(p *Params) { p.Rows = 0 }},
		{"zero step", func(p *Params) { p.Step = 0 }},
		{"step below minimum", func(p *Params) { p.Step = 1e-12 }},
		{"NaN margin", func(p *Params) { p.Margin = math.NaN() }},
		{"infinite width", func(p *Params) { p.CanvasWidth = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			l, err := New(p)
			assert.Nil(t, l)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout), "got %v", err)
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	p := DefaultParams()
	p.CanvasWidth = 100
	assert.Panics(t, func() { MustNew(p) })
}

func TestWithDefaults(t *testing.T) {
	p := Params{CanvasWidth: 2000, TrackSpacing: 8}.WithDefaults()
	assert.Equal(t, 2000.0, p.CanvasWidth)
	assert.Equal(t, 8.0, p.TrackSpacing)
	assert.Equal(t, DefaultRowHeight, p.RowHeight)
	assert.Equal(t, DefaultEpoch, p.Epoch)
	assert.Equal(t, DefaultRows, p.Rows)
	assert.Equal(t, 0.0, p.Margin)
}
