package layout

import (
	"math"

	"github.com/matzehuels/timesnake/pkg/errors"
)

// Reference values for a 1000–2100 timeline on a 3840px wide canvas.
const (
	DefaultMargin      = 32.0
	DefaultRowHeight   = 250.0
	DefaultRowGap      = 70.0
	DefaultCanvasWidth = 3840.0
	DefaultEpoch       = 1000.0
	DefaultRows        = 11
	DefaultStep        = 0.25

	// MinStep is the finest sampling resolution accepted, in years.
	MinStep = 0.001
)

// YearsPerRow is the span of one row of the snake.
const YearsPerRow = 100.0

// Params holds the top-level inputs from which a [Layout] is derived.
type Params struct {
	Margin      float64 `json:"margin" toml:"margin" yaml:"margin"`
	RowHeight   float64 `json:"row_height" toml:"row_height" yaml:"row_height"`
	RowGap      float64 `json:"row_gap" toml:"row_gap" yaml:"row_gap"`
	CanvasWidth float64 `json:"canvas_width" toml:"canvas_width" yaml:"canvas_width"`
	Epoch       float64 `json:"epoch" toml:"epoch" yaml:"epoch"`
	Rows        int     `json:"rows" toml:"rows" yaml:"rows"`

	// TrackSpacing is the perpendicular distance between offset tracks.
	// Zero keeps every track on the centerline.
	TrackSpacing float64 `json:"track_spacing,omitempty" toml:"track_spacing" yaml:"track_spacing,omitempty"`

	// Step is the sampling resolution in years used by [Layout.Sample].
	Step float64 `json:"step,omitempty" toml:"step" yaml:"step,omitempty"`
}

// DefaultParams returns the reference parameters.
func DefaultParams() Params {
	return Params{
		Margin:      DefaultMargin,
		RowHeight:   DefaultRowHeight,
		RowGap:      DefaultRowGap,
		CanvasWidth: DefaultCanvasWidth,
		Epoch:       DefaultEpoch,
		Rows:        DefaultRows,
		Step:        DefaultStep,
	}
}

// WithDefaults fills zero-valued fields that have a sensible default.
// Margin and TrackSpacing are legitimately zero and are left alone.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p.RowHeight == 0 {
		p.RowHeight = d.RowHeight
	}
	if p.RowGap == 0 {
		p.RowGap = d.RowGap
	}
	if p.CanvasWidth == 0 {
		p.CanvasWidth = d.CanvasWidth
	}
	if p.Epoch == 0 {
		p.Epoch = d.Epoch
	}
	if p.Rows == 0 {
		p.Rows = d.Rows
	}
	if p.Step == 0 {
		p.Step = d.Step
	}
	return p
}

// Layout is the immutable geometry of a snake timeline. It is computed once
// by [New] and is safe for concurrent use.
type Layout struct {
	params Params

	ExteriorRadius  float64 `json:"exterior_radius"`
	CentreRadius    float64 `json:"centre_radius"`
	InteriorRadius  float64 `json:"interior_radius"`
	LinearLength    float64 `json:"linear_length"`
	CentreArcLength float64 `json:"centre_arc_length"`
	TotalLength     float64 `json:"total_length"`
	DistancePerYear float64 `json:"distance_per_year"`
	LinearYears     float64 `json:"linear_years"`
}

// New derives a Layout from p. Parameters whose geometry is undefined are
// rejected with an INVALID_LAYOUT error: a row narrower than the turn
// diameter, or a century whose straight part leaves no room for the turn.
func New(p Params) (*Layout, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	l := &Layout{params: p}
	l.ExteriorRadius = p.RowHeight + p.RowGap/2
	l.CentreRadius = l.ExteriorRadius - p.RowHeight/2
	l.InteriorRadius = p.RowGap / 2
	l.LinearLength = p.CanvasWidth - p.Margin*2 - l.ExteriorRadius*2
	l.CentreArcLength = math.Pi * l.CentreRadius
	l.TotalLength = l.CentreArcLength + l.LinearLength
	l.DistancePerYear = l.TotalLength / YearsPerRow
	l.LinearYears = l.LinearLength / l.DistancePerYear

	if l.LinearLength <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"canvas width %g leaves no straight segment (linear length %g): rows must be wider than the turn diameter %g",
			p.CanvasWidth, l.LinearLength, l.ExteriorRadius*2)
	}
	if l.LinearYears >= YearsPerRow {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"straight segment spans %g years, leaving no years for the turn", l.LinearYears)
	}
	return l, nil
}

// MustNew is like [New] but panics on invalid parameters.
func MustNew(p Params) *Layout {
	l, err := New(p)
	if err != nil {
		panic(err)
	}
	return l
}

func (p Params) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"margin", p.Margin},
		{"row height", p.RowHeight},
		{"row gap", p.RowGap},
		{"canvas width", p.CanvasWidth},
		{"epoch", p.Epoch},
		{"track spacing", p.TrackSpacing},
		{"step", p.Step},
	} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLayout, err, "invalid %s", f.name)
		}
	}
	switch {
	case p.Margin < 0:
		return errors.New(errors.ErrCodeInvalidLayout, "margin must not be negative, got %g", p.Margin)
	case p.RowHeight <= 0:
		return errors.New(errors.ErrCodeInvalidLayout, "row height must be positive, got %g", p.RowHeight)
	case p.RowGap <= 0:
		return errors.New(errors.ErrCodeInvalidLayout, "row gap must be positive, got %g", p.RowGap)
	case p.Rows <= 0:
		return errors.New(errors.ErrCodeInvalidLayout, "rows must be positive, got %d", p.Rows)
	case p.Step < MinStep:
		return errors.New(errors.ErrCodeInvalidLayout, "sampling step must be at least %g years, got %g", MinStep, p.Step)
	}
	return nil
}

// Params returns the inputs the layout was derived from.
func (l *Layout) Params() Params { return l.params }

// Epoch returns the year mapped to the start of the first row.
func (l *Layout) Epoch() float64 { return l.params.Epoch }

// LastYear returns the latest year inside the drawable range. It maps to the
// end of the last row's turn.
func (l *Layout) LastYear() float64 { return l.params.Epoch + YearsPerRow*float64(l.params.Rows) }

// Width returns the canvas width.
func (l *Layout) Width() float64 { return l.params.CanvasWidth }

// Height returns the canvas height needed to hold every row.
func (l *Layout) Height() float64 {
	rows := float64(l.params.Rows)
	return l.params.Margin*2 + l.params.RowHeight*rows + l.params.RowGap*(rows-1)
}

// RowHeight returns the height of one row.
func (l *Layout) RowHeight() float64 { return l.params.RowHeight }

// RowPitch returns the vertical distance between two consecutive row centerlines.
func (l *Layout) RowPitch() float64 { return l.params.RowHeight + l.params.RowGap }
