package chart

import (
	"encoding/json"

	"github.com/matzehuels/timesnake/pkg/cache"
	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/styles"
)

// MaxElements caps the number of markers and labels a chart may expand to.
const MaxElements = 100_000

// Chart describes one drawing: the snake geometry, the style and what to draw
// on it. Tracks are drawn first, then timelines, markers and labels, each in
// declaration order.
type Chart struct {
	Title     string        `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Layout    layout.Params `json:"layout" toml:"layout" yaml:"layout"`
	Style     styles.Style  `json:"style" toml:"style" yaml:"style"`
	Tracks    []Track       `json:"tracks,omitempty" toml:"tracks" yaml:"tracks,omitempty"`
	Timelines []Range       `json:"timelines,omitempty" toml:"timelines" yaml:"timelines,omitempty"`
	Markers   []MarkerSet   `json:"markers,omitempty" toml:"markers" yaml:"markers,omitempty"`
	Labels    []LabelSet    `json:"labels,omitempty" toml:"labels" yaml:"labels,omitempty"`
}

// Range is a timeline from one year to another. Without a color it is drawn
// as a bordered capsule in the style's fill color; Bordered=false draws a
// single capsule in Color instead.
type Range struct {
	Name   string  `json:"name,omitempty" toml:"name" yaml:"name,omitempty"`
	From   float64 `json:"from" toml:"from" yaml:"from"`
	To     float64 `json:"to" toml:"to" yaml:"to"`
	// Height is the capsule width across the path. Zero means the row height.
	Height float64 `json:"height,omitempty" toml:"height" yaml:"height,omitempty"`
	Offset float64 `json:"offset,omitempty" toml:"offset" yaml:"offset,omitempty"`
	Color  string  `json:"color,omitempty" toml:"color" yaml:"color,omitempty"`
	// Bordered defaults to true.
	Bordered *bool `json:"bordered,omitempty" toml:"bordered" yaml:"bordered,omitempty"`
}

// MarkerSet places a dot on every listed year and on every Every-th year from
// From to To inclusive, once per offset.
type MarkerSet struct {
	Years   []float64 `json:"years,omitempty" toml:"years" yaml:"years,omitempty"`
	From    float64   `json:"from,omitempty" toml:"from" yaml:"from,omitempty"`
	To      float64   `json:"to,omitempty" toml:"to" yaml:"to,omitempty"`
	Every   float64   `json:"every,omitempty" toml:"every" yaml:"every,omitempty"`
	Offsets []float64 `json:"offsets,omitempty" toml:"offsets" yaml:"offsets,omitempty"`
}

// LabelSet writes the year above its row for every listed year and every
// Every-th year from From to To inclusive.
type LabelSet struct {
	Years  []float64 `json:"years,omitempty" toml:"years" yaml:"years,omitempty"`
	From   float64   `json:"from,omitempty" toml:"from" yaml:"from,omitempty"`
	To     float64   `json:"to,omitempty" toml:"to" yaml:"to,omitempty"`
	Every  float64   `json:"every,omitempty" toml:"every" yaml:"every,omitempty"`
	Offset float64   `json:"offset,omitempty" toml:"offset" yaml:"offset,omitempty"`
}

// Track is a thin stroke along the whole visible snake.
type Track struct {
	Offset float64 `json:"offset,omitempty" toml:"offset" yaml:"offset,omitempty"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Color  string  `json:"color" toml:"color" yaml:"color"`
}

// New returns an empty chart with the default layout and style.
func New() *Chart {
	return &Chart{Layout: layout.DefaultParams(), Style: styles.Default()}
}

func (m MarkerSet) years() ([]float64, error) { return expand(m.Years, m.From, m.To, m.Every) }
func (l LabelSet) years() ([]float64, error)  { return expand(l.Years, l.From, l.To, l.Every) }

func (m MarkerSet) offsets() []float64 {
	if len(m.Offsets) == 0 {
		return []float64{0}
	}
	return m.Offsets
}

// expand lists explicit years followed by the stepped range, if one is set.
func expand(explicit []float64, from, to, every float64) ([]float64, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"from", from}, {"to", to}, {"every", every}} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "invalid range")
		}
	}

	out := append([]float64(nil), explicit...)
	if from == 0 && to == 0 {
		return out, nil
	}
	if every == 0 {
		every = 1
	}
	if every < 0 {
		return nil, errors.New(errors.ErrCodeInvalidChart, "step must be positive, got %g", every)
	}
	if to < from {
		return nil, errors.New(errors.ErrCodeInvalidRange, "range ends before it starts: %g..%g", from, to)
	}
	n := (to-from)/every + 1
	if n > MaxElements {
		return nil, errors.New(errors.ErrCodeInvalidChart, "range %g..%g every %g expands to more than %d years", from, to, every, MaxElements)
	}
	// Bounded by n as well: a step below the precision of from never moves y.
	for k := 0; float64(k) < n; k++ {
		y := from + float64(k)*every
		if y > to {
			break
		}
		out = append(out, y)
	}
	return out, nil
}

// Validate checks the chart without drawing it. Year ranges are checked
// against the layout when the chart is composed.
func (c *Chart) Validate() error {
	if _, err := layout.New(c.Layout); err != nil {
		return err
	}
	if err := c.Style.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidChart, err, "style")
	}

	for i, r := range c.Timelines {
		if err := validateRange(r); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "timeline %d", i+1)
		}
	}
	for i, t := range c.Tracks {
		if err := errors.ValidateColor(t.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "track %d", i+1)
		}
	}

	total := 0
	for i, m := range c.Markers {
		ys, err := m.years()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "marker set %d", i+1)
		}
		total += len(ys) * len(m.offsets())
	}
	for i, l := range c.Labels {
		ys, err := l.years()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "label set %d", i+1)
		}
		total += len(ys)
	}
	if total > MaxElements {
		return errors.New(errors.ErrCodeInvalidChart, "chart expands to %d markers and labels (max %d)", total, MaxElements)
	}
	return nil
}

func validateRange(r Range) error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"from", r.From}, {"to", r.To}, {"height", r.Height}, {"offset", r.Offset}} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if r.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "height must not be negative, got %g", r.Height)
	}
	if r.Color != "" {
		return errors.ValidateColor(r.Color)
	}
	return nil
}

// Hash returns a content hash that changes whenever the drawing would.
func (c *Chart) Hash() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash chart")
	}
	return cache.Hash(data), nil
}
