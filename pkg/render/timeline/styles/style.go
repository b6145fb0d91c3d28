package styles

import "github.com/matzehuels/timesnake/pkg/errors"

// Style holds the fixed visual constants of a timeline drawing.
type Style struct {
	BorderColor  string  `json:"border_color" toml:"border_color" yaml:"border_color"`
	FillColor    string  `json:"fill_color" toml:"fill_color" yaml:"fill_color"`
	BorderWidth  float64 `json:"border_width" toml:"border_width" yaml:"border_width"`
	LabelGap     float64 `json:"label_gap" toml:"label_gap" yaml:"label_gap"`
	MarkerRadius float64 `json:"marker_radius" toml:"marker_radius" yaml:"marker_radius"`
	MarkerColor  string  `json:"marker_color" toml:"marker_color" yaml:"marker_color"`
	FontFamily   string  `json:"font_family" toml:"font_family" yaml:"font_family"`
	FontSize     float64 `json:"font_size" toml:"font_size" yaml:"font_size"`
	TextColor    string  `json:"text_color" toml:"text_color" yaml:"text_color"`
	// Background fills the canvas behind everything when set.
	Background string `json:"background,omitempty" toml:"background" yaml:"background,omitempty"`
}

// Default returns the reference style: an orange timeline with a black
// border, black markers and 14px Arial labels.
func Default() Style {
	return Style{
		BorderColor:  "black",
		FillColor:    "#f05010",
		BorderWidth:  5,
		LabelGap:     10,
		MarkerRadius: 2,
		MarkerColor:  "black",
		FontFamily:   "Arial",
		FontSize:     14,
		TextColor:    "black",
	}
}

// WithDefaults fills every unset field from [Default].
func (s Style) WithDefaults() Style {
	d := Default()
	if s.BorderColor == "" {
		s.BorderColor = d.BorderColor
	}
	if s.FillColor == "" {
		s.FillColor = d.FillColor
	}
	if s.BorderWidth == 0 {
		s.BorderWidth = d.BorderWidth
	}
	if s.LabelGap == 0 {
		s.LabelGap = d.LabelGap
	}
	if s.MarkerRadius == 0 {
		s.MarkerRadius = d.MarkerRadius
	}
	if s.MarkerColor == "" {
		s.MarkerColor = d.MarkerColor
	}
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = d.FontSize
	}
	if s.TextColor == "" {
		s.TextColor = d.TextColor
	}
	return s
}

// Validate checks colors and sizes before they reach any markup.
func (s Style) Validate() error {
	for _, c := range []string{s.BorderColor, s.FillColor, s.MarkerColor, s.TextColor} {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	if s.Background != "" {
		if err := errors.ValidateColor(s.Background); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"border width", s.BorderWidth},
		{"label gap", s.LabelGap},
		{"marker radius", s.MarkerRadius},
		{"font size", s.FontSize},
	} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return err
		}
		if f.v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must not be negative, got %g", f.name, f.v)
		}
	}
	if s.FontFamily == "" || len(s.FontFamily) > 128 {
		return errors.New(errors.ErrCodeInvalidInput, "font family must be 1-128 characters")
	}
	return nil
}
