package styles

import (
	"math"
	"testing"

	"github.com/matzehuels/timesnake/pkg/errors"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{317, 2, "317"},
		{317.5, 2, "317.5"},
		{2171.3274, 2, "2171.33"},
		{2171.3274, 0, "2171"},
		{-0.0001, 2, "0"},
		{-12.25, 3, "-12.25"},
		{0.1, -1, "0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.precision); got != tt.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestFormatYear(t *testing.T) {
	tests := []struct {
		year float64
		want string
	}{
		{1066, "1066"},
		{2024, "2024"},
		{1914.5, "1914.5"},
		{1000.126, "1000.13"},
	}
	for _, tt := range tests {
		if got := FormatYear(tt.year); got != tt.want {
			t.Errorf("FormatYear(%v) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`<Magna "Carta" & co>`); got != "&lt;Magna &#34;Carta&#34; &amp; co&gt;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestWithDefaultsKeepsOverrides(t *testing.T) {
	s := Style{FillColor: "#3366cc", FontSize: 20}.WithDefaults()
	if s.FillColor != "#3366cc" || s.FontSize != 20 {
		t.Errorf("overrides lost: %+v", s)
	}
	if s.BorderColor != "black" || s.BorderWidth != 5 || s.FontFamily != "Arial" {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Style)
		code   errors.Code
	}{
		{"bad fill", func(s *Style) { s.FillColor = `red"/><script>` }, errors.ErrCodeInvalidColor},
		{"bad background", func(s *Style) { s.Background = "#12" }, errors.ErrCodeInvalidColor},
		{"negative border", func(s *Style) { s.BorderWidth = -1 }, errors.ErrCodeInvalidInput},
		{"NaN font size", func(s *Style) { s.FontSize = math.NaN() }, errors.ErrCodeInvalidInput},
		{"empty font", func(s *Style) { s.FontFamily = "" }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}
