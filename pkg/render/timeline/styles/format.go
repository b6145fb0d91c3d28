package styles

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
	"strings"
)

// FormatNumber prints v with at most precision decimals and no trailing
// zeros. Negative zero prints as "0".
func FormatNumber(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', max(precision, 0), 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatYear returns the display text of a year. Whole years print without
// decimals; fractional years keep up to two.
func FormatYear(year float64) string {
	if year == math.Trunc(year) {
		return strconv.FormatFloat(year, 'f', 0, 64)
	}
	return FormatNumber(year, 2)
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
