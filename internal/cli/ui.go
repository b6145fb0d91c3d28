package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
)

// Palette follows the reference chart: teal for activity, the timeline
// orange for numbers.
var (
	colorTeal   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorOrange = lipgloss.Color("202")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue renders values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleNumber renders years and counts.
	StyleNumber = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleSpinner = lipgloss.NewStyle().Foreground(colorTeal)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	markSuccess = "✓"
	markInfo    = "›"
	markFile    = "→"
)

func (c *CLI) printSuccess(format string, args ...any) {
	fmt.Fprintln(c.out, styleSuccess.Render(markSuccess)+" "+fmt.Sprintf(format, args...))
}

func (c *CLI) printInfo(format string, args ...any) {
	fmt.Fprintln(c.out, styleInfo.Render(markInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func (c *CLI) printDetail(format string, args ...any) {
	fmt.Fprintln(c.out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written file.
func (c *CLI) printFile(path string) {
	fmt.Fprintln(c.out, "  "+StyleDim.Render(markFile)+" "+StyleValue.Render(path))
}

func (c *CLI) printKeyValue(key, value string) {
	fmt.Fprintln(c.out, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints what a render drew.
func (c *CLI) printStats(counts map[scene.Kind]int, rows int, cached bool) {
	fmt.Fprintln(c.out, "  "+statsLine(counts, rows, cached))
}

// statsLine summarises a scene, e.g. "11 rows · 3 strokes · 0 dots ·
// 1102 labels · fresh".
func statsLine(counts map[scene.Kind]int, rows int, cached bool) string {
	parts := []string{
		plural(rows, "row"),
		plural(counts[scene.KindStroke], "stroke"),
		plural(counts[scene.KindCircle], "dot"),
		plural(counts[scene.KindText], "label"),
	}
	status := styleInfo.Render("fresh")
	if cached {
		status = styleSuccess.Render("cached")
	}
	return StyleDim.Render(strings.Join(parts, " · ")) + StyleDim.Render(" · ") + status
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
