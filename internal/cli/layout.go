package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/styles"
)

// layoutCommand creates the layout command, which prints the snake geometry
// a chart's layout parameters produce.
func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [chart]",
		Short: "Print the layout parameters derived from a chart",
		Long: `Print the layout parameters derived from a chart: turn radii, the length
of each row's straight segment, the distance covered per year and the canvas
size. Without a chart argument the reference chart is used.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeChart(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, _, err := loadChart(args)
			if err != nil {
				return err
			}
			l, err := layout.New(ch.Layout)
			if err != nil {
				return err
			}
			if asJSON {
				return writeLayoutJSON(c.out, l)
			}
			_, err = fmt.Fprintln(c.out, layoutTable(l))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

type layoutSummary struct {
	Params   layout.Params  `json:"params"`
	Derived  *layout.Layout `json:"derived"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	LastYear float64        `json:"last_year"`
}

func writeLayoutJSON(w io.Writer, l *layout.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(layoutSummary{
		Params:   l.Params(),
		Derived:  l,
		Width:    l.Width(),
		Height:   l.Height(),
		LastYear: l.LastYear(),
	})
}

// layoutTable renders the inputs and derived values as a two-column table.
func layoutTable(l *layout.Layout) string {
	p := l.Params()
	num := func(v float64) string { return styles.FormatNumber(v, 4) }

	rows := [][]string{
		{"Margin", num(p.Margin)},
		{"Row height", num(p.RowHeight)},
		{"Row gap", num(p.RowGap)},
		{"Canvas width", num(p.CanvasWidth)},
		{"Epoch", styles.FormatYear(p.Epoch)},
		{"Rows", fmt.Sprint(p.Rows)},
		{"Track spacing", num(p.TrackSpacing)},
		{"Sampling step", num(p.Step)},
		{"Exterior radius", num(l.ExteriorRadius)},
		{"Centre radius", num(l.CentreRadius)},
		{"Interior radius", num(l.InteriorRadius)},
		{"Linear length", num(l.LinearLength)},
		{"Centre arc length", num(l.CentreArcLength)},
		{"Total length", num(l.TotalLength)},
		{"Distance per year", num(l.DistancePerYear)},
		{"Linear years", num(l.LinearYears)},
		{"Turn years", num(100 - l.LinearYears)},
		{"Canvas", fmt.Sprintf("%s x %s", num(l.Width()), num(math.Ceil(l.Height())))},
		{"Years", fmt.Sprintf("%s to %s", styles.FormatYear(l.Epoch()), styles.FormatYear(l.LastYear()))},
	}

	const inputs = 8
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Parameter", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 && row >= inputs:
				return cell.Foreground(colorTeal)
			case col == 1:
				return cell.Foreground(colorWhite)
			}
			return cell.Foreground(colorGray)
		}).
		Render()
}
