package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/styles"
)

// locateCommand creates the locate command, which maps a year onto the snake.
func (c *CLI) locateCommand() *cobra.Command {
	var (
		offset float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:               "locate <year> [chart]",
		Short:             "Show where a year lies on the snake",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeChart(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "year must be a number, got %q", args[0])
			}
			ch, _, err := loadChart(args[1:])
			if err != nil {
				return err
			}
			l, err := layout.New(ch.Layout)
			if err != nil {
				return err
			}
			loc, err := locate(l, year, offset)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(loc)
			}
			c.printLocation(loc)
			return nil
		},
	}

	cmd.Flags().Float64Var(&offset, "offset", 0, "track offset in multiples of the layout's track spacing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

type location struct {
	layout.Position
	Offset float64      `json:"offset"`
	Point  layout.Point `json:"point"`
	Normal layout.Point `json:"normal"`
}

func locate(l *layout.Layout, year, offset float64) (location, error) {
	pos, err := l.Locate(year)
	if err != nil {
		return location{}, err
	}
	pt, err := l.Point(year, offset)
	if err != nil {
		return location{}, err
	}
	n, err := l.Normal(year)
	if err != nil {
		return location{}, err
	}
	return location{Position: pos, Offset: offset, Point: pt, Normal: n}, nil
}

func (c *CLI) printLocation(loc location) {
	num := func(v float64) string { return styles.FormatNumber(v, 2) }

	dir := "left to right"
	if loc.Direction < 0 {
		dir = "right to left"
	}
	segment := loc.Segment.String()
	if loc.Segment == layout.Turn {
		segment = fmt.Sprintf("turn, %s° swept", num(loc.Angle*180/math.Pi))
	}

	c.printKeyValue("Year", StyleNumber.Render(styles.FormatYear(loc.Year)))
	c.printKeyValue("Row", fmt.Sprintf("%d (%s)", loc.Row, dir))
	c.printKeyValue("In row", num(loc.YearInRow)+" years")
	c.printKeyValue("Segment", segment)
	c.printKeyValue("Point", fmt.Sprintf("%s, %s", num(loc.Point.X), num(loc.Point.Y)))
}
