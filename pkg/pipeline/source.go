package pipeline

import (
	"github.com/matzehuels/timesnake/pkg/chart"
)

// ResolveChart returns the chart a run draws: opts.Chart, else opts.Source
// decoded with opts.SourceFormat, else the reference chart.
func ResolveChart(opts Options) (*chart.Chart, error) {
	switch {
	case opts.Chart != nil:
		if err := opts.Chart.Validate(); err != nil {
			return nil, err
		}
		return opts.Chart, nil
	case len(opts.Source) > 0:
		return chart.Parse(opts.Source, opts.SourceFormat)
	default:
		return chart.Reference(), nil
	}
}
