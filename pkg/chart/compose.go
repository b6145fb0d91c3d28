package chart

import (
	"fmt"

	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
)

// Renderer builds the layout and scene renderer the chart describes.
func (c *Chart) Renderer() (*scene.Renderer, error) {
	l, err := layout.New(c.Layout)
	if err != nil {
		return nil, err
	}
	return scene.NewRenderer(l, c.Style), nil
}

// Items returns how many entries the chart declares, before expanding
// marker and label ranges.
func (c *Chart) Items() int {
	return len(c.Tracks) + len(c.Timelines) + len(c.Markers) + len(c.Labels)
}

// Compose draws the chart into a new scene. Errors name the failing entry.
func (c *Chart) Compose(r *scene.Renderer) (*scene.Scene, error) {
	s := scene.New()

	for i, t := range c.Tracks {
		if err := r.Track(s, t.Offset, t.Width, t.Color); err != nil {
			return nil, wrap(err, "track %d", i+1)
		}
	}

	for i, tl := range c.Timelines {
		if err := c.drawRange(r, s, tl); err != nil {
			name := tl.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, wrap(err, "timeline %s", name)
		}
	}

	for i, m := range c.Markers {
		years, err := m.years()
		if err != nil {
			return nil, err
		}
		for _, y := range years {
			for _, off := range m.offsets() {
				if err := r.Marker(s, y, off); err != nil {
					return nil, wrap(err, "marker set %d", i+1)
				}
			}
		}
	}

	for i, l := range c.Labels {
		years, err := l.years()
		if err != nil {
			return nil, err
		}
		for _, y := range years {
			if err := r.Label(s, y, l.Offset); err != nil {
				return nil, wrap(err, "label set %d", i+1)
			}
		}
	}

	return s, nil
}

func (c *Chart) drawRange(r *scene.Renderer, s *scene.Scene, tl Range) error {
	h := tl.Height
	if h == 0 {
		h = c.Layout.RowHeight
	}
	if tl.Bordered != nil && !*tl.Bordered {
		color := tl.Color
		if color == "" {
			color = c.Style.FillColor
		}
		return r.Capsule(s, tl.From, tl.To, h, tl.Offset, color)
	}
	if tl.Color != "" {
		return r.TimelineColor(s, tl.From, tl.To, h, tl.Offset, tl.Color)
	}
	return r.Timeline(s, tl.From, tl.To, h, tl.Offset)
}

// wrap adds context to err while keeping its code.
func wrap(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidChart
	}
	return errors.Wrap(code, err, format, args...)
}
