package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/timesnake/pkg/cache"
	"github.com/matzehuels/timesnake/pkg/chart"
	"github.com/matzehuels/timesnake/pkg/observability"
	"github.com/matzehuels/timesnake/pkg/render/timeline/layout"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
)

// Runner executes the pipeline with artifact caching. Both the CLI and the
// server use it.
//
// The Runner holds no per-run state, so one Runner may serve concurrent
// Execute calls with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer means DefaultKeyer and a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs layout → compose → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	c, err := ResolveChart(opts)
	if err != nil {
		return nil, err
	}
	hash, err := c.Hash()
	if err != nil {
		return nil, err
	}
	result := &Result{Chart: c, ChartHash: hash}

	// Stage 1: Layout
	start := time.Now()
	l, err := r.Layout(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.Rows = l.Params().Rows
	result.Stats.LayoutTime = time.Since(start)

	opts.Logger.Debug("computed layout",
		"rows", result.Stats.Rows,
		"linear_years", l.LinearYears,
		"size", fmt.Sprintf("%gx%g", l.Width(), l.Height()))

	// Stage 2: Compose
	start = time.Now()
	s, err := r.Compose(ctx, c, l)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	result.Scene = s
	result.Stats.Elements = s.Len()
	result.Stats.ComposeTime = time.Since(start)

	opts.Logger.Info("composed chart",
		"elements", s.Len(),
		"duration", result.Stats.ComposeTime)

	// Stage 3: Render
	start = time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, c, hash, l, s, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout derives the chart's geometry.
func (r *Runner) Layout(ctx context.Context, c *chart.Chart) (*layout.Layout, error) {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, c.Layout.Rows)
	start := time.Now()
	l, err := layout.New(c.Layout)
	hooks.OnLayoutComplete(ctx, c.Layout.Rows, time.Since(start), err)
	return l, err
}

// Compose draws the chart on l.
func (r *Runner) Compose(ctx context.Context, c *chart.Chart, l *layout.Layout) (*scene.Scene, error) {
	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, c.Items())
	start := time.Now()
	s, err := c.Compose(scene.NewRenderer(l, c.Style))
	elements := 0
	if s != nil {
		elements = s.Len()
	}
	hooks.OnComposeComplete(ctx, elements, time.Since(start), err)
	return s, err
}

// RenderWithCacheInfo renders each requested format, serving what it can
// from the cache. It returns the formats that were cache hits.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *chart.Chart, chartHash string, l *layout.Layout, s *scene.Scene, opts Options) (map[string][]byte, []string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var hits []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if hit {
				cacheHooks.OnCacheHit(ctx, format)
				artifacts[format] = data
				hits = append(hits, format)
				continue
			}
			cacheHooks.OnCacheMiss(ctx, format)
		}

		data, err := Render(ctx, c, l, s, format, opts)
		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, nil, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, format, len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, hits, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
