package observability_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/timesnake/pkg/cache"
	"github.com/matzehuels/timesnake/pkg/chart"
	"github.com/matzehuels/timesnake/pkg/observability"
	"github.com/matzehuels/timesnake/pkg/pipeline"
)

// recorder collects pipeline and cache events as short strings.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev := r.events
	r.events = nil
	return ev
}

func (r *recorder) OnLayoutStart(_ context.Context, rows int) { r.add("layout %d rows", rows) }
func (r *recorder) OnLayoutComplete(_ context.Context, _ int, _ time.Duration, err error) {
	r.add("layout done err=%v", err)
}
func (r *recorder) OnComposeStart(_ context.Context, items int) { r.add("compose %d items", items) }
func (r *recorder) OnComposeComplete(_ context.Context, elements int, _ time.Duration, err error) {
	r.add("compose done err=%v", err)
}
func (r *recorder) OnRenderStart(_ context.Context, formats []string) { r.add("render %v", formats) }
func (r *recorder) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	r.add("render done err=%v", err)
}
func (r *recorder) OnCacheHit(_ context.Context, format string)  { r.add("hit %s", format) }
func (r *recorder) OnCacheMiss(_ context.Context, format string) { r.add("miss %s", format) }
func (r *recorder) OnCacheSet(_ context.Context, format string, size int) {
	r.add("set %s", format)
}

func TestRunnerEmitsStageAndCacheEvents(t *testing.T) {
	rec := &recorder{}
	observability.SetPipelineHooks(rec)
	observability.SetCacheHooks(rec)
	t.Cleanup(observability.Reset)

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := pipeline.NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := pipeline.Options{
		Source:       []byte("[[timelines]]\nfrom = 1066\nto = 1154\n"),
		SourceFormat: chart.FormatTOML,
		Formats:      []string{pipeline.FormatSVG},
	}
	ctx := context.Background()

	if _, err := runner.Execute(ctx, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := rec.take()
	want := []string{
		"layout 11 rows",
		"layout done err=<nil>",
		"compose 1 items",
		"compose done err=<nil>",
		"render [svg]",
		"miss svg",
		"set svg",
		"render done err=<nil>",
	}
	if !slices.Equal(first, want) {
		t.Errorf("first run events:\n got %q\nwant %q", first, want)
	}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := rec.take()
	if !slices.Contains(second, "hit svg") || slices.Contains(second, "set svg") {
		t.Errorf("second run should be served from cache, events %q", second)
	}
	if !result.CacheInfo.RenderHit {
		t.Error("second run should report a cache hit")
	}
}

func TestRegistry(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	if _, ok := observability.Pipeline().(observability.NoopPipelineHooks); !ok {
		t.Errorf("default pipeline hooks = %T", observability.Pipeline())
	}
	if _, ok := observability.HTTP().(observability.NoopHTTPHooks); !ok {
		t.Errorf("default HTTP hooks = %T", observability.HTTP())
	}

	rec := &recorder{}
	observability.SetCacheHooks(rec)
	observability.SetCacheHooks(nil)
	if observability.Cache() != rec {
		t.Error("registering nil hooks should keep the current ones")
	}

	observability.Reset()
	if _, ok := observability.Cache().(observability.NoopCacheHooks); !ok {
		t.Errorf("Reset left cache hooks %T", observability.Cache())
	}
}
