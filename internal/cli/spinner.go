package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/matzehuels/timesnake/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// stageSpinner animates the pipeline stage currently running. The stage is
// updated by stageHooks as the runner reports progress.
type stageSpinner struct {
	w       io.Writer
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu      sync.Mutex
	msg     string
	width   int // widest line drawn, for clearing
	running bool
}

func newStageSpinner(w io.Writer, msg string) *stageSpinner {
	return &stageSpinner{
		w:       w,
		msg:     msg,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// start draws frames until finish is called or ctx is done.
func (s *stageSpinner) start(ctx context.Context) {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

func (s *stageSpinner) setStage(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

func (s *stageSpinner) stage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}

func (s *stageSpinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = max(s.width, utf8.RuneCountInString(s.msg)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(frame), StyleDim.Render(s.msg))
}

// finish stops the animation and clears its line. It may be called more
// than once, and without start.
func (s *stageSpinner) finish() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		running := s.running
		s.mu.Unlock()
		if running {
			<-s.stopped
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.width > 0 {
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		}
	})
}

// stageHooks reports pipeline progress on a spinner.
type stageHooks struct {
	observability.NoopPipelineHooks
	spinner *stageSpinner
}

func (h stageHooks) OnLayoutStart(_ context.Context, rows int) {
	h.spinner.setStage(fmt.Sprintf("Laying out %d rows", rows))
}

func (h stageHooks) OnComposeStart(_ context.Context, items int) {
	h.spinner.setStage(fmt.Sprintf("Drawing %d items", items))
}

func (h stageHooks) OnRenderStart(_ context.Context, formats []string) {
	h.spinner.setStage("Rendering " + strings.Join(formats, ", "))
}
