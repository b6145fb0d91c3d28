package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"render warnings at info", log.InfoLevel, func(l *log.Logger) { l.Warn("cache write failed") }, true},
		{"layout details hidden at info", log.InfoLevel, func(l *log.Logger) { l.Debug("computed layout", "rows", 11) }, false},
		{"layout details with --verbose", log.DebugLevel, func(l *log.Logger) { l.Debug("computed layout", "rows", 11) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogWritten(t *testing.T) {
	var buf bytes.Buffer
	logWritten(newLogger(&buf, log.InfoLevel), "png", "snake.png", 42, 3*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"wrote artifact", "format=png", "path=snake.png", "bytes=42"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	cliLogger := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), cliLogger)); got != cliLogger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext without a logger should fall back to log.Default()")
	}
}
