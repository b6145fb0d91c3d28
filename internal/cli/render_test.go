package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/render/timeline/scene"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"reference chart", "", "", "timeline"},
		{"from input", "", "charts/europe.toml", "charts/europe"},
		{"output with format ext", "out/snake.svg", "charts/europe.toml", "out/snake"},
		{"output without ext", "out/snake", "", "out/snake"},
		{"output with other ext", "out/snake.v2", "", "out/snake.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{
			name:    "single format uses output as given",
			output:  "snake.image",
			formats: []string{"png"},
			want:    map[string]string{"png": "snake.image"},
		},
		{
			name:    "single format default",
			input:   "europe.yaml",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "europe.svg"},
		},
		{
			name:    "multiple formats share a base",
			output:  "out/snake.svg",
			formats: []string{"svg", "json"},
			want:    map[string]string{"svg": "out/snake.svg", "json": "out/snake.json"},
		},
		{
			name:    "reference chart",
			formats: []string{"svg", "pdf"},
			want:    map[string]string{"svg": "timeline.svg", "pdf": "timeline.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPaths(tt.output, tt.input, tt.formats)
			if err != nil {
				t.Fatalf("outputPaths: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestOutputPathsRejectsTraversal(t *testing.T) {
	_, err := outputPaths("../../etc/snake.svg", "", []string{"svg"})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("outputPaths traversal error = %v, want INVALID_PATH", err)
	}
}

func TestStatsLine(t *testing.T) {
	counts := map[scene.Kind]int{scene.KindStroke: 3, scene.KindCircle: 1, scene.KindText: 112}

	fresh := statsLine(counts, 11, false)
	for _, want := range []string{"11 rows", "3 strokes", "1 dot ", "112 labels", "fresh"} {
		if !strings.Contains(fresh, want) {
			t.Errorf("statsLine = %q, missing %q", fresh, want)
		}
	}
	if cached := statsLine(nil, 1, true); !strings.Contains(cached, "1 row ") || !strings.Contains(cached, "0 strokes") || !strings.HasSuffix(cached, "cached") {
		t.Errorf("statsLine for a cached empty scene = %q", cached)
	}
}
