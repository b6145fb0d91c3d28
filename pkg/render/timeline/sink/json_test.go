package sink

import (
	"encoding/json"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	l, s := buildScene(t)
	data, err := RenderJSON(l, s, WithJSONPathData())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Params struct {
			Margin float64 `json:"margin"`
		} `json:"params"`
		Layout struct {
			LinearLength float64 `json:"linear_length"`
		} `json:"layout"`
		Elements []struct {
			Kind    string `json:"kind"`
			D       string `json:"d"`
			Path    []any  `json:"path"`
			Content string `json:"content"`
			Center  *struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"center"`
		} `json:"elements"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Width != 3840 || out.Height != 3514 {
		t.Errorf("canvas = %vx%v, want 3840x3514", out.Width, out.Height)
	}
	if out.Params.Margin != 32 {
		t.Errorf("params.margin = %v, want 32", out.Params.Margin)
	}
	if out.Layout.LinearLength != 3206 {
		t.Errorf("layout.linear_length = %v, want 3206", out.Layout.LinearLength)
	}
	if len(out.Elements) != 4 {
		t.Fatalf("got %d elements, want 4", len(out.Elements))
	}

	kinds := []string{"stroke", "stroke", "circle", "text"}
	for i, e := range out.Elements {
		if e.Kind != kinds[i] {
			t.Errorf("element %d kind = %q, want %q", i, e.Kind, kinds[i])
		}
	}
	if out.Elements[0].D == "" || len(out.Elements[0].Path) == 0 {
		t.Error("stroke should carry path segments and path data")
	}
	if c := out.Elements[2].Center; c == nil || c.X != 317 || c.Y != 157 {
		t.Errorf("circle center = %+v, want (317,157)", c)
	}
	if out.Elements[3].Content != "1000" {
		t.Errorf("label content = %q, want 1000", out.Elements[3].Content)
	}
}

func TestRenderJSONWithoutPathData(t *testing.T) {
	l, s := buildScene(t)
	data, err := RenderJSON(l, s)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Elements []map[string]any `json:"elements"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if _, ok := out.Elements[0]["d"]; ok {
		t.Error("path data should be omitted by default")
	}
}
