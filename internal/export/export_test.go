package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/fields"
	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/viz"
)

func pointCharge(t *testing.T) (*scene.Subgraph, config.Params) {
	t.Helper()
	p := config.DefaultParams()
	env := fields.NewEnv(scene.NewTracker(), 3)
	return fields.Generate(env, "electric-field-point", p), p
}

func TestDump(t *testing.T) {
	g, p := pointCharge(t)
	s := Dump("electric-field-point", p, g)

	if s.Label == "" || s.Equation == "" {
		t.Error("descriptor fields not filled")
	}
	if len(s.Primitives) != g.Len() {
		t.Errorf("primitives = %d, want %d", len(s.Primitives), g.Len())
	}
	if s.Counts["arrow"] != 64 {
		t.Errorf("arrow count = %d, want 64", s.Counts["arrow"])
	}
	if s.Handles != g.Handles() {
		t.Errorf("handles = %d, want %d", s.Handles, g.Handles())
	}

	for _, pr := range s.Primitives {
		if pr.Kind == "arrow" && pr.Length <= 0 {
			t.Fatalf("arrow without length: %+v", pr)
		}
	}
}

func TestWrite_Formats(t *testing.T) {
	g, p := pointCharge(t)
	s := Dump("electric-field-point", p, g)

	var buf bytes.Buffer
	if err := Write(&buf, "json", s); err != nil {
		t.Fatal(err)
	}
	var back Scene
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("json: %v", err)
	}
	if back.Concept != s.Concept || len(back.Primitives) != len(s.Primitives) {
		t.Errorf("json round trip lost data: %q %d", back.Concept, len(back.Primitives))
	}

	buf.Reset()
	if err := Write(&buf, "yaml", s); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if doc["category"] != "electrostatics" {
		t.Errorf("yaml category = %v, want electrostatics", doc["category"])
	}

	if err := Write(&buf, "xml", s); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSVG(t *testing.T) {
	g, _ := pointCharge(t)
	root := scene.NewRoot()
	root.Attach(g)
	orbit := viz.NewOrbit()

	wf := viz.Build(root)
	svg := WireframeToSVG(wf, orbit.Camera(), 400, 300, viz.ThemeDark)
	if !strings.HasPrefix(svg, "<?xml") || !strings.Contains(svg, "<line") {
		t.Error("wireframe svg missing lines")
	}
	if !strings.Contains(svg, "+Q") {
		t.Error("label text missing")
	}

	c := viz.Snapshot(root, orbit, 40, 12)
	dots := CanvasToSVG(c, 3, viz.ThemeDark)
	if strings.Count(dots, "<circle") == 0 {
		t.Error("canvas svg has no dots")
	}
	if CanvasToSVG(nil, 1, viz.ThemeDark) != "" {
		t.Error("nil canvas should give empty output")
	}
}
