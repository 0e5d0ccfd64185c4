package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

// Primitive is the flat, serialisable form of one scene primitive. Only
// the fields meaningful for the kind are set.
type Primitive struct {
	Kind    string     `json:"kind" yaml:"kind"`
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"`
	Anchor  [3]float64 `json:"anchor" yaml:"anchor,flow"`
	Dir     [3]float64 `json:"dir" yaml:"dir,flow"`
	Length  float64    `json:"length,omitempty" yaml:"length,omitempty"`
	Radius  float64    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Height  float64    `json:"height,omitempty" yaml:"height,omitempty"`
	Width   float64    `json:"width,omitempty" yaml:"width,omitempty"`
	Points  int        `json:"points,omitempty" yaml:"points,omitempty"`
	Closed  bool       `json:"closed,omitempty" yaml:"closed,omitempty"`
	Surface string     `json:"surface,omitempty" yaml:"surface,omitempty"`
	Text    string     `json:"text,omitempty" yaml:"text,omitempty"`
	Color   string     `json:"color" yaml:"color"`
	Opacity float64    `json:"opacity" yaml:"opacity"`
}

// Scene is a full dump of one generated visualization.
type Scene struct {
	Concept     string           `json:"concept" yaml:"concept"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Category    catalog.Category `json:"category" yaml:"category"`
	Equation    string           `json:"equation,omitempty" yaml:"equation,omitempty"`
	Params      config.Params    `json:"params" yaml:"params"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Counts      map[string]int   `json:"counts" yaml:"counts"`
	Handles     int              `json:"handles" yaml:"handles"`
	Primitives  []Primitive      `json:"primitives" yaml:"primitives"`
}

func triple(v geom.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Flatten converts p to its serialisable form.
func Flatten(p *scene.Primitive) Primitive {
	out := Primitive{Kind: p.Kind.String(), Name: p.Name}
	if p.Material != nil {
		out.Color = p.Material.Color.Hex()
		out.Opacity = p.Material.Opacity
	}
	shape := p.Shape()
	if shape == nil {
		return out
	}
	out.Anchor = triple(shape.Anchor())

	switch s := shape.(type) {
	case scene.Arrow:
		out.Dir = triple(s.Dir)
		out.Length = s.Length
		out.Width = s.HeadWidth
	case scene.Sprite:
		out.Text = s.Text
	case scene.Tube:
		out.Radius = s.Radius
		out.Points = len(s.Path)
		out.Closed = s.Closed
	case scene.Surface:
		out.Surface = s.Kind.String()
		out.Dir = triple(s.Axis)
		out.Radius, out.Height, out.Width = s.Radius, s.Height, s.Width
	case scene.Ring:
		out.Dir = triple(s.Normal)
		out.Radius = s.Radius
		out.Width = s.TubeRadius
	case scene.Polyline:
		out.Points = len(s.Points)
	case scene.Axes:
		out.Length = s.Length
	case scene.Ball:
		out.Radius = s.Radius
	case scene.Rod:
		out.Dir = triple(s.Axis)
		out.Radius, out.Height = s.Radius, s.Height
	case scene.Quad:
		out.Dir = triple(s.Normal)
		out.Width, out.Height = s.Width, s.Height
	}
	return out
}

// Dump describes g, generated for concept under p.
func Dump(concept string, p config.Params, g *scene.Subgraph) Scene {
	s := Scene{
		Concept:     concept,
		Params:      p,
		GeneratedAt: time.Now().UTC(),
		Counts:      make(map[string]int),
		Handles:     g.Handles(),
	}
	if d, ok := catalog.Lookup(concept); ok {
		s.Label, s.Category, s.Equation = d.Label, d.Category, d.Equation
	}
	for k, n := range g.Histogram() {
		s.Counts[k.String()] = n
	}
	g.Traverse(func(pr *scene.Primitive) {
		s.Primitives = append(s.Primitives, Flatten(pr))
	})
	return s
}

func WriteJSON(w io.Writer, s Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func WriteYAML(w io.Writer, s Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Write encodes s in format ("json" or "yaml") to w.
func Write(w io.Writer, format string, s Scene) error {
	switch format {
	case "json":
		return WriteJSON(w, s)
	case "yaml", "yml":
		return WriteYAML(w, s)
	}
	return fmt.Errorf("export: unknown format %q", format)
}

// WriteFile creates path and writes s to it.
func WriteFile(path, format string, s Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, format, s)
}
