package viz

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/fields"
	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

func TestOrbit_DefaultEye(t *testing.T) {
	o := NewOrbit()
	if got := o.Eye(); !got.ApproxEqual(DefaultEye, 1e-9) {
		t.Errorf("Eye() = %v, want %v", got, DefaultEye)
	}
	if math.Abs(o.Azimuth()-math.Pi/4) > 1e-12 {
		t.Errorf("Azimuth() = %v, want π/4", o.Azimuth())
	}
}

func TestOrbit_AutoRotateUndamped(t *testing.T) {
	o := NewOrbit()
	o.Damping = 0
	start := o.Eye()
	for i := 0; i < 1800; i++ {
		o.Tick(1.0 / 60)
	}
	// half a revolution after 30 s
	half := geom.V(-8, 8, -8)
	if got := o.Eye(); !got.ApproxEqual(half, 1e-6) {
		t.Errorf("after 30s Eye() = %v, want %v", got, half)
	}
	for i := 0; i < 1800; i++ {
		o.Tick(1.0 / 60)
	}
	if got := o.Eye(); !got.ApproxEqual(start, 1e-6) {
		t.Errorf("after 60s Eye() = %v, want %v", got, start)
	}
}

func TestOrbit_AutoRotateDamped(t *testing.T) {
	o := NewOrbit()
	step := o.AutoRotateAngle(1.0 / 60)
	total, last := 0.0, 0.0
	for i := 0; i < 7200; i++ {
		before := o.Azimuth()
		o.Tick(1.0 / 60)
		last = math.Abs(math.Remainder(o.Azimuth()-before, 2*math.Pi))
		total += last
	}
	if want := 4 * math.Pi; total > want || total < want-0.05 {
		t.Errorf("rotation over 120s = %v, want just under %v", total, want)
	}
	if math.Abs(last-step) > 1e-9 {
		t.Errorf("steady per-tick rotation = %v, want %v", last, step)
	}
	if math.Abs(o.Polar()-math.Acos(1/math.Sqrt(3))) > 1e-12 {
		t.Error("auto-rotate changed elevation")
	}
}

func TestOrbit_Idle(t *testing.T) {
	o := NewOrbit()
	o.AutoRotate = false
	if o.Tick(1.0 / 60) {
		t.Error("Tick reported a change with no input")
	}
	if got := o.Eye(); !got.ApproxEqual(DefaultEye, 1e-9) {
		t.Errorf("Eye() = %v, want %v", got, DefaultEye)
	}
}

func TestOrbit_DistanceClamp(t *testing.T) {
	tests := []struct {
		factor float64
		want   float64
	}{
		{0.01, DefaultMinDistance},
		{1000, DefaultMaxDistance},
	}
	for _, tt := range tests {
		o := NewOrbit()
		o.AutoRotate = false
		o.Dolly(tt.factor)
		o.Tick(1.0 / 60)
		if o.Distance() != tt.want {
			t.Errorf("Dolly(%v): Distance() = %v, want %v", tt.factor, o.Distance(), tt.want)
		}
	}
}

func TestOrbit_PolarClamp(t *testing.T) {
	o := NewOrbit()
	o.Damping = 0
	o.RotateUp(10)
	o.Tick(0)
	if p := o.Polar(); p <= 0 || p >= math.Pi {
		t.Errorf("Polar() = %v, want inside (0, π)", p)
	}
}

func TestOrbit_Reset(t *testing.T) {
	o := NewOrbit()
	o.RotateLeft(1)
	o.RotateUp(0.3)
	o.Dolly(0.5)
	for i := 0; i < 100; i++ {
		o.Tick(1.0 / 60)
	}
	if o.Eye().ApproxEqual(DefaultEye, 1e-3) {
		t.Fatal("orbit did not move")
	}
	o.Reset()
	if got := o.Eye(); !got.ApproxEqual(DefaultEye, 1e-9) {
		t.Errorf("after Reset Eye() = %v, want %v", got, DefaultEye)
	}
	o.AutoRotate = false
	if o.Tick(1.0 / 60) {
		t.Error("Reset left pending motion")
	}
}

func TestCamera_Project(t *testing.T) {
	cam := NewOrbit().Camera()
	x, y, d, ok := cam.Project(geom.Zero, 160, 120)
	if !ok || math.Abs(x-80) > 1e-9 || math.Abs(y-60) > 1e-9 {
		t.Errorf("target projects to (%v, %v, %v), want centre", x, y, ok)
	}
	if math.Abs(d-DefaultEye.Length()) > 1e-9 {
		t.Errorf("depth = %v, want %v", d, DefaultEye.Length())
	}

	if _, y, _, _ := cam.Project(geom.V(0, 1, 0), 160, 120); y >= 60 {
		t.Errorf("point above target projects to y=%v, want above centre", y)
	}
	if _, _, _, ok := cam.Project(geom.V(20, 20, 20), 160, 120); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, 0xffffff)
	if r, col := c.Cell(0, 0); r != 0x2801 || col != 0xffffff {
		t.Errorf("Cell(0,0) = %U %v, want U+2801", r, col)
	}
	c.Set(7, 7, 1)
	if r, _ := c.Cell(3, 1); r != 0x2880 {
		t.Errorf("Cell(3,1) = %U, want U+2880", r)
	}
	c.Set(-1, 0, 1)
	c.Set(8, 0, 1)
	if c.Filled() != 2 {
		t.Errorf("Filled() = %d, want 2", c.Filled())
	}
	c.Unset(0, 0)
	if c.Lit(0, 0) {
		t.Error("dot still lit after Unset")
	}

	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d rows, want 2", len(lines))
	}
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n != 4 {
			t.Errorf("row width = %d, want 4", n)
		}
	}
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Line(0, 1, 9, 1, 1)
	for x := 0; x < 10; x++ {
		if !c.Lit(x, 1) {
			t.Errorf("dot (%d, 1) not lit", x)
		}
	}
	c.Clear()
	if c.Filled() != 0 {
		t.Error("Clear left dots")
	}
}

func TestBuild_PointCharge(t *testing.T) {
	dev := scene.NewTracker()
	env := fields.NewEnv(dev, 1)
	g := fields.Generate(env, "electric-field-point", config.DefaultParams())

	root := scene.NewRoot()
	root.Attach(g)
	w := Build(root)

	arrows := g.Count(scene.KindArrow)
	if len(w.Edges) < arrows*5 {
		t.Errorf("edges = %d, want at least %d", len(w.Edges), arrows*5)
	}
	if len(w.Markers) != g.Count(scene.KindLabel) {
		t.Errorf("markers = %d, want %d", len(w.Markers), g.Count(scene.KindLabel))
	}

	c := Snapshot(root, NewOrbit(), 60, 20)
	if c.Filled() == 0 {
		t.Error("snapshot is blank")
	}
}

func TestBuild_Axes(t *testing.T) {
	dev := scene.NewTracker()
	p := &scene.Primitive{Kind: scene.KindAxes, Geometry: dev.NewGeometry(scene.Axes{Length: 5})}
	w := &Wireframe{}
	w.AddPrimitive(p)
	want := []scene.Color{0xff0000, 0x00ff00, 0x0000ff}
	if len(w.Edges) != 3 {
		t.Fatalf("edges = %d, want 3", len(w.Edges))
	}
	for i, e := range w.Edges {
		if e.Color != want[i] || e.B.Length() != 5 {
			t.Errorf("edge %d = %+v", i, e)
		}
	}
}

func TestSlider(t *testing.T) {
	tests := []struct {
		v      float64
		prefix string
	}{
		{-5, "●"},
		{0, "━━━━━●"},
		{5, "━━━━━━━━━━●"},
	}
	for _, tt := range tests {
		got := Slider(tt.v, -5, 5, 11)
		if !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Slider(%v) = %q, want prefix %q", tt.v, got, tt.prefix)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("nope").Name != "dark" {
		t.Error("unknown theme should fall back to dark")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("NextTheme does not wrap")
	}
}
