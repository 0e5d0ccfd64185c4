package viz

import (
	"math"
	"sort"

	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

// Camera is a perspective pinhole looking from Eye at Target.
type Camera struct {
	Eye, Target, Up geom.Vec3
	FOV, Near       float64
}

// Project maps p to dot coordinates on a w x h surface. depth is the
// distance along the view axis; ok is false when p is behind the near
// plane.
func (c Camera) Project(p geom.Vec3, w, h int) (x, y, depth float64, ok bool) {
	f, fok := c.Target.Sub(c.Eye).Unit()
	if !fok {
		return 0, 0, 0, false
	}
	r, rok := f.Cross(c.Up).Unit()
	if !rok {
		r = f.Perpendicular()
	}
	u := r.Cross(f)

	d := p.Sub(c.Eye)
	depth = d.Dot(f)
	if depth < c.Near {
		return 0, 0, depth, false
	}
	focal := float64(h) / 2 / math.Tan(c.FOV/2)
	x = float64(w)/2 + d.Dot(r)*focal/depth
	y = float64(h)/2 - d.Dot(u)*focal/depth
	return x, y, depth, true
}

type Edge struct {
	A, B  geom.Vec3
	Color scene.Color
}

// Marker is a labelled point. Text is not rasterised on the Braille canvas
// but is kept for exporters.
type Marker struct {
	At    geom.Vec3
	Text  string
	Color scene.Color
}

// Wireframe is the line-art rendition of a scene.
type Wireframe struct {
	Edges   []Edge
	Markers []Marker
}

func (w *Wireframe) line(a, b geom.Vec3, c scene.Color) {
	w.Edges = append(w.Edges, Edge{a, b, c})
}

func (w *Wireframe) path(pts []geom.Vec3, c scene.Color) {
	for i := 1; i < len(pts); i++ {
		w.line(pts[i-1], pts[i], c)
	}
}

func (w *Wireframe) circle(center, normal geom.Vec3, r float64, n int, c scene.Color) {
	u := normal.Perpendicular()
	w.path(geom.Circle(center, u, normal.Cross(u), r, n), c)
}

// Grid adds a size x size floor grid of unit cells in the y = 0 plane.
func (w *Wireframe) Grid(size int, c scene.Color) {
	h := float64(size) / 2
	for i := 0; i <= size; i++ {
		t := -h + float64(i)
		w.line(geom.V(t, 0, -h), geom.V(t, 0, h), c)
		w.line(geom.V(-h, 0, t), geom.V(h, 0, t), c)
	}
}

// AddPrimitive appends the outline of p.
func (w *Wireframe) AddPrimitive(p *scene.Primitive) {
	var c scene.Color
	if p.Material != nil {
		c = p.Material.Color
	}
	switch s := p.Shape().(type) {
	case scene.Arrow:
		base, tip := s.HeadBase(), s.Tip()
		w.line(s.Origin, base, c)
		u := s.Dir.Perpendicular()
		v := s.Dir.Cross(u)
		for _, side := range []geom.Vec3{u, u.Neg(), v, v.Neg()} {
			w.line(tip, base.Add(side.Scale(s.HeadWidth)), c)
		}
	case scene.Sprite:
		w.Markers = append(w.Markers, Marker{s.Position, s.Text, c})
	case scene.Tube:
		w.path(s.Path, c)
	case scene.Surface:
		w.surface(s, c)
	case scene.Ring:
		w.path(s.Points(32), c)
	case scene.Polyline:
		w.path(s.Points, c)
	case scene.Axes:
		w.line(geom.Zero, geom.UnitX.Scale(s.Length), 0xff0000)
		w.line(geom.Zero, geom.UnitY.Scale(s.Length), 0x00ff00)
		w.line(geom.Zero, geom.UnitZ.Scale(s.Length), 0x0000ff)
	case scene.Ball:
		for _, n := range []geom.Vec3{geom.UnitX, geom.UnitY, geom.UnitZ} {
			w.circle(s.Center, n, s.Radius, 12, c)
		}
	case scene.Rod:
		a, b := s.Ends()
		w.circle(a, s.Axis, s.Radius, 12, c)
		w.circle(b, s.Axis, s.Radius, 12, c)
		w.line(a, b, c)
	case scene.Quad:
		k := s.Corners()
		w.path([]geom.Vec3{k[0], k[1], k[2], k[3], k[0]}, c)
	}
}

func (w *Wireframe) surface(s scene.Surface, c scene.Color) {
	axis := s.Axis
	if axis == geom.Zero {
		axis = geom.UnitY
	}
	switch s.Kind {
	case scene.SurfaceSphere:
		for _, n := range []geom.Vec3{geom.UnitX, geom.UnitY, geom.UnitZ} {
			w.circle(s.Center, n, s.Radius, 32, c)
		}
	case scene.SurfaceCylinder:
		h := axis.Scale(s.Height / 2)
		a, b := s.Center.Sub(h), s.Center.Add(h)
		w.circle(a, axis, s.Radius, 32, c)
		w.circle(b, axis, s.Radius, 32, c)
		u := axis.Perpendicular()
		v := axis.Cross(u)
		for _, d := range []geom.Vec3{u, v, u.Neg(), v.Neg()} {
			w.line(a.Add(d.Scale(s.Radius)), b.Add(d.Scale(s.Radius)), c)
		}
	case scene.SurfacePlane:
		k := scene.Quad{Center: s.Center, Normal: axis, Width: s.Width, Height: s.Height}.Corners()
		w.path([]geom.Vec3{k[0], k[1], k[2], k[3], k[0]}, c)
	}
}

// Build returns the wireframe of everything attached to root.
func Build(root *scene.Root) *Wireframe {
	w := &Wireframe{}
	root.Traverse(w.AddPrimitive)
	return w
}

// BuildSubgraph returns the wireframe of one subgraph.
func BuildSubgraph(g *scene.Subgraph) *Wireframe {
	w := &Wireframe{}
	g.Traverse(w.AddPrimitive)
	return w
}

type projected struct {
	x0, y0, x1, y1 int
	depth          float64
	color          scene.Color
}

// Render draws w onto c, farthest edges first. Edges with an endpoint
// behind the camera or wildly off-screen are dropped.
func Render(c *Canvas, w *Wireframe, cam Camera) {
	if c == nil || w == nil {
		return
	}
	dw, dh := c.Dots()
	limit := float64(4 * (dw + dh))
	in := func(v float64) bool { return v > -limit && v < limit }

	out := make([]projected, 0, len(w.Edges)+len(w.Markers))
	for _, e := range w.Edges {
		x0, y0, d0, ok0 := cam.Project(e.A, dw, dh)
		x1, y1, d1, ok1 := cam.Project(e.B, dw, dh)
		if !ok0 || !ok1 || !in(x0) || !in(y0) || !in(x1) || !in(y1) {
			continue
		}
		out = append(out, projected{int(x0), int(y0), int(x1), int(y1), (d0 + d1) / 2, e.Color})
	}
	for _, m := range w.Markers {
		x, y, d, ok := cam.Project(m.At, dw, dh)
		if !ok || !in(x) || !in(y) {
			continue
		}
		out = append(out, projected{int(x), int(y), int(x), int(y), d, m.Color})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].depth > out[j].depth })
	for _, e := range out {
		c.Line(e.x0, e.y0, e.x1, e.y1, e.color)
	}
}

// Snapshot renders root from orbit o onto a fresh w x h cell canvas.
func Snapshot(root *scene.Root, o *Orbit, w, h int) *Canvas {
	c := NewCanvas(w, h)
	Render(c, Build(root), o.Camera())
	return c
}
