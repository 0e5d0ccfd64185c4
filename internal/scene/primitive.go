package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/emviz/internal/geom"
)

// Kind classifies primitives.
type Kind int

const (
	KindArrow Kind = iota
	KindLabel
	KindTube
	KindSurface
	KindRing
	KindLine
	KindAxes
	KindSphere
	KindCylinder
	KindSheet
	numKinds
)

var kindNames = [numKinds]string{
	"arrow", "label", "tube", "surface", "ring", "line", "axes", "sphere", "cylinder", "sheet",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every primitive kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Color is a 24-bit RGB value, 0xRRGGBB.
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) Hex() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

// MaterialSpec describes how a primitive is shaded.
type MaterialSpec struct {
	Color             Color   `json:"color" yaml:"color"`
	Emissive          Color   `json:"emissive,omitempty" yaml:"emissive,omitempty"`
	EmissiveIntensity float64 `json:"emissive_intensity,omitempty" yaml:"emissive_intensity,omitempty"`
	Opacity           float64 `json:"opacity" yaml:"opacity"`
	Transparent       bool    `json:"transparent,omitempty" yaml:"transparent,omitempty"`
	Wireframe         bool    `json:"wireframe,omitempty" yaml:"wireframe,omitempty"`
	DoubleSided       bool    `json:"double_sided,omitempty" yaml:"double_sided,omitempty"`
}

// Basic is an unlit opaque material.
func Basic(c Color) MaterialSpec { return MaterialSpec{Color: c, Opacity: 1} }

// Shape is the world-space geometry of a primitive.
type Shape interface {
	// Anchor is a representative point used for labelling and sorting.
	Anchor() geom.Vec3
}

// Arrow is a directed vector glyph: a shaft plus a cone head.
type Arrow struct {
	Origin     geom.Vec3
	Dir        geom.Vec3
	Length     float64
	HeadLength float64
	HeadWidth  float64
}

func (a Arrow) Anchor() geom.Vec3 { return a.Origin }
func (a Arrow) Tip() geom.Vec3    { return a.Origin.Add(a.Dir.Scale(a.Length)) }

// ShaftLength is the visible shaft; a head longer than the arrow swallows it.
func (a Arrow) ShaftLength() float64 { return math.Max(a.Length-a.HeadLength, 0) }

// HeadBase is where the cone starts.
func (a Arrow) HeadBase() geom.Vec3 { return a.Origin.Add(a.Dir.Scale(a.ShaftLength())) }

// Sprite is camera-facing text.
type Sprite struct {
	Text     string
	Position geom.Vec3
	Scale    geom.Vec3
}

func (s Sprite) Anchor() geom.Vec3 { return s.Position }

// Tube is a swept circle along a smooth curve.
type Tube struct {
	Control        []geom.Vec3
	Path           []geom.Vec3
	Vertices       []geom.Vec3
	Radius         float64
	RadialSegments int
	Closed         bool
}

func (t Tube) Anchor() geom.Vec3 {
	if len(t.Path) == 0 {
		return geom.Zero
	}
	return t.Path[0]
}

// SurfaceKind selects the iso-surface family.
type SurfaceKind int

const (
	SurfaceSphere SurfaceKind = iota
	SurfaceCylinder
	SurfacePlane
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceSphere:
		return "sphere"
	case SurfaceCylinder:
		return "cylinder"
	case SurfacePlane:
		return "plane"
	}
	return fmt.Sprintf("surface(%d)", int(k))
}

// Surface is a closed or open reference surface. Sphere uses Radius,
// cylinder uses Radius, Height and Axis, plane uses Width, Height and Axis
// as its normal.
type Surface struct {
	Kind   SurfaceKind
	Center geom.Vec3
	Axis   geom.Vec3
	Radius float64
	Height float64
	Width  float64
}

func (s Surface) Anchor() geom.Vec3 { return s.Center }

// Ring is a torus around Normal.
type Ring struct {
	Center     geom.Vec3
	Normal     geom.Vec3
	Radius     float64
	TubeRadius float64
}

func (r Ring) Anchor() geom.Vec3 { return r.Center }

// Points returns n+1 points along the ring's centre circle.
func (r Ring) Points(n int) []geom.Vec3 {
	u := r.Normal.Perpendicular()
	v := r.Normal.Cross(u)
	return geom.Circle(r.Center, u, v, r.Radius, n)
}

// Polyline is a thin line through Points.
type Polyline struct {
	Points []geom.Vec3
}

func (p Polyline) Anchor() geom.Vec3 {
	if len(p.Points) == 0 {
		return geom.Zero
	}
	return p.Points[0]
}

// Axes is an x/y/z reference triad from the origin.
type Axes struct {
	Length float64
}

func (Axes) Anchor() geom.Vec3 { return geom.Zero }

// Ball is a solid sphere.
type Ball struct {
	Center geom.Vec3
	Radius float64
}

func (b Ball) Anchor() geom.Vec3 { return b.Center }

// Rod is a solid cylinder centred on Center along Axis.
type Rod struct {
	Center geom.Vec3
	Axis   geom.Vec3
	Radius float64
	Height float64
}

func (r Rod) Anchor() geom.Vec3 { return r.Center }

// Ends returns the centres of the two caps.
func (r Rod) Ends() (geom.Vec3, geom.Vec3) {
	h := r.Axis.Scale(r.Height / 2)
	return r.Center.Sub(h), r.Center.Add(h)
}

// Quad is a flat rectangle with the given normal.
type Quad struct {
	Center geom.Vec3
	Normal geom.Vec3
	Width  float64
	Height float64
}

func (q Quad) Anchor() geom.Vec3 { return q.Center }

// Corners returns the four corners in winding order.
func (q Quad) Corners() [4]geom.Vec3 {
	u := q.Normal.Perpendicular()
	v := q.Normal.Cross(u)
	hu, hv := u.Scale(q.Width/2), v.Scale(q.Height/2)
	return [4]geom.Vec3{
		q.Center.Sub(hu).Sub(hv),
		q.Center.Add(hu).Sub(hv),
		q.Center.Add(hu).Add(hv),
		q.Center.Sub(hu).Add(hv),
	}
}

// Primitive is one drawable element and the GPU resources it owns.
type Primitive struct {
	Kind     Kind
	Name     string
	Geometry *Geometry
	Material *Material
	Texture  *Texture
}

// Shape returns the primitive's geometry description.
func (p *Primitive) Shape() Shape {
	if p.Geometry == nil {
		return nil
	}
	return p.Geometry.Shape
}

// Handles lists the resources owned by p.
func (p *Primitive) Handles() []Disposable {
	hs := make([]Disposable, 0, 3)
	if p.Geometry != nil {
		hs = append(hs, p.Geometry)
	}
	if p.Material != nil {
		hs = append(hs, p.Material)
	}
	if p.Texture != nil {
		hs = append(hs, p.Texture)
	}
	return hs
}
