package primitive

import (
	"fmt"

	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

const (
	// DefaultTubularSegments is the number of spline samples along a tube.
	DefaultTubularSegments = 64
	// DefaultRadialSegments is the number of vertices around a tube ring.
	DefaultRadialSegments = 8

	unitTolerance = 1e-6
)

// Builder constructs primitives whose resources are issued by a device.
// Every call allocates fresh handles; a Builder holds no other state and may
// be shared by generators running on one goroutine.
type Builder struct {
	dev             scene.Device
	TubularSegments int
	RadialSegments  int
}

func New(dev scene.Device) *Builder {
	return &Builder{
		dev:             dev,
		TubularSegments: DefaultTubularSegments,
		RadialSegments:  DefaultRadialSegments,
	}
}

// Device returns the device resources are allocated from.
func (b *Builder) Device() scene.Device { return b.dev }

func (b *Builder) primitive(kind scene.Kind, shape scene.Shape, mat scene.MaterialSpec) *scene.Primitive {
	return &scene.Primitive{
		Kind:     kind,
		Name:     kind.String(),
		Geometry: b.dev.NewGeometry(shape),
		Material: b.dev.NewMaterial(mat),
	}
}

// VectorGlyph draws an arrow of the given length from origin along dir.
// dir must already be unit length and length must be positive; callers skip
// degenerate samples instead of passing them here.
func (b *Builder) VectorGlyph(dir, origin geom.Vec3, length float64, color scene.Color, headLength, headWidth float64) *scene.Primitive {
	if !dir.IsUnit(unitTolerance) {
		panic(fmt.Sprintf("primitive: vector glyph direction %v is not unit length", dir))
	}
	if !(length > 0) {
		panic(fmt.Sprintf("primitive: vector glyph length %v is not positive", length))
	}
	return b.primitive(scene.KindArrow, scene.Arrow{
		Origin:     origin,
		Dir:        dir,
		Length:     length,
		HeadLength: headLength,
		HeadWidth:  headWidth,
	}, scene.Basic(color))
}

// Label is camera-facing text at position.
func (b *Builder) Label(text string, position geom.Vec3, color scene.Color) *scene.Primitive {
	p := b.primitive(scene.KindLabel, scene.Sprite{
		Text:     text,
		Position: position,
		Scale:    geom.V(2, 1, 1),
	}, scene.MaterialSpec{Color: color, Opacity: 1, Transparent: true})
	p.Name = text
	p.Texture = b.dev.NewTexture(text)
	return p
}

// CurveTube interpolates a smooth curve through points with the given
// number of samples and sweeps a tube of the given radius along it. A
// non-positive segments uses TubularSegments.
func (b *Builder) CurveTube(points []geom.Vec3, segments int, radius float64, closed bool, mat scene.MaterialSpec) *scene.Primitive {
	if segments <= 0 {
		segments = b.TubularSegments
	}
	if len(points) < 2 {
		panic(fmt.Sprintf("primitive: curve tube needs at least 2 points, got %d", len(points)))
	}
	ctrl := make([]geom.Vec3, len(points))
	copy(ctrl, points)

	path := geom.CatmullRom{Points: ctrl, Closed: closed}.Sample(segments)
	return b.primitive(scene.KindTube, scene.Tube{
		Control:        ctrl,
		Path:           path,
		Vertices:       geom.Extrude(path, radius, b.RadialSegments, closed),
		Radius:         radius,
		RadialSegments: b.RadialSegments,
		Closed:         closed,
	}, mat)
}

// Extent sizes an iso-surface. Sphere reads Radius; cylinder reads Radius,
// Height and Axis; plane reads Width, Height and Axis as its normal.
type Extent struct {
	Center  geom.Vec3
	Axis    geom.Vec3
	Radius  float64
	Height  float64
	Width   float64
	Opacity float64
}

// IsoSurface is a translucent reference surface. Spheres and cylinders are
// wireframe; planes are solid and double sided.
func (b *Builder) IsoSurface(kind scene.SurfaceKind, ext Extent, color scene.Color) *scene.Primitive {
	axis := ext.Axis
	if axis == geom.Zero {
		axis = geom.UnitY
	}
	opacity := ext.Opacity
	if opacity == 0 {
		opacity = 0.3
	}
	mat := scene.MaterialSpec{
		Color:       color,
		Opacity:     opacity,
		Transparent: true,
		Wireframe:   kind != scene.SurfacePlane,
		DoubleSided: kind == scene.SurfacePlane,
	}
	return b.primitive(scene.KindSurface, scene.Surface{
		Kind:   kind,
		Center: ext.Center,
		Axis:   axis,
		Radius: ext.Radius,
		Height: ext.Height,
		Width:  ext.Width,
	}, mat)
}

// Ring is a thin torus around normal.
func (b *Builder) Ring(center, normal geom.Vec3, radius, tube float64, mat scene.MaterialSpec) *scene.Primitive {
	return b.primitive(scene.KindRing, scene.Ring{
		Center:     center,
		Normal:     normal,
		Radius:     radius,
		TubeRadius: tube,
	}, mat)
}

// Polyline draws a 1px line through points.
func (b *Builder) Polyline(points []geom.Vec3, color scene.Color) *scene.Primitive {
	pts := make([]geom.Vec3, len(points))
	copy(pts, points)
	return b.primitive(scene.KindLine, scene.Polyline{Points: pts}, scene.Basic(color))
}

// Axes is the x (red), y (green), z (blue) reference triad.
func (b *Builder) Axes(length float64) *scene.Primitive {
	return b.primitive(scene.KindAxes, scene.Axes{Length: length}, scene.Basic(0xffffff))
}

// Glow is a lit material with an emissive tint.
func Glow(color, emissive scene.Color, intensity float64) scene.MaterialSpec {
	return scene.MaterialSpec{Color: color, Emissive: emissive, EmissiveIntensity: intensity, Opacity: 1}
}

// Charge is a solid sphere marking a point source.
func (b *Builder) Charge(center geom.Vec3, radius float64, mat scene.MaterialSpec) *scene.Primitive {
	return b.primitive(scene.KindSphere, scene.Ball{Center: center, Radius: radius}, mat)
}

// Conductor is a solid cylinder of the given height centred on center.
func (b *Builder) Conductor(center, axis geom.Vec3, radius, height float64, mat scene.MaterialSpec) *scene.Primitive {
	return b.primitive(scene.KindCylinder, scene.Rod{
		Center: center,
		Axis:   axis,
		Radius: radius,
		Height: height,
	}, mat)
}

// Sheet is a flat double-sided rectangle.
func (b *Builder) Sheet(center, normal geom.Vec3, width, height float64, mat scene.MaterialSpec) *scene.Primitive {
	mat.DoubleSided = true
	return b.primitive(scene.KindSheet, scene.Quad{
		Center: center,
		Normal: normal,
		Width:  width,
		Height: height,
	}, mat)
}
