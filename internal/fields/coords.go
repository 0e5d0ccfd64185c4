package fields

import (
	"math"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/primitive"
	"github.com/san-kum/emviz/internal/scene"
)

const (
	axesLength      = 4.0
	axisLabelOffset = 4.5
	meridianPoints  = 50
)

func frame(env *Env, c catalog.ConceptID, p config.Params) *draw {
	d := newDraw(env, c, p)
	d.add(d.b.Axes(axesLength))
	d.label("X", geom.V(axisLabelOffset, 0, 0), colorAxisX)
	d.label("Y", geom.V(0, axisLabelOffset, 0), colorAxisY)
	d.label("Z", geom.V(0, 0, axisLabelOffset), colorAxisZ)
	return d
}

func cartesian(env *Env, p config.Params) *scene.Subgraph {
	return frame(env, catalog.CoordinatesCartesian, p).g
}

// cylindrical adds ρ rings at radii 1..3 and φ spokes every π/8.
func cylindrical(env *Env, p config.Params) *scene.Subgraph {
	d := frame(env, catalog.CoordinatesCylindrical, p)

	for r := 1; r <= 3; r++ {
		d.add(d.b.Ring(geom.Zero, geom.UnitY, float64(r), 0.02, scene.Basic(0x888888)))
	}
	for k := 0; k < 16; k++ {
		a := float64(k) * math.Pi / 8
		end := geom.V(axesLength*math.Cos(a), 0, axesLength*math.Sin(a))
		d.add(d.b.Polyline([]geom.Vec3{geom.Zero, end}, 0x666666))
	}

	d.label("ρ", geom.V(2.2, 0.3, 0), colorCoord)
	d.label("φ", geom.V(-0.3, 2.2, 0), colorCoord)
	d.label("z", geom.V(0.3, 0, 3.5), colorCoord)
	return d.g
}

// spherical adds r shells at radii 1..4 and eight great circles through
// the poles.
func spherical(env *Env, p config.Params) *scene.Subgraph {
	d := frame(env, catalog.CoordinatesSpherical, p)

	for r := 1; r <= 4; r++ {
		d.add(d.b.IsoSurface(scene.SurfaceSphere, primitive.Extent{Radius: float64(r), Opacity: 0.2}, 0x666666))
	}
	for i := 0; i < 8; i++ {
		a := float64(i) / 8 * 2 * math.Pi
		u := geom.V(math.Cos(a), 0, math.Sin(a))
		d.add(d.b.Polyline(geom.Circle(geom.Zero, u, geom.UnitY, axesLength, meridianPoints), 0x444444))
	}

	d.label("r", geom.V(3, 3, 3), colorCoord)
	d.label("θ", geom.V(0, 4.2, 0), colorCoord)
	d.label("φ", geom.V(4.2, 0, 0), colorCoord)
	return d.g
}
