package fields

import (
	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

var (
	gradientGlyph   = Glyph{Law: Linear, Scale: 0.1, Cap: latticeCap}
	divergenceGlyph = Glyph{Law: Linear, Scale: 0.2, Cap: latticeCap}
	curlGlyph       = Glyph{Law: Linear, Scale: 0.3, Cap: latticeCap}
)

// gradientMin hides arrows that would be too short to read.
const gradientMin = 0.1

// gradient renders ∇f for f = -(x²+y²+z²), so ∇f = -2r points inward.
func gradient(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.Gradient, p)

	axis := geom.Axis(-2, 2, 1)
	geom.Lattice3(axis, axis, axis, func(at geom.Vec3) {
		grad := at.Scale(-2)
		l := gradientGlyph.Length(2, at.Length())
		if l > gradientMin {
			d.arrow(grad, at, l, colorLattice, 0.15, 0.1)
		}
	})

	d.label("∇f", geom.V(0, 3, 0), colorLattice)
	return d.g
}

// divergence renders the source field F = r.
func divergence(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.Divergence, p)

	axis := geom.Axis(-2, 2, 0.8)
	geom.Lattice3(axis, axis, axis, func(at geom.Vec3) {
		d.arrow(at, at, divergenceGlyph.Length(1, at.Length()), 0xff00ff, 0.15, 0.1)
	})

	d.label("∇·F > 0", geom.V(0, 3, 0), 0xff00ff)
	d.label("Source", geom.V(0, -3, 0), 0xff00ff)
	return d.g
}

// curl renders the rotation F = (-y, x, 0) in the z = 0 plane plus a single
// callout arrow for ∇×F along +z.
func curl(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.Curl, p)

	for _, x := range geom.Axis(-2, 2, 0.6) {
		for _, y := range geom.Axis(-2, 2, 0.6) {
			f := geom.V(-y, x, 0)
			d.arrow(f, geom.V(x, y, 0), curlGlyph.Length(1, f.Length()), colorGauss, 0.15, 0.1)
		}
	}

	d.add(d.b.VectorGlyph(geom.UnitZ, geom.Zero, 2, 0xff0000, 0.4, 0.2))

	d.label("∇×F", geom.V(0.3, 0, 2.5), 0xff0000)
	d.label("Circulation", geom.V(0, -3, 0), colorGauss)
	return d.g
}
