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
	chargeRadius = 0.25

	// radial arrows of a point charge span [rayInner, rayOuter]
	rayInner  = 0.3
	rayOuter  = 5.0
	rayRings  = 8
	rayPerRow = 8

	latticeCap = 0.8
	gaussR     = 3.0
	gaussN     = 40
)

// pointLattice lengths follow a unit source; the charge only sets direction.
var pointLattice = Glyph{Law: InverseSquare, Scale: 1, Cap: latticeCap}

// RayDirections returns the 64 unit directions of the point-charge rays:
// 8 polar rings at θ = (i+½)π/8, each with 8 azimuths φ = 2πj/8.
func RayDirections() []geom.Vec3 {
	out := make([]geom.Vec3, 0, rayRings*rayPerRow)
	for i := 0; i < rayRings; i++ {
		theta := (float64(i) + 0.5) * math.Pi / rayRings
		for j := 0; j < rayPerRow; j++ {
			phi := float64(j) / rayPerRow * 2 * math.Pi
			out = append(out, geom.Direction(theta, phi))
		}
	}
	return out
}

func chargeGlyph(d *draw, center geom.Vec3, radius, intensity float64, positive bool) {
	body, glow := chargeColors(positive)
	d.add(d.b.Charge(center, radius, primitive.Glow(body, glow, intensity)))
}

// pointCharge draws 64 rays starting just outside the charge glyph. A
// negative charge keeps the same origins and flips the direction.
func pointCharge(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.PointCharge, p)
	pos := p.Positive()

	chargeGlyph(d, geom.Zero, chargeRadius, 0.5, pos)
	body, _ := chargeColors(pos)
	d.label(chargeSign(pos)+"Q", geom.V(0, 0.5, 0), body)

	color := colorOutward
	if !pos {
		color = colorInward
	}
	for _, r := range RayDirections() {
		dir := r
		if !pos {
			dir = r.Neg()
		}
		d.arrow(dir, r.Scale(rayInner), rayOuter-rayInner, color, 0.3, 0.15)
	}

	if p.ShowEquipotential {
		for _, r := range geom.Axis(1, 4.2, 0.8) {
			d.add(d.b.IsoSurface(scene.SurfaceSphere, primitive.Extent{Radius: r}, colorEquipot))
		}
	}

	if p.ShowFieldVectors {
		axis := geom.Axis(-3, 3, 1.5)
		geom.Lattice3(axis, axis, axis, func(at geom.Vec3) {
			dir, ok := at.Unit()
			if !ok {
				return
			}
			if !pos {
				dir = dir.Neg()
			}
			d.arrow(dir, at, pointLattice.Length(1, at.Length()), colorLattice, 0.2, 0.1)
		})
	}
	return d.g
}

// lineCharge places the line along z and draws 12 radial arrows in each of
// five z slices.
func lineCharge(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.LineCharge, p)
	pos := p.Positive()

	d.add(d.b.Conductor(geom.Zero, geom.UnitZ, 0.05, 8, primitive.Glow(0xffaa00, 0xaa6600, 0.3)))
	d.label("λ", geom.V(0.3, 0, 4.2), 0xffaa00)

	const inner, length = 0.1, 3.5
	for _, z := range geom.Axis(-3, 3, 1.5) {
		for i := 0; i < 12; i++ {
			a := float64(i) / 12 * 2 * math.Pi
			rho := geom.V(math.Cos(a), math.Sin(a), 0)
			slice := geom.V(0, 0, z)
			if pos {
				d.arrow(rho, slice.Add(rho.Scale(inner)), length, colorDipole, 0.3, 0.15)
			} else {
				d.arrow(rho.Neg(), slice.Add(rho.Scale(inner+length)), length, colorDipole, 0.3, 0.15)
			}
		}
	}

	if p.ShowEquipotential {
		for _, r := range geom.Axis(1, 3, 0.5) {
			d.add(d.b.IsoSurface(scene.SurfaceCylinder, primitive.Extent{Axis: geom.UnitZ, Radius: r, Height: 8}, 0xff6600))
		}
	}
	return d.g
}

// planeCharge draws a uniform grid of equal arrows on both sides of the
// z = 0 plane.
func planeCharge(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.PlaneCharge, p)
	pos := p.Positive()

	d.add(d.b.Sheet(geom.Zero, geom.UnitZ, 8, 8, scene.MaterialSpec{Color: 0x666666, Opacity: 0.4, Transparent: true}))
	d.label("σ", geom.V(0, 0, 0.5), 0x666666)

	const gap = 0.1
	length := Glyph{Law: Constant, Scale: 2.5, Cap: 2.5}.Length(1, 0)
	axis := geom.Axis(-3, 3, 1)
	for _, x := range axis {
		for _, y := range axis {
			for _, side := range []float64{1, -1} {
				n := geom.V(0, 0, side)
				if pos {
					d.arrow(n, geom.V(x, y, side*gap), length, 0xff00aa, 0.3, 0.15)
				} else {
					d.arrow(n.Neg(), geom.V(x, y, side*(gap+length)), length, 0xff00aa, 0.3, 0.15)
				}
			}
		}
	}
	return d.g
}

// displacementFlux nests the point-charge field and marks it as D.
func displacementFlux(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.DisplacementFlux, p)
	d.g.AddChild(pointCharge(env, p))
	d.label("D = εE", geom.V(0, -5, 0), colorLattice)
	return d.g
}

// gaussLaw samples flux arrows at uniformly random points of the Gaussian
// sphere.
func gaussLaw(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.GaussLaw, p)
	pos := p.Positive()

	chargeGlyph(d, geom.Zero, chargeRadius, 0.5, pos)
	d.add(d.b.IsoSurface(scene.SurfaceSphere, primitive.Extent{Radius: gaussR}, colorGauss))

	body, _ := chargeColors(pos)
	d.label("Q", geom.V(0.5, 0.5, 0), body)
	d.label("Gaussian Surface", geom.V(0, -4, 0), colorGauss)

	rng := env.rng(p)
	for i := 0; i < gaussN; i++ {
		n := geom.UniformSphere(rng)
		dir := n
		if !pos {
			dir = n.Neg()
		}
		d.arrow(dir, n.Scale(gaussR), latticeCap, colorGauss, 0.2, 0.1)
	}
	return d.g
}
