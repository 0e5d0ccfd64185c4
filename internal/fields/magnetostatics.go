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
	wireLength = 8.0
	loopRadius = 2.0
	amperianR  = 2.5
)

var (
	conductorGlyph = Glyph{Law: InverseLinear, Scale: 0.5, Cap: 1.0}
	loopGlyph      = Glyph{Law: InverseLinear, Scale: 1, Cap: 1.5}
	ampereGlyph    = Glyph{Law: InverseLinear, Scale: 2, Cap: 1.2}
)

// Circulation returns the right-hand-rule direction of H at angle a around
// a current flowing along +y: ŷ × ρ̂.
func Circulation(a float64) geom.Vec3 {
	return geom.UnitY.Cross(geom.V(math.Cos(a), 0, math.Sin(a)))
}

func currentMaterial(intensity float64) scene.MaterialSpec {
	return primitive.Glow(colorCurrent, colorCurrent, intensity)
}

// wire is the shared straight-conductor scene: a rod along +y and H rings
// at five heights.
func wire(env *Env, c catalog.ConceptID, p config.Params) *draw {
	d := newDraw(env, c, p)
	d.add(d.b.Conductor(geom.Zero, geom.UnitY, 0.1, wireLength, currentMaterial(0.3)))
	d.label("I", geom.V(0.3, 4.2, 0), colorCurrent)

	for _, y := range geom.Axis(-3, 3, 1.5) {
		for _, r := range geom.Axis(1, 3, 0.5) {
			d.add(d.b.Ring(geom.V(0, y, 0), geom.UnitY, r, 0.02, scene.Basic(colorH)))
		}
	}

	if p.ShowFieldVectors {
		for _, r := range []float64{1, 2, 3} {
			for k := 0; k < 12; k++ {
				a := float64(k) * math.Pi / 6
				for _, y := range []float64{-2, 0, 2} {
					at := geom.V(r*math.Cos(a), y, r*math.Sin(a))
					d.arrow(Circulation(a), at, conductorGlyph.Length(p.Current, r), colorH, 0.2, 0.1)
				}
			}
		}
	}
	return d
}

func straightConductor(env *Env, p config.Params) *scene.Subgraph {
	return wire(env, catalog.StraightConductor, p).g
}

// fluxDensity is the straight conductor relabelled as B = μH.
func fluxDensity(env *Env, p config.Params) *scene.Subgraph {
	d := wire(env, catalog.MagneticFluxDensity, p)
	d.label("B = μH", geom.V(0, -4.5, 0), colorH)
	return d.g
}

// LoopFieldLine is a closed line in the meridian plane at azimuth phi that
// wraps the loop wire: up (+z) at radius inner, back down at radius outer.
// height is the half height.
func LoopFieldLine(phi, inner, outer, height float64, n int) []geom.Vec3 {
	rho := geom.V(math.Cos(phi), math.Sin(phi), 0)
	mid, half := (inner+outer)/2, (outer-inner)/2
	pts := make([]geom.Vec3, n)
	for j := range pts {
		t := float64(j) / float64(n) * 2 * math.Pi
		r := mid - half*math.Cos(t)
		pts[j] = rho.Scale(r).Add(geom.V(0, 0, height*math.Sin(t)))
	}
	return pts
}

// currentLoop has counter-clockwise current seen from +z, so the field
// inside the loop points +z.
func currentLoop(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.CurrentLoop, p)

	d.add(d.b.Ring(geom.Zero, geom.UnitZ, loopRadius, 0.1, currentMaterial(0.3)))
	d.label("I", geom.V(loopRadius+0.3, 0, 0), colorCurrent)

	mat := scene.Basic(colorH)
	for i := 0; i < 8; i++ {
		phi := float64(i) / 8 * 2 * math.Pi
		inner, outer := 0.8, 4.5
		if i%2 == 1 {
			inner, outer = 1.2, 3.2
		}
		d.tube(LoopFieldLine(phi, inner, outer, (outer-inner)*0.6, 16), 48, 0.02, true, mat)
	}

	for k := 0; k < 4; k++ {
		a := float64(k)*math.Pi/2 + math.Pi/4
		off := geom.V(0.5*math.Cos(a), 0.5*math.Sin(a), 0)
		line := []geom.Vec3{off.Add(geom.V(0, 0, -3)), off, off.Add(geom.V(0, 0, 3))}
		d.tube(line, 20, 0.02, false, mat)
	}

	if p.ShowFieldVectors {
		d.arrow(geom.UnitZ, geom.Zero, loopGlyph.Length(p.Current, loopRadius), colorH, 0.3, 0.15)
	}
	return d.g
}

// Helix returns the coil centreline: turns turns of the given radius along
// y, centred on the origin, with perTurn samples per turn.
func Helix(turns, perTurn int, radius, length float64) []geom.Vec3 {
	n := turns * perTurn
	pts := make([]geom.Vec3, n+1)
	for i := 0; i <= n; i++ {
		a := float64(i) / float64(perTurn) * 2 * math.Pi
		y := float64(i)/float64(n)*length - length/2
		pts[i] = geom.V(radius*math.Cos(a), y, radius*math.Sin(a))
	}
	return pts
}

func solenoid(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.Solenoid, p)
	const radius, length = 1.5, 8.0

	coil := Helix(10, 50, radius, length)
	d.tube(coil, len(coil), 0.08, false, currentMaterial(0.2))
	d.label("n turns/m", geom.V(0, 4.5, 0), colorCurrent)

	axis := geom.Axis(-1, 1, 0.4)
	for _, x := range axis {
		for _, z := range axis {
			if x*x+z*z <= radius*radius {
				d.arrow(geom.UnitY, geom.V(x, -3, z), 6, colorH, 0.2, 0.1)
			}
		}
	}

	mat := scene.Basic(colorH)
	for i := 0; i < 12; i++ {
		a := float64(i) / 12 * 2 * math.Pi
		rho := geom.V(math.Cos(a), 0, math.Sin(a))
		r := radius + 1
		line := []geom.Vec3{
			rho.Scale(r).Add(geom.V(0, length/2, 0)),
			rho.Scale(r + 2),
			rho.Scale(r).Add(geom.V(0, -length/2, 0)),
		}
		d.tube(line, 20, 0.02, false, mat)
	}
	return d.g
}

// currentSheet puts a sheet in the yz plane carrying K = -ŷ. On each side
// H = ½ K × n̂ with n̂ the outward normal.
func currentSheet(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.CurrentSheet, p)

	d.add(d.b.Sheet(geom.Zero, geom.UnitX, 8, 8, scene.MaterialSpec{Color: colorCurrent, Opacity: 0.3, Transparent: true}))
	d.label("K (surface current)", geom.V(0, 4.5, 0), colorCurrent)

	k := geom.UnitY.Neg()
	length := Glyph{Law: Constant, Scale: 1.5, Cap: 1.5}.Length(1, 0)
	axis := geom.Axis(-3, 3, 1)
	for _, y := range axis {
		for _, z := range axis {
			for _, n := range []geom.Vec3{geom.UnitX, geom.UnitX.Neg()} {
				h := k.Cross(n).Scale(0.5)
				d.arrow(h, n.Scale(0.5).Add(geom.V(0, y, z)), length, colorH, 0.2, 0.1)
			}
		}
	}
	return d.g
}

func biotSavart(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.BiotSavart, p)

	idl := geom.UnitY
	d.arrow(idl, geom.V(0, -0.5, 0), 1, colorCurrent, 0.3, 0.2)
	d.label("IdL", geom.V(0.3, 0.8, 0), colorCurrent)

	at := geom.V(3, 1, 2)
	d.add(d.b.Charge(at, 0.1, primitive.Glow(0xffffff, 0, 0)))
	d.label("P", at.Add(geom.V(0.2, 0.2, 0.2)), 0xffffff)

	r := at
	d.arrow(r, geom.Zero, r.Length(), 0xcccccc, 0.2, 0.1)
	d.label("R", r.Scale(0.5), 0xcccccc)

	dh := idl.Cross(r).Normalize()
	d.arrow(dh, at, 1.5, colorH, 0.3, 0.2)
	d.label("dH", at.Add(dh.Scale(1.8)), colorH)
	d.label("dH ∝ IdL×R/R³", geom.V(0, -4, 0), colorH)
	return d.g
}

// ampereCircuit draws 16 tangential H arrows along an Amperian circle.
func ampereCircuit(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.AmpereCircuit, p)

	d.add(d.b.Conductor(geom.Zero, geom.UnitY, 0.1, wireLength, currentMaterial(0.3)))
	d.label("I", geom.V(0.3, 4.2, 0), colorCurrent)
	d.add(d.b.Ring(geom.Zero, geom.UnitY, amperianR, 0.05, scene.Basic(colorGauss)))

	length := ampereGlyph.Length(p.Current, amperianR)
	for k := 0; k < 16; k++ {
		a := float64(k) * math.Pi / 8
		at := geom.V(amperianR*math.Cos(a), 0, amperianR*math.Sin(a))
		d.arrow(Circulation(a), at, length, colorH, 0.2, 0.1)
	}

	d.label("∮H·dl = I", geom.V(0, -4, 0), colorGauss)
	return d.g
}

// lorentzForce shows F = q v × B for a charge moving along +x through a
// uniform B along -z, and the circular orbit that force bends it into.
func lorentzForce(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.LorentzForce, p)
	pos := p.Positive()

	b := geom.UnitZ.Neg()
	axis := geom.Axis(-3, 3, 1)
	for _, x := range axis {
		for _, y := range axis {
			d.arrow(b, geom.V(x, y, 1), 2, colorLattice, 0.2, 0.1)
		}
	}
	d.label("B (into page)", geom.V(0, 4, 0), colorLattice)

	body, glow := scene.Color(0xffff00), scene.Color(0xaaaa00)
	if !pos {
		body, glow = 0x44aaff, 0x2266aa
	}
	d.add(d.b.Charge(geom.Zero, 0.2, primitive.Glow(body, glow, 0.3)))

	v := geom.V(2, 0, 0)
	d.arrow(v, geom.V(-1, 0, 0), v.Length(), 0xff0000, 0.3, 0.2)

	q := 1.0
	if !pos {
		q = -1
	}
	f := v.Cross(b).Scale(q).Normalize()
	d.arrow(f, geom.Zero, 2, colorGauss, 0.4, 0.2)

	d.label("v", geom.V(1, 0.5, 0), 0xff0000)
	d.label("F = q(v×B)", f.Scale(2.5), colorGauss)
	d.label(chargeSign(pos)+"q", geom.V(0.3, -0.3, 0), body)

	d.add(d.b.Ring(f.Scale(2), b, 2, 0.02, scene.MaterialSpec{Color: 0xff00ff, Opacity: 0.6, Transparent: true}))
	return d.g
}

// BFieldLine is one of the closed solenoidal B lines around the current
// column, starting at azimuth a.
func BFieldLine(a float64) []geom.Vec3 {
	step := 0.2
	n := int(2*math.Pi/step) + 1
	pts := make([]geom.Vec3, n)
	for i := range pts {
		t := float64(i) * step
		r := 3 + math.Sin(t)*0.5
		pts[i] = geom.V(r*math.Cos(a+t*0.1), math.Sin(t*2)*2, r*math.Sin(a+t*0.1))
	}
	return pts
}

func maxwellMagnetostatics(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.MaxwellMagnetostatics, p)

	d.add(d.b.Conductor(geom.Zero, geom.UnitY, 0.8, 6, scene.MaterialSpec{
		Color:             colorCurrent,
		Emissive:          colorCurrent,
		EmissiveIntensity: 0.2,
		Opacity:           0.6,
		Transparent:       true,
	}))
	d.label("J", geom.V(0, 3.5, 0), colorCurrent)

	for _, r := range geom.Axis(1.2, 2.5, 0.4) {
		d.add(d.b.Ring(geom.Zero, geom.UnitY, r, 0.03, scene.Basic(colorH)))
	}

	d.label("∇ × H = J", geom.V(0, -3.5, 0), colorGauss)
	d.label("∇ · B = 0", geom.V(0, -4.2, 0), colorGauss)

	mat := scene.Basic(colorLoopB)
	for i := 0; i < 6; i++ {
		d.tube(BFieldLine(float64(i)/6*2*math.Pi), 50, 0.02, true, mat)
	}
	return d.g
}
