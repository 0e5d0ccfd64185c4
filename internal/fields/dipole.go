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
	dipoleHalfSep = 1.0
	dipoleLines   = 12
	dipoleSamples = 100
	dipoleBound   = 6.0
)

// DipoleLine returns the field line of charges +q at (+1,0,0) and -q at
// (-1,0,0) that leaves the positive charge at angle alpha from +x, in the
// upper half of the xy plane.
//
// With θ₊ and θ₋ the angles from +x at each charge, field lines of the pair
// satisfy cos θ₊ - cos θ₋ = cos α - 1. The line is sampled at evenly spaced
// θ₊ in [α, π]; each point is where the rays from both charges meet. Points
// farther than 6 from the origin are dropped, which splits a wide line into
// separate runs.
func DipoleLine(alpha float64, samples int) [][]geom.Vec3 {
	c := math.Cos(alpha) - 1
	plus := geom.V(dipoleHalfSep, 0, 0)

	var runs [][]geom.Vec3
	var run []geom.Vec3
	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}

	for i := 0; i <= samples; i++ {
		tp := alpha + (math.Pi-alpha)*float64(i)/float64(samples)
		tm := math.Acos(clamp(math.Cos(tp)-c, -1, 1))

		den := math.Sin(tp - tm)
		if math.Abs(den) < 1e-12 {
			flush()
			continue
		}
		// law of sines in the triangle (+q, -q, point)
		s := 2 * dipoleHalfSep * math.Sin(tm) / den
		pt := plus.Add(geom.V(math.Cos(tp), math.Sin(tp), 0).Scale(s))
		if !pt.IsFinite() || pt.Length() > dipoleBound {
			flush()
			continue
		}
		run = append(run, pt)
	}
	flush()
	return runs
}

// DipoleAngles are the launch angles α_k = (k+1)π/13.
func DipoleAngles() []float64 {
	out := make([]float64, dipoleLines)
	for k := range out {
		out[k] = float64(k+1) * math.Pi / (dipoleLines + 1)
	}
	return out
}

// dipole draws every line run twice: as computed and mirrored through the
// inter-charge axis (y -> -y).
func dipole(env *Env, p config.Params) *scene.Subgraph {
	d := newDraw(env, catalog.Dipole, p)

	d.add(d.b.Charge(geom.V(dipoleHalfSep, 0, 0), 0.2, primitive.Glow(colorPositive, colorPositiveGlow, 0.3)))
	d.add(d.b.Charge(geom.V(-dipoleHalfSep, 0, 0), 0.2, primitive.Glow(colorNegative, colorNegativeGlow, 0.3)))
	d.label("+Q", geom.V(1.3, 0.3, 0), colorPositive)
	d.label("-Q", geom.V(-1.3, 0.3, 0), colorNegative)

	mat := scene.Basic(colorDipole)
	for _, alpha := range DipoleAngles() {
		for _, run := range DipoleLine(alpha, dipoleSamples) {
			mirror := make([]geom.Vec3, len(run))
			for i, pt := range run {
				mirror[i] = pt.ReflectY()
			}
			d.tube(run, 50, 0.02, false, mat)
			d.tube(mirror, 50, 0.02, false, mat)
		}
	}
	return d.g
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
