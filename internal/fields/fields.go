package fields

import (
	"math/rand"
	"time"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/primitive"
	"github.com/san-kum/emviz/internal/scene"
)

// Generator builds the subgraph of one concept from a parameter snapshot.
// Generators read nothing but env and p and never touch the scene root.
type Generator func(env *Env, p config.Params) *scene.Subgraph

// Env is what a generator may use besides its parameters.
type Env struct {
	Build *primitive.Builder
	// Rand drives stochastic sampling when the parameters carry no seed.
	Rand *rand.Rand
}

// NewEnv binds a builder to dev. A zero seed means time-seeded.
func NewEnv(dev scene.Device, seed int64) *Env {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Env{
		Build: primitive.New(dev),
		Rand:  rand.New(rand.NewSource(seed)),
	}
}

func (e *Env) rng(p config.Params) *rand.Rand {
	if p.Seed != 0 {
		return rand.New(rand.NewSource(p.Seed))
	}
	if e.Rand != nil {
		return e.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

var generators = [catalog.NumConcepts]Generator{
	catalog.CoordinatesCartesian:   cartesian,
	catalog.CoordinatesCylindrical: cylindrical,
	catalog.CoordinatesSpherical:   spherical,
	catalog.Gradient:               gradient,
	catalog.Divergence:             divergence,
	catalog.Curl:                   curl,
	catalog.PointCharge:            pointCharge,
	catalog.Dipole:                 dipole,
	catalog.LineCharge:             lineCharge,
	catalog.PlaneCharge:            planeCharge,
	catalog.DisplacementFlux:       displacementFlux,
	catalog.GaussLaw:               gaussLaw,
	catalog.LorentzForce:           lorentzForce,
	catalog.StraightConductor:      straightConductor,
	catalog.CurrentLoop:            currentLoop,
	catalog.Solenoid:               solenoid,
	catalog.CurrentSheet:           currentSheet,
	catalog.MagneticFluxDensity:    fluxDensity,
	catalog.BiotSavart:             biotSavart,
	catalog.AmpereCircuit:          ampereCircuit,
	catalog.MaxwellMagnetostatics:  maxwellMagnetostatics,
}

// Lookup returns the generator for c.
func Lookup(c catalog.ConceptID) (Generator, bool) {
	if !c.Valid() || generators[c] == nil {
		return nil, false
	}
	return generators[c], true
}

// Generate builds the subgraph for the concept named id. Unknown ids yield
// an empty subgraph.
func Generate(env *Env, id string, p config.Params) *scene.Subgraph {
	c, ok := catalog.ParseConcept(id)
	if !ok {
		return scene.NewSubgraph(id)
	}
	gen, ok := Lookup(c)
	if !ok {
		return scene.NewSubgraph(id)
	}
	return gen(env, p)
}

// draw is the per-call helper generators compose primitives through.
type draw struct {
	b *primitive.Builder
	g *scene.Subgraph
	p config.Params
}

func newDraw(env *Env, c catalog.ConceptID, p config.Params) *draw {
	return &draw{b: env.Build, g: scene.NewSubgraph(c.String()), p: p}
}

func (d *draw) add(p *scene.Primitive) { d.g.Add(p) }

// label adds text when labels are enabled.
func (d *draw) label(text string, pos geom.Vec3, color scene.Color) {
	if d.p.ShowLabels {
		d.add(d.b.Label(text, pos, color))
	}
}

// arrow adds a glyph along v. Zero, non-finite or zero-length samples are
// skipped.
func (d *draw) arrow(v, origin geom.Vec3, length float64, color scene.Color, headLength, headWidth float64) bool {
	dir, ok := v.Unit()
	if !ok || !(length > 0) {
		return false
	}
	d.add(d.b.VectorGlyph(dir, origin, length, color, headLength, headWidth))
	return true
}

func (d *draw) tube(points []geom.Vec3, segments int, radius float64, closed bool, mat scene.MaterialSpec) {
	if len(points) < 2 {
		return
	}
	d.add(d.b.CurveTube(points, segments, radius, closed, mat))
}
