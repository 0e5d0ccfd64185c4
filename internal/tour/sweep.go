package tour

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/scene"
)

var ErrBadSweep = errors.New("tour: invalid sweep")

// Sweep reloads one concept across evenly spaced values of a slider.
type Sweep struct {
	Concept string
	Control config.Control
	Min     float64
	Max     float64
	Steps   int
}

type SweepPoint struct {
	Value      float64
	Primitives int
	Handles    int
	// MaxArrow is the longest arrow glyph in the subgraph.
	MaxArrow float64
}

// RunSweep loads sw.Concept once and then reloads it for every value.
// Only the charge and current sliders can be swept.
func (r *Runner) RunSweep(sw Sweep) ([]SweepPoint, error) {
	d, ok := catalog.Lookup(sw.Concept)
	if !ok {
		return nil, fmt.Errorf("%q: %w", sw.Concept, ErrUnknownConcept)
	}
	if sw.Steps < 2 || sw.Max < sw.Min {
		return nil, fmt.Errorf("%d steps over [%g, %g]: %w", sw.Steps, sw.Min, sw.Max, ErrBadSweep)
	}
	if sw.Control != config.ControlCharge && sw.Control != config.ControlCurrent {
		return nil, fmt.Errorf("control %v: %w", sw.Control, ErrBadSweep)
	}

	p := r.Base
	p.Category = d.Category
	if err := r.Manager.Load(sw.Concept, p); err != nil {
		r.logger().Warn("release previous visualization", "err", err)
	}

	step := (sw.Max - sw.Min) / float64(sw.Steps-1)
	out := make([]SweepPoint, 0, sw.Steps)
	for i := 0; i < sw.Steps; i++ {
		v := sw.Min + float64(i)*step
		if sw.Control == config.ControlCharge {
			p.Charge = v
		} else {
			p.Current = v
		}
		if err := p.Validate(); err != nil {
			return out, err
		}
		if err := r.Manager.Reload(p); err != nil {
			r.logger().Warn("release previous visualization", "err", err)
		}
		g := r.Manager.Active()
		out = append(out, SweepPoint{
			Value:      v,
			Primitives: g.Len(),
			Handles:    g.Handles(),
			MaxArrow:   maxArrow(g),
		})
		r.logger().Debug("sweep", "concept", sw.Concept, "control", sw.Control.String(), "value", v)
	}
	return out, nil
}

func maxArrow(g *scene.Subgraph) float64 {
	longest := 0.0
	g.Traverse(func(p *scene.Primitive) {
		if a, ok := p.Shape().(scene.Arrow); ok {
			longest = math.Max(longest, a.Length)
		}
	})
	return longest
}
