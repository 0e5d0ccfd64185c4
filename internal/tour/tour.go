package tour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
)

var (
	ErrNoSteps        = errors.New("tour: scenario has no steps")
	ErrUnknownConcept = errors.New("tour: unknown concept")
)

// Scenario is a scripted walk through the catalog.
type Scenario struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Params      config.Overrides `yaml:"params"`
	Steps       []Step           `yaml:"steps"`
}

// Step loads one concept. Params are applied on top of the scenario-level
// overrides. Hold is how long the step stays on screen, in seconds.
type Step struct {
	Concept string           `yaml:"concept"`
	Params  config.Overrides `yaml:"params"`
	Hold    float64          `yaml:"hold"`
	Save    bool             `yaml:"save"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("tour: parse: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks every step names a known concept.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return ErrNoSteps
	}
	for i, st := range sc.Steps {
		if _, ok := catalog.Lookup(st.Concept); !ok {
			return fmt.Errorf("step %d %q: %w", i+1, st.Concept, ErrUnknownConcept)
		}
	}
	return nil
}

// Full returns a scenario visiting every concept in catalog order.
func Full(hold float64) *Scenario {
	sc := &Scenario{Name: "full", Description: "Every concept in catalog order"}
	for _, id := range catalog.IDs() {
		sc.Steps = append(sc.Steps, Step{Concept: id, Hold: hold})
	}
	return sc
}

// Saver persists a generated subgraph and returns its run id.
type Saver interface {
	Save(concept string, p config.Params, g *scene.Subgraph) (string, error)
}

// Result records what one step installed.
type Result struct {
	Step       int
	Concept    string
	Params     config.Params
	Primitives int
	Handles    int
	RunID      string
}

// Runner drives a lifecycle manager through a scenario.
type Runner struct {
	Manager *lifecycle.Manager
	Base    config.Params
	Store   Saver
	Log     *slog.Logger
	// OnStep is called after each step is installed, before the hold.
	OnStep func(Result)
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// Run executes the steps in order and leaves the last one installed. It
// stops at the first step whose parameters are out of range, or when ctx
// is done.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	log := r.logger()
	base := sc.Params.Apply(r.Base)
	results := make([]Result, 0, len(sc.Steps))

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		d, _ := catalog.Lookup(st.Concept)
		p := st.Params.Apply(base)
		p.Category = d.Category
		if err := p.Validate(); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		if r.Manager.Category() != d.Category {
			if err := r.Manager.SwitchCategory(d.Category); err != nil {
				log.Warn("switch category", "err", err)
			}
		}
		if err := r.Manager.Load(st.Concept, p); err != nil {
			log.Warn("release previous visualization", "step", i+1, "err", err)
		}

		g := r.Manager.Active()
		res := Result{
			Step:       i + 1,
			Concept:    st.Concept,
			Params:     p,
			Primitives: g.Len(),
			Handles:    g.Handles(),
		}
		if st.Save && r.Store != nil {
			id, err := r.Store.Save(st.Concept, p, g)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			res.RunID = id
		}
		log.Info("tour step",
			"step", res.Step,
			"of", len(sc.Steps),
			"concept", st.Concept,
			"primitives", res.Primitives,
		)
		results = append(results, res)
		if r.OnStep != nil {
			r.OnStep(res)
		}

		if st.Hold > 0 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(time.Duration(st.Hold * float64(time.Second))):
			}
		}
	}
	return results, nil
}
