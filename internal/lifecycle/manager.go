package lifecycle

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/fields"
	"github.com/san-kum/emviz/internal/scene"
)

// Tag is the reserved name of the subgraph the manager installs.
const Tag = "currentVisualization"

// State is the manager's lifecycle state.
type State int

const (
	Empty State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Manager installs at most one generated subgraph under a scene root and
// releases its resources when it is replaced. It is not safe for
// concurrent use; hosts drive it from their frame or event loop.
type Manager struct {
	root     *scene.Root
	env      *fields.Env
	log      *slog.Logger
	active   *scene.Subgraph
	activeID string
	category catalog.Category
}

type Option func(*Manager)

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithRand sets the random source used by stochastic generators when the
// parameters carry no seed.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) { m.env.Rand = r }
}

func New(root *scene.Root, dev scene.Device, opts ...Option) *Manager {
	m := &Manager{
		root: root,
		env:  fields.NewEnv(dev, 0),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) State() State {
	if m.active == nil {
		return Empty
	}
	return Active
}

// Active returns the installed subgraph, or nil when Empty.
func (m *Manager) Active() *scene.Subgraph { return m.active }

// ActiveID returns the concept id of the installed subgraph.
func (m *Manager) ActiveID() string { return m.activeID }

// Category returns the category last switched to.
func (m *Manager) Category() catalog.Category { return m.category }

// Load replaces the active subgraph with a fresh one for id built from a
// snapshot of p. Unknown ids install an empty subgraph. The returned error
// only reports failures to release the previous subgraph; the new one is
// installed regardless.
func (m *Manager) Load(id string, p config.Params) error {
	err := m.Clear()

	snap := p
	snap.ActiveConcept = id
	if _, ok := catalog.Lookup(id); !ok {
		m.log.Warn("unknown concept, installing empty visualization", "concept", id)
	}

	g := fields.Generate(m.env, id, snap)
	g.Name = Tag
	m.root.Attach(g)
	m.active = g
	m.activeID = id

	m.log.Debug("visualization loaded",
		"concept", id,
		"primitives", g.Len(),
		"handles", g.Handles(),
	)
	return err
}

// Clear disposes and detaches the active subgraph. Every handle is
// attempted even if some fail; failures are joined into the returned
// error. Clearing when Empty is a no-op.
func (m *Manager) Clear() error {
	if m.active == nil {
		return nil
	}
	g := m.active
	err := g.Dispose()
	m.root.Detach(Tag)
	m.active = nil
	m.activeID = ""

	if err != nil {
		m.log.Error("dispose visualization", "concept", g.Name, "err", err)
		return fmt.Errorf("lifecycle: clear: %w", err)
	}
	m.log.Debug("visualization cleared")
	return nil
}

// SwitchCategory clears the active visualization and records c.
func (m *Manager) SwitchCategory(c catalog.Category) error {
	err := m.Clear()
	m.category = c
	m.log.Debug("category switched", "category", c.String())
	return err
}

// Reload rebuilds the active concept with new parameters. It is a no-op
// when Empty.
func (m *Manager) Reload(p config.Params) error {
	if m.active == nil {
		return nil
	}
	return m.Load(m.activeID, p)
}
