package tui

import (
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/viz"
)

const welcomeText = "Select a visualization to see its description and governing equation."

type focus int

const (
	focusMenu focus = iota
	focusControls
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	params config.Params
	root   *scene.Root
	dev    *scene.Tracker
	mgr    *lifecycle.Manager
	orbit  *viz.Orbit
	styles viz.Styles
	log    *slog.Logger

	category  catalog.Category
	concepts  []catalog.Descriptor
	cursor    int // 0 is the "choose a visualization" entry
	focus     focus
	ctlCursor int

	playing  bool
	showHelp bool
	err      error

	width, height int
	last          time.Time
}

// New builds the terminal UI. When initial names a known concept it is
// loaded straight away, otherwise the welcome panel is shown.
func New(cfg *config.Config, log *slog.Logger, initial string) *model {
	if log == nil {
		log = slog.Default()
	}
	root := scene.NewRoot()
	dev := scene.NewTracker()
	orbit := viz.NewOrbit()
	orbit.AutoRotate = cfg.View.AutoRotate
	orbit.AutoRotateSpeed = cfg.View.AutoRotateSpeed

	m := &model{
		params: cfg.Params.Clamp(),
		root:   root,
		dev:    dev,
		mgr:    lifecycle.New(root, dev, lifecycle.WithLogger(log)),
		orbit:  orbit,
		styles: viz.NewStyles(viz.GetTheme(cfg.View.Theme)),
		log:    log,

		playing: cfg.View.AutoRotate,
		width:   cfg.View.Width + 44,
		height:  cfg.View.Height + 10,
	}

	cat := m.params.Category
	if d, ok := catalog.Lookup(initial); ok {
		cat = d.Category
	}
	m.switchCategory(cat)
	if initial != "" {
		m.selectID(initial)
	}
	return m
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		dt := 1.0 / 30
		if !m.last.IsZero() {
			dt = math.Min(now.Sub(m.last).Seconds(), 0.1)
		}
		m.last = now
		m.orbit.Tick(dt)
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if err := m.mgr.Clear(); err != nil {
			m.log.Error("clear on exit", "err", err)
		}
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "1":
		m.switchCategory(catalog.Electrostatics)
	case "2":
		m.switchCategory(catalog.Magnetostatics)
	case "tab":
		if m.focus == focusMenu {
			m.focus = focusControls
		} else {
			m.focus = focusMenu
		}
	case "p":
		m.playing = !m.playing
		m.orbit.AutoRotate = m.playing
	case "r":
		m.orbit.Reset()
	case "t":
		m.styles = viz.NewStyles(viz.NextTheme(m.styles.Theme))
	case "a":
		m.orbit.RotateLeft(0.3)
	case "d":
		m.orbit.RotateLeft(-0.3)
	case "w":
		m.orbit.RotateUp(0.2)
	case "s":
		m.orbit.RotateUp(-0.2)
	case "+", "=":
		m.orbit.Dolly(0.9)
	case "-", "_":
		m.orbit.Dolly(1.1)
	default:
		if m.focus == focusMenu {
			m.menuKey(msg)
		} else {
			m.controlKey(msg)
		}
	}
	return m, nil
}

func (m *model) menuKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.concepts) {
			m.cursor++
		}
	case "enter", " ":
		m.selectIndex(m.cursor)
	}
}

func (m *model) controlKey(msg tea.KeyMsg) {
	ctls := config.ControlsFor(m.category)
	switch msg.String() {
	case "up", "k":
		if m.ctlCursor > 0 {
			m.ctlCursor--
		}
	case "down", "j":
		if m.ctlCursor < len(ctls)-1 {
			m.ctlCursor++
		}
	case "left", "h":
		m.adjust(ctls[m.ctlCursor], -1)
	case "right", "l", "enter", " ":
		m.adjust(ctls[m.ctlCursor], 1)
	}
}

func (m *model) switchCategory(c catalog.Category) {
	m.category = c
	m.params.Category = c
	m.concepts = catalog.ByCategory(c)
	m.cursor, m.ctlCursor = 0, 0
	m.params.ActiveConcept = ""
	m.report(m.mgr.SwitchCategory(c))
}

func (m *model) selectID(id string) {
	for i, d := range m.concepts {
		if d.ID == id {
			m.selectIndex(i + 1)
			return
		}
	}
	m.log.Warn("concept not in current category", "concept", id, "category", m.category.String())
}

func (m *model) selectIndex(i int) {
	m.cursor = i
	if i == 0 {
		m.params.ActiveConcept = ""
		m.report(m.mgr.Clear())
		return
	}
	id := m.concepts[i-1].ID
	m.params.ActiveConcept = id
	m.report(m.mgr.Load(id, m.params))
}

// adjust moves a slider one step in dir or flips a toggle, then rebuilds
// the active visualization if the control affects it.
func (m *model) adjust(ctl config.Control, dir float64) {
	switch ctl {
	case config.ControlCharge:
		m.params.Charge = stepValue(m.params.Charge, dir, config.MinCharge, config.MaxCharge)
	case config.ControlCurrent:
		m.params.Current = stepValue(m.params.Current, dir, config.MinCurrent, config.MaxCurrent)
	case config.ControlLabels:
		m.params.ShowLabels = !m.params.ShowLabels
	case config.ControlEquipotential:
		m.params.ShowEquipotential = !m.params.ShowEquipotential
	case config.ControlVectors:
		m.params.ShowFieldVectors = !m.params.ShowFieldVectors
	}
	if config.Triggers(ctl, m.category) && m.mgr.State() == lifecycle.Active {
		m.report(m.mgr.Reload(m.params))
	}
}

func (m *model) report(err error) {
	m.err = err
	if err != nil {
		m.log.Error("visualization", "err", err)
	}
}

func stepValue(v, dir, lo, hi float64) float64 {
	v = math.Round((v+dir*config.SliderStep)*10) / 10
	return math.Max(lo, math.Min(hi, v))
}

// Run starts the terminal UI in the alternate screen.
func Run(cfg *config.Config, log *slog.Logger, initial string) error {
	_, err := tea.NewProgram(New(cfg, log, initial), tea.WithAltScreen()).Run()
	return err
}
