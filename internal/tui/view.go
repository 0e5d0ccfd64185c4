package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/viz"
)

const sidebarWidth = 40

func (m model) View() string {
	s := m.styles
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Title.Render("EMVIZ")+"  ",
		s.Badge.Render(m.category.Badge()),
		"  ",
		m.viewTabs(),
	)

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.viewMenu(),
		s.Separator(sidebarWidth-4),
		m.viewControls(),
		s.Separator(sidebarWidth-4),
		m.viewStatus(),
	)
	side = s.Panel.Width(sidebarWidth).Render(side)

	main := lipgloss.JoinVertical(lipgloss.Left, m.viewPreview(), m.viewDescription())
	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", main)

	footer := s.Hints("1/2", "unit", "tab", "focus", "↑↓", "select", "←→", "adjust",
		"p", "play", "r", "reset", "wasd", "orbit", "+/-", "zoom", "t", "theme", "q", "quit")

	out := header + "\n\n" + body + "\n" + footer
	if m.showHelp {
		out = m.viewHelp() + "\n" + out
	}
	return out
}

func (m model) viewTabs() string {
	var tabs []string
	for _, c := range catalog.Categories() {
		st := m.styles.Tab
		if c == m.category {
			st = m.styles.TabOn
		}
		tabs = append(tabs, st.Render(c.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) viewMenu() string {
	s := m.styles
	var b strings.Builder
	title := "VISUALIZATIONS"
	if m.focus == focusMenu {
		title = "▸ " + title
	}
	b.WriteString(s.Title.Render(title) + "\n")

	entries := append([]string{"Choose a visualization..."}, labels(m.concepts)...)
	for i, e := range entries {
		marker := "  "
		st := s.Item
		if i == m.cursor {
			marker = "› "
			st = s.ItemOn
		}
		if i > 0 && m.mgr.ActiveID() == m.concepts[i-1].ID {
			e += " ●"
		}
		b.WriteString(st.Render(marker+e) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m model) viewControls() string {
	s := m.styles
	var b strings.Builder
	title := "PARAMETERS"
	if m.focus == focusControls {
		title = "▸ " + title
	}
	b.WriteString(s.Title.Render(title) + "\n")

	for i, ctl := range config.ControlsFor(m.category) {
		var val string
		switch ctl {
		case config.ControlCharge:
			val = viz.Slider(m.params.Charge, config.MinCharge, config.MaxCharge, 12)
		case config.ControlCurrent:
			val = viz.Slider(m.params.Current, config.MinCurrent, config.MaxCurrent, 12)
		case config.ControlLabels:
			val = viz.Toggle(m.params.ShowLabels)
		case config.ControlEquipotential:
			val = viz.Toggle(m.params.ShowEquipotential)
		case config.ControlVectors:
			val = viz.Toggle(m.params.ShowFieldVectors)
		}
		name := ctl.String()
		if m.focus == focusControls && i == m.ctlCursor {
			b.WriteString(s.ItemOn.Render("› "+fmt.Sprintf("%-24s", name)) + s.Value.Render(val) + "\n")
		} else {
			b.WriteString(s.Item.Render("  "+fmt.Sprintf("%-24s", name)) + s.Muted.Render(val) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m model) viewStatus() string {
	s := m.styles
	play := s.Paused.Render("▶ Play")
	if m.playing {
		play = s.Playing.Render("⏸ Pause")
	}
	state := m.mgr.State().String()
	line := fmt.Sprintf("%s  %s %s  %s %d", play,
		s.Muted.Render("state"), s.Value.Render(state),
		s.Muted.Render("live"), m.dev.Live())
	if m.err != nil {
		line += "\n" + s.Paused.Render(m.err.Error())
	}
	return line
}

func (m model) canvasSize() (int, int) {
	w := m.width - sidebarWidth - 8
	h := m.height - 16
	if w < 30 {
		w = 30
	}
	if h < 10 {
		h = 10
	}
	return w, h
}

func (m model) viewPreview() string {
	w, h := m.canvasSize()
	if m.mgr.State() == lifecycle.Empty {
		blank := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			m.styles.Title.Render("Electromagnetic Field Visualizer")+"\n"+
				m.styles.Muted.Render("pick a unit and a visualization to begin"))
		return m.styles.Canvas.Render(blank)
	}
	c := viz.Snapshot(m.root, m.orbit, w, h)
	return m.styles.Canvas.Render(strings.TrimSuffix(c.Render(), "\n"))
}

func (m model) viewDescription() string {
	s := m.styles
	w, _ := m.canvasSize()
	d, ok := catalog.Lookup(m.mgr.ActiveID())
	if !ok {
		return s.Panel.Width(w).Render(s.Muted.Render(welcomeText))
	}
	text := s.ItemOn.Render(d.Label) + "\n" +
		lipgloss.NewStyle().Width(w-2).Render(d.Description) + "\n\n" +
		s.Equation.Render(d.Equation)
	return s.Panel.Width(w).Render(text)
}

func (m model) viewHelp() string {
	rows := [][2]string{
		{"1 / 2", "electrostatics / magnetostatics"},
		{"tab", "switch between menu and parameters"},
		{"↑ ↓", "move selection"},
		{"enter", "load visualization"},
		{"← →", "adjust slider or toggle"},
		{"p", "play or pause auto-rotate"},
		{"r", "reset camera"},
		{"w a s d", "orbit"},
		{"+ -", "zoom"},
		{"t", "cycle theme"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("%-9s", r[0])) + m.styles.Muted.Render(r[1]) + "\n")
	}
	return m.styles.Panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

func labels(ds []catalog.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Label
	}
	return out
}
