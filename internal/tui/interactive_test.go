package tui

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/viz"
)

func newTestModel(initial string) model {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return *New(config.DefaultConfig(), log, initial)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(model)
	}
	return m
}

func TestNew_StartsEmpty(t *testing.T) {
	m := newTestModel("")
	if m.mgr.State() != lifecycle.Empty {
		t.Errorf("state = %v, want empty", m.mgr.State())
	}
	if m.root.Len() != 0 {
		t.Errorf("root children = %d, want 0", m.root.Len())
	}
	if !strings.Contains(m.View(), "EMVIZ") {
		t.Error("view missing title")
	}
}

func TestMenu_LoadAndClear(t *testing.T) {
	m := newTestModel("")
	m = press(m, "down", "enter")
	want := catalog.ByCategory(catalog.Electrostatics)[0].ID
	if m.mgr.ActiveID() != want {
		t.Fatalf("active = %q, want %q", m.mgr.ActiveID(), want)
	}
	if m.root.Len() != 1 {
		t.Errorf("root children = %d, want 1", m.root.Len())
	}

	m = press(m, "up", "enter")
	if m.mgr.State() != lifecycle.Empty || m.root.Len() != 0 || m.dev.Live() != 0 {
		t.Errorf("placeholder entry did not clear: state=%v children=%d live=%d",
			m.mgr.State(), m.root.Len(), m.dev.Live())
	}
}

func TestSwitchCategory_Clears(t *testing.T) {
	m := newTestModel("electric-field-point")
	if m.mgr.State() != lifecycle.Active {
		t.Fatal("initial concept not loaded")
	}
	m = press(m, "2")
	if m.category != catalog.Magnetostatics {
		t.Errorf("category = %v, want magnetostatics", m.category)
	}
	if m.mgr.State() != lifecycle.Empty || m.dev.Live() != 0 {
		t.Errorf("switch left state=%v live=%d", m.mgr.State(), m.dev.Live())
	}
	if len(m.concepts) != len(catalog.ByCategory(catalog.Magnetostatics)) {
		t.Error("menu not repopulated")
	}
}

func TestControls_ChargeReloads(t *testing.T) {
	m := newTestModel("electric-field-point")
	before := m.mgr.Active()
	m = press(m, "tab", "right")
	if m.params.Charge != 1.1 {
		t.Errorf("charge = %v, want 1.1", m.params.Charge)
	}
	if m.mgr.Active() == before {
		t.Error("charge change did not rebuild the visualization")
	}
	if m.root.Len() != 1 || m.dev.Live() != m.mgr.Active().Handles() {
		t.Errorf("leak after reload: children=%d live=%d", m.root.Len(), m.dev.Live())
	}
}

func TestControls_ChargeClamped(t *testing.T) {
	m := newTestModel("")
	m = press(m, "tab")
	for i := 0; i < 100; i++ {
		m = press(m, "left")
	}
	if m.params.Charge != config.MinCharge {
		t.Errorf("charge = %v, want %v", m.params.Charge, config.MinCharge)
	}
}

func TestControls_LabelsToggle(t *testing.T) {
	m := newTestModel("magnetic-straight")
	if m.mgr.Active().Count(scene.KindLabel) == 0 {
		t.Fatal("expected labels by default")
	}
	// current, labels, vectors
	m = press(m, "tab", "down", "enter")
	if m.params.ShowLabels {
		t.Fatal("labels still on")
	}
	if n := m.mgr.Active().Count(scene.KindLabel); n != 0 {
		t.Errorf("labels after toggle = %d, want 0", n)
	}
}

func TestPlayPause(t *testing.T) {
	m := newTestModel("")
	on := m.orbit.AutoRotate
	m = press(m, "p")
	if m.orbit.AutoRotate == on || m.playing == on {
		t.Error("p did not toggle auto-rotate")
	}
}

func TestTick_Rotates(t *testing.T) {
	m := newTestModel("")
	start := m.orbit.Azimuth()
	now := time.Now()
	for i := 0; i < 10; i++ {
		next, cmd := m.Update(tickMsg(now.Add(time.Duration(i) * time.Second / 30)))
		if cmd == nil {
			t.Fatal("tick did not reschedule")
		}
		m = next.(model)
	}
	if m.orbit.Azimuth() == start {
		t.Error("orbit did not advance")
	}
}

func TestQuit_Clears(t *testing.T) {
	m := newTestModel("gauss-law")
	next, cmd := m.Update(key("q"))
	m = next.(model)
	if cmd == nil {
		t.Error("q returned no command")
	}
	if m.dev.Live() != 0 {
		t.Errorf("live resources after quit = %d", m.dev.Live())
	}
}

func TestLiveRenderer(t *testing.T) {
	root := scene.NewRoot()
	m := newTestModel("electric-field-point")
	root.Attach(m.mgr.Active())

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "point", 100, 40, 12, false)
	if err := r.Run(context.Background(), root, viz.NewOrbit(), 30*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, hideCursor) || !strings.HasSuffix(out, showCursor) {
		t.Error("cursor not hidden and restored")
	}
	if !strings.Contains(out, "point") {
		t.Error("title missing")
	}
}
