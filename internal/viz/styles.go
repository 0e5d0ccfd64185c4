package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the lipgloss style set derived from a Theme.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Badge    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Item     lipgloss.Style
	ItemOn   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Equation lipgloss.Style
	Panel    lipgloss.Style
	Canvas   lipgloss.Style
	KeyHint  lipgloss.Style
	Playing  lipgloss.Style
	Paused   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Badge: lipgloss.NewStyle().Bold(true).
			Foreground(t.Background).Background(t.Secondary).Padding(0, 1),
		Tab:      lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 2),
		TabOn:    lipgloss.NewStyle().Bold(true).Foreground(t.Text).Background(t.Muted).Padding(0, 2),
		Item:     lipgloss.NewStyle().Foreground(t.Muted),
		ItemOn:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Width(24),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Equation: lipgloss.NewStyle().Foreground(t.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Canvas: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Grid),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Playing: lipgloss.NewStyle().Bold(true).Foreground(t.Positive),
		Paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
	}
}

// Slider draws a range control such as "━━━━●────── 1.0".
func Slider(value, min, max float64, width int) string {
	if width < 2 {
		width = 2
	}
	ratio := 0.0
	if max > min {
		ratio = (value - min) / (max - min)
	}
	pos := int(ratio*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos) + fmt.Sprintf(" %.1f", value)
}

func Toggle(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Separator is a muted horizontal rule with a centre diamond.
func (s Styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return s.Muted.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1))
}

// Hints renders key/action pairs for a footer.
func (s Styles) Hints(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, s.Value.Render(pairs[i])+" "+s.KeyHint.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
