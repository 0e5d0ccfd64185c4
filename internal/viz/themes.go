package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme shared by the terminal UI and SVG export.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Positive   lipgloss.Color
	Negative   lipgloss.Color
	Grid       lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#38bdf8"),
		Secondary:  lipgloss.Color("#a78bfa"),
		Accent:     lipgloss.Color("#fbbf24"),
		Background: lipgloss.Color("#0f172a"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#64748b"),
		Positive:   lipgloss.Color("#ff4444"),
		Negative:   lipgloss.Color("#4444ff"),
		Grid:       lipgloss.Color("#333333"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"),
		Secondary:  lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Positive:   lipgloss.Color("#ff0066"),
		Negative:   lipgloss.Color("#00ccff"),
		Grid:       lipgloss.Color("#222222"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"),
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Positive:   lipgloss.Color("#ccff66"),
		Negative:   lipgloss.Color("#66ffcc"),
		Grid:       lipgloss.Color("#003300"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Primary:    lipgloss.Color("#1d4ed8"),
		Secondary:  lipgloss.Color("#7c3aed"),
		Accent:     lipgloss.Color("#b45309"),
		Background: lipgloss.Color("#fafaf9"),
		Text:       lipgloss.Color("#1c1917"),
		Muted:      lipgloss.Color("#78716c"),
		Positive:   lipgloss.Color("#dc2626"),
		Negative:   lipgloss.Color("#2563eb"),
		Grid:       lipgloss.Color("#d6d3d1"),
	}

	Themes = []Theme{ThemeDark, ThemeCyberpunk, ThemeRetro, ThemePaper}
)

// GetTheme returns the named theme, falling back to ThemeDark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
