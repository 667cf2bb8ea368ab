package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a named palette. Badge colours are keyed by sponsor level and
// nominee stage.
type Theme struct {
	Name string

	Background    string
	Surface       string // header, command bar
	Border        string
	BorderFocus   string
	Selection     string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	BadgeColors map[string]string
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header    lipgloss.Style
	Logo      lipgloss.Style
	Selected  lipgloss.Style
	Pane      lipgloss.Style
	FocusPane lipgloss.Style

	theme Theme
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	pane := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1)
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header:    fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:      fg(t.Warning).Bold(true),
		Selected:  fg(t.SelectionText).Background(lipgloss.Color(t.Selection)),
		Pane:      pane(t.Border),
		FocusPane: pane(t.BorderFocus),

		theme: t,
	}
}

// BadgeStyle returns a filled badge for a level or stage name. Unknown names
// get the muted colour.
func (s Styles) BadgeStyle(name string) lipgloss.Style {
	color, ok := s.theme.BadgeColors[name]
	if !ok {
		color = s.theme.Muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground paints every text style, the header and the logo on color.
func (s Styles) WithBackground(color string) Styles {
	bg := lipgloss.Color(color)
	for _, st := range []*lipgloss.Style{
		&s.Text, &s.MutedText, &s.FaintText, &s.AccentText,
		&s.SuccessText, &s.WarningText, &s.DangerText,
		&s.Header, &s.Logo,
	} {
		*st = st.Background(bg)
	}
	return s
}

// themes is the cycle order; the first entry is the fallback.
var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#191A21",
		Surface:       "#282A36",
		Border:        "#44475A",
		BorderFocus:   "#BD93F9",
		Selection:     "#44475A",
		SelectionText: "#F8F8F2",
		Text:          "#F8F8F2",
		Muted:         "#6272A4",
		Faint:         "#44475A",
		Accent:        "#BD93F9",
		Success:       "#50FA7B",
		Warning:       "#FFB86C",
		Danger:        "#FF5555",
		BadgeColors: map[string]string{
			"Platinum":    "#8BE9FD",
			"Gold":        "#F1FA8C",
			"Final":       "#FF79C6",
			"Semi-Final":  "#BD93F9",
			"Preliminary": "#6272A4",
		},
	},
	{
		// Tailwind slate with sky accents.
		Name:          "Slate",
		Background:    "#020617",
		Surface:       "#0f172a",
		Border:        "#334155",
		BorderFocus:   "#38bdf8",
		Selection:     "#0284c7",
		SelectionText: "#f8fafc",
		Text:          "#f1f5f9",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#22c55e",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		BadgeColors: map[string]string{
			"Platinum":    "#cbd5e1",
			"Gold":        "#eab308",
			"Final":       "#ec4899",
			"Semi-Final":  "#8b5cf6",
			"Preliminary": "#64748b",
		},
	},
}

// GetTheme returns the named theme, or the first one when name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// applyColorProfile picks the lipgloss color profile for the TUI. NO_COLOR
// disables colours; otherwise a 256color or truecolor terminal is trusted
// over a detector that under-reports.
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	term := strings.ToLower(os.Getenv("TERM"))
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color") && profile != termenv.TrueColor:
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}
