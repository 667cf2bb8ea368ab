package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	k := m.keys

	sections := []helpSection{
		{title: "Tabs", bindings: []key.Binding{k.NextTab, k.AboutUs, k.Sponsors, k.Nominees, k.Reload}},
		{title: "Lists", bindings: []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.PageSize, k.Add, k.Edit, k.Delete, k.Check, k.Filter}},
		{title: "Forms", bindings: []key.Binding{k.NextField, k.Submit, k.Preview, k.Back, k.Attach, k.Detach, k.CycleLevel, k.Cancel}},
		{title: "Nominees", bindings: []key.Binding{k.CycleStage, k.AddCategory, k.AddArtist, k.Remove, k.ToggleDetails}},
		{title: "General", bindings: []key.Binding{k.CycleTheme, k.Help, k.Quit}},
	}

	h := m.help
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(12)
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			b.WriteString(h.FullHelpView([][]key.Binding{{binding}}))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
