package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/podium/internal/form"
	"github.com/five82/podium/internal/notify"
)

// renderHeader renders the logo, the tabs and the backend status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	line := newBar(m.theme.Surface, 2).add("podium", styles.Logo)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			line.add("["+t.String()+"]", styles.AccentText.Bold(true))
			continue
		}
		line.add(t.String(), styles.MutedText)
	}

	if m.baseURL == "" {
		line.add("API not configured", styles.DangerText)
	} else {
		line.add(truncate(m.baseURL, 40), styles.FaintText)
	}
	if m.busy() {
		line.add(m.spinner.View(), styles.WarningText)
	}

	return styles.Header.Width(m.width).Render(line.String())
}

// busy reports whether any request is in flight on the active tab.
func (m Model) busy() bool {
	switch m.tab {
	case TabSponsors:
		return m.sponsors.Fetching() || m.sponsors.Submitting()
	case TabNominees:
		return m.nominees.Fetching() || m.nominees.Submitting()
	default:
		return m.aboutUs.Fetching() || m.aboutUs.Submitting()
	}
}

// renderCommandBar renders the key hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.picking:
		commands = []cmd{{"enter", "Select"}, {"h", "Up"}, {"esc", "Done"}}
	case m.machine().Open():
		commands = []cmd{{"tab", "Next field"}, {"ctrl+s", "Save"}, {"esc", "Cancel"}}
		if m.tab == TabNominees && m.machine().State() == form.Adding {
			commands = append(commands, cmd{"ctrl+p", "Preview"})
		}
		if m.tab == TabNominees && m.machine().State() == form.Previewing {
			commands = []cmd{{"ctrl+s", "Post"}, {"ctrl+b", "Back"}, {"esc", "Cancel"}}
		}
	default:
		commands = []cmd{
			{"1/2/3", "Tabs"},
			{"j/k", "Navigate"},
			{"[/]", "Page"},
			{"a", "Add"},
			{"e", "Edit"},
			{"d", "Delete"},
		}
		switch m.tab {
		case TabAboutUs:
			commands = append(commands, cmd{"space", "Check"})
		case TabSponsors:
			commands = append(commands, cmd{"f", m.levelLabel()})
		}
		commands = append(commands, cmd{"+", "Rows"}, cmd{"r", "Reload"}, cmd{"?", "More"})
	}

	line := newBar(m.theme.Surface, 2)
	for _, c := range commands {
		line.hint(c.key, c.desc, styles.AccentText, styles.MutedText)
	}
	line.hint("T", m.theme.Name, styles.AccentText, styles.FaintText)

	return styles.Header.Width(m.width).Render(line.String())
}

func (m Model) levelLabel() string {
	if l := m.sponsors.Level(); l != "" {
		return string(l)
	}
	return "All"
}

// renderNotice renders the current notification, or an empty bar.
func (m Model) renderNotice() string {
	notice, ok := m.notes.Current()
	if !ok {
		return lipgloss.NewStyle().Width(m.width).Render("")
	}
	styles := m.theme.Styles()
	style := styles.SuccessText
	if notice.Kind == notify.Error {
		style = styles.DangerText
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(style.Render(notice.Message))
}
