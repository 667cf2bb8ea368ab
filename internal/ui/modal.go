package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const deleteNomineePrompt = "Are you sure you want to delete this nominee?"

type confirmFocus int

const (
	focusConfirm confirmFocus = iota
	focusCancel
)

// confirmDialog is a yes/no question that blocks other input until answered.
type confirmDialog struct {
	title        string
	body         string
	confirmLabel string
	focus        confirmFocus
	onConfirm    func() tea.Cmd
	onCancel     func()
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.confirm
	switch {
	case key.Matches(msg, m.keys.ModalFocus):
		if d.focus == focusConfirm {
			d.focus = focusCancel
		} else {
			d.focus = focusConfirm
		}
		return m, nil
	case msg.String() == "y":
		return m.answer(true)
	case key.Matches(msg, m.keys.Dismiss):
		return m.answer(false)
	case key.Matches(msg, m.keys.Confirm):
		return m.answer(d.focus == focusConfirm)
	}
	return m, nil
}

func (m Model) answer(yes bool) (tea.Model, tea.Cmd) {
	d := m.confirm
	m.confirm = nil
	if !yes {
		if d.onCancel != nil {
			d.onCancel()
		}
		return m, nil
	}
	var cmd tea.Cmd
	if d.onConfirm != nil {
		cmd = d.onConfirm()
	}
	focus := m.rebuildEditor()
	return m, tea.Batch(cmd, focus)
}

func (m Model) renderConfirm() string {
	d := m.confirm
	t := m.theme

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(t.Text)).
		Background(lipgloss.Color(t.Surface))
	btnActive := btnBase.
		Foreground(lipgloss.Color(t.SelectionText)).
		Background(lipgloss.Color(t.Selection)).
		Bold(true)

	confirmLabel := d.confirmLabel
	if confirmLabel == "" {
		confirmLabel = "Delete"
	}
	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render("Cancel")
	if d.focus == focusConfirm {
		confirm = btnActive.Render(confirmLabel)
	} else {
		cancel = btnActive.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)

	width := min(60, max(30, m.width-8))
	styles := t.Styles()
	content := strings.Join([]string{
		styles.Text.Bold(true).Render(d.title),
		"",
		lipgloss.NewStyle().Width(width - 6).Render(d.body),
		"",
		controls,
		"",
		styles.MutedText.Render("tab: focus   enter: select   y/n   esc: cancel"),
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Danger)).
		Padding(1, 2).
		Width(width).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(t.Background)),
	)
}
