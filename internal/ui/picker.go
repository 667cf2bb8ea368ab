package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/podium/internal/api"
)

// openPicker starts a file picker limited to the image types the backend
// accepts. It reopens in the directory of the previous pick.
func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = api.ImageExtensions()
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = false
	fp.Height = pickerHeight(m.height)

	accent := lipgloss.Color(m.theme.Accent)
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.DisabledFile = m.theme.Styles().FaintText
	fp.Styles.DisabledSelected = m.theme.Styles().FaintText

	dir := m.pickerDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = "."
		}
	}
	fp.CurrentDirectory = dir

	m.picker = fp
	m.picking = true
	return m.picker.Init()
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if selected, path := m.picker.DidSelectFile(msg); selected {
		m.pickerDir = filepath.Dir(path)
		switch m.tab {
		case TabAboutUs:
			m.aboutUs.AttachImage(path)
			m.picking = false
			return m, nil
		case TabSponsors:
			// Stay open until the logo limit is reached.
			if m.sponsors.AttachLogos(path) >= api.MaxLogos {
				m.picking = false
				return m, nil
			}
			return m, cmd
		}
		m.picking = false
		return m, nil
	}

	if disabled, path := m.picker.DidSelectDisabledFile(msg); disabled {
		m.notes.Error(fmt.Sprintf("Unsupported image type %q.", strings.ToLower(filepath.Ext(path))))
	}
	return m, cmd
}

func (m Model) renderPicker() string {
	styles := m.theme.Styles()
	title := "Choose an image"
	if m.tab == TabSponsors {
		title = fmt.Sprintf("Choose logos (%d/%d)", len(m.sponsors.Draft.Logos), api.MaxLogos)
	}
	body := strings.Join([]string{
		styles.Text.Bold(true).Render(title),
		styles.MutedText.Render(truncate(m.picker.CurrentDirectory, max(20, m.width-8))),
		"",
		m.picker.View(),
		"",
		styles.MutedText.Render("enter: select   h/backspace: up   esc: done"),
	}, "\n")
	return styles.FocusPane.Width(max(20, m.width-4)).Render(body)
}

func pickerHeight(termHeight int) int {
	if termHeight <= 0 {
		return 12
	}
	return min(18, max(6, termHeight-10))
}
