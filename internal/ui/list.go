package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/state"
)

var pageSizes = []int{5, 10, 20}

// pager returns the pager of the active tab.
func (m Model) pager() *state.Pager {
	switch m.tab {
	case TabSponsors:
		return &m.sponsors.Pager
	case TabNominees:
		return &m.nominees.Pager
	default:
		return &m.aboutUs.Pager
	}
}

// pageIDs returns the ids on the current page of the active tab.
func (m Model) pageIDs() []string {
	var ids []string
	switch m.tab {
	case TabAboutUs:
		for _, e := range m.aboutUs.PageEntries() {
			ids = append(ids, e.ID)
		}
	case TabSponsors:
		for _, s := range m.sponsors.PageSponsors() {
			ids = append(ids, s.ID)
		}
	case TabNominees:
		for _, n := range m.nominees.PageNominees() {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func (m Model) selectedID() (string, bool) {
	ids := m.pageIDs()
	c := m.cursor[m.tab]
	if c < 0 || c >= len(ids) {
		return "", false
	}
	return ids[c], true
}

func (m *Model) clampCursor() {
	n := len(m.pageIDs())
	if m.cursor[m.tab] >= n {
		m.cursor[m.tab] = n - 1
	}
	if m.cursor[m.tab] < 0 {
		m.cursor[m.tab] = 0
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.pageIDs()
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.tab] < len(ids)-1 {
			m.cursor[m.tab]++
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.pager().Next() {
			m.cursor[m.tab] = 0
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.pager().Prev() {
			m.cursor[m.tab] = 0
		}
	case key.Matches(msg, m.keys.PageSize):
		m.cyclePageSize()
	case key.Matches(msg, m.keys.Reload):
		cmd = m.loadTab()
	case key.Matches(msg, m.keys.Add):
		return m.openAdd()
	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.selectedID(); ok {
			return m.edit(id)
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			cmd = m.deleteEntity(id)
		}
	case key.Matches(msg, m.keys.Check) && m.tab == TabAboutUs:
		if id, ok := m.selectedID(); ok {
			m.aboutUs.ToggleChecked(id)
		}
	case key.Matches(msg, m.keys.Filter) && m.tab == TabSponsors:
		m.sponsors.CycleLevel()
		m.cursor[m.tab] = 0
	case msg.String() == "pgup" || msg.String() == "pgdown":
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	m.clampCursor()
	m.syncDetail()
	return m, cmd
}

func (m Model) loadTab() tea.Cmd {
	switch m.tab {
	case TabSponsors:
		return m.sponsors.Load()
	case TabNominees:
		return m.nominees.Load()
	default:
		return m.aboutUs.Load()
	}
}

func (m Model) openAdd() (tea.Model, tea.Cmd) {
	var err error
	switch m.tab {
	case TabAboutUs:
		err = m.aboutUs.OpenAdd()
	case TabSponsors:
		err = m.sponsors.OpenAdd()
	case TabNominees:
		err = m.nominees.OpenAdd()
	}
	if err != nil {
		return m, nil
	}
	return m.openEditor()
}

func (m Model) edit(id string) (tea.Model, tea.Cmd) {
	var ok bool
	switch m.tab {
	case TabAboutUs:
		ok = m.aboutUs.Edit(id)
	case TabSponsors:
		ok = m.sponsors.Edit(id)
	case TabNominees:
		ok = m.nominees.Edit(id)
	}
	if !ok {
		return m, nil
	}
	return m.openEditor()
}

// deleteEntity deletes id on the active tab. Nominees ask first.
func (m *Model) deleteEntity(id string) tea.Cmd {
	switch m.tab {
	case TabAboutUs:
		return m.aboutUs.Delete(id)
	case TabSponsors:
		return m.sponsors.Delete(id)
	case TabNominees:
		p := m.nominees
		m.confirm = &confirmDialog{
			title:     "Delete nominee",
			body:      deleteNomineePrompt,
			focus:     focusCancel,
			onConfirm: func() tea.Cmd { return p.Delete(id) },
		}
	}
	return nil
}

// cyclePageSize steps through the page size choices, applies the size to
// every tab and persists it.
func (m *Model) cyclePageSize() {
	next := pageSizes[0]
	for i, size := range pageSizes {
		if size == m.pageSize {
			next = pageSizes[(i+1)%len(pageSizes)]
			break
		}
	}
	m.pageSize = next
	m.aboutUs.SetPageSize(next)
	m.sponsors.SetPageSize(next)
	m.nominees.SetPageSize(next)
	m.cursor = [tabCount]int{}
	m.savePrefs()
}

func (m Model) renderList() string {
	styles := m.theme.Styles()
	var rows []string
	var header string
	var empty string
	loaded, fetching := false, false

	switch m.tab {
	case TabAboutUs:
		loaded, fetching = m.aboutUs.Loaded(), m.aboutUs.Fetching()
		header = fmt.Sprintf("    %s %s %s", padRight("TITLE", 28), padRight("DESCRIPTION", 40), "CREATED")
		empty = "No About Us information yet. Press a to add it."
		for _, e := range m.aboutUs.PageEntries() {
			check := "[ ]"
			if m.aboutUs.Checked(e.ID) {
				check = "[x]"
			}
			created := ""
			if t := e.ParsedCreatedAt(); !t.IsZero() {
				created = t.Format("2006-01-02")
			}
			row := fmt.Sprintf("%s %s %s %s", check,
				padRight(truncate(e.Title, 28), 28),
				padRight(truncate(singleLine(e.Description), 40), 40),
				created)
			rows = append(rows, m.decorate(row, m.aboutUs.Deleting(e.ID)))
		}
	case TabSponsors:
		loaded, fetching = m.sponsors.Loaded(), m.sponsors.Fetching()
		header = fmt.Sprintf("%s %s %s %s", padRight("COMPANY", 28), padRight("LEVEL", 10), padRight("LOGOS", 6), "DESCRIPTION")
		empty = "No sponsors yet. Press a to add one."
		if m.sponsors.Level() != "" {
			empty = fmt.Sprintf("No %s sponsors. Press f to change the filter.", m.sponsors.Level())
		}
		for _, s := range m.sponsors.PageSponsors() {
			row := fmt.Sprintf("%s %s %s %s",
				padRight(truncate(s.CompanyName, 28), 28),
				padRight(string(s.Level), 10),
				padRight(fmt.Sprintf("%d", len(s.Logos)), 6),
				truncate(singleLine(s.Description), 40))
			rows = append(rows, m.decorate(row, m.sponsors.Deleting(s.ID)))
		}
	case TabNominees:
		loaded, fetching = m.nominees.Loaded(), m.nominees.Fetching()
		header = fmt.Sprintf("%s %s %s %s %s", padRight("ROUND", 16), padRight("STAGE", 12), padRight("CATEGORIES", 11), padRight("ARTISTS", 8), "CREATED")
		empty = "No nominees yet. Press a to add a round."
		for _, n := range m.nominees.PageNominees() {
			artists := 0
			for _, c := range n.Categories {
				artists += len(c.Artists)
			}
			created := ""
			if t := n.ParsedCreated(); !t.IsZero() {
				created = t.Format("2006-01-02")
			}
			row := fmt.Sprintf("%s %s %s %s %s",
				padRight(truncate(n.Round, 16), 16),
				padRight(string(n.Stage), 12),
				padRight(fmt.Sprintf("%d", len(n.Categories)), 11),
				padRight(fmt.Sprintf("%d", artists), 8),
				created)
			rows = append(rows, m.decorate(row, m.nominees.Deleting(n.ID)))
		}
	}

	var b strings.Builder
	b.WriteString(styles.FaintText.Render(header))
	b.WriteString("\n")
	switch {
	case len(rows) == 0 && !loaded && fetching:
		b.WriteString(m.spinner.View() + styles.MutedText.Render(" Loading..."))
	case len(rows) == 0 && !loaded:
		b.WriteString(styles.DangerText.Render("Nothing loaded. Press r to retry."))
	case len(rows) == 0:
		b.WriteString(styles.MutedText.Render(empty))
	}
	for i, row := range rows {
		if i == m.cursor[m.tab] {
			b.WriteString(styles.Selected.Width(max(20, m.width-6)).Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	pager := m.pager()
	footer := fmt.Sprintf("page %s   %d per page", pager.View(), pager.PageSize())
	if m.tab == TabSponsors {
		level := "all levels"
		if l := m.sponsors.Level(); l != "" {
			level = string(l)
		}
		footer += "   filter: " + level
	}
	if m.tab == TabAboutUs {
		if n := len(m.aboutUs.CheckedIDs()); n > 0 {
			footer += "   " + pluralize(n, "checked row")
		}
	}
	if fetching && loaded {
		footer += "   " + m.spinner.View() + "refreshing"
	}
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(footer))

	return styles.Pane.Width(max(20, m.width-4)).Render(b.String())
}

func (m Model) decorate(row string, deleting bool) string {
	if deleting {
		return row + "  " + m.spinner.View() + "deleting"
	}
	return row
}

// syncDetail refreshes the detail pane for the selected row.
func (m *Model) syncDetail() {
	m.detail.Width = max(20, m.width-6)
	m.detail.Height = m.detailHeight()
	m.detail.SetContent(m.detailContent())
}

func (m Model) detailHeight() int {
	used := 4 + m.pager().PageSize() + 6 + 3
	return max(3, m.height-used)
}

func (m Model) detailContent() string {
	styles := m.theme.Styles()
	id, ok := m.selectedID()
	if !ok {
		return styles.FaintText.Render("Nothing selected.")
	}
	width := max(20, m.width-8)

	switch m.tab {
	case TabAboutUs:
		for _, e := range m.aboutUs.PageEntries() {
			if e.ID != id {
				continue
			}
			return strings.Join([]string{
				styles.Text.Bold(true).Render(e.Title),
				styles.MutedText.Render("image: " + e.Image),
				renderMarkdown(e.Description, width),
			}, "\n")
		}
	case TabSponsors:
		for _, s := range m.sponsors.PageSponsors() {
			if s.ID != id {
				continue
			}
			lines := []string{
				styles.Text.Bold(true).Render(s.CompanyName) + "  " + styles.BadgeStyle(string(s.Level)).Render(string(s.Level)),
			}
			for _, logo := range s.Logos {
				lines = append(lines, styles.MutedText.Render("logo: "+logo.URL))
			}
			lines = append(lines, renderMarkdown(s.Description, width))
			return strings.Join(lines, "\n")
		}
	case TabNominees:
		n, found := m.nominees.Find(id)
		if !found {
			break
		}
		return nomineeDetail(styles, n)
	}
	return ""
}

func nomineeDetail(styles Styles, n api.Nominee) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Round "+n.Round) + "  " + styles.BadgeStyle(string(n.Stage)).Render(string(n.Stage)))
	for _, cat := range n.Categories {
		b.WriteString("\n" + styles.AccentText.Render(cat.Name))
		for _, a := range cat.Artists {
			b.WriteString("\n" + styles.Text.Render("  "+padRight(a.Name, 28)) + styles.MutedText.Render(a.SMSNumber))
		}
	}
	return b.String()
}
