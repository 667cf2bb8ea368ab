package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/form"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldCategory
	fieldArtistName
	fieldArtistSMS
)

// field binds one text input to a draft value.
type field struct {
	label  string
	kind   fieldKind
	cat    int
	artist int
	input  textinput.Model
	set    func(string)
}

// editor holds the inputs of the open form. It is rebuilt whenever the
// draft changes shape; typing only writes through set.
type editor struct {
	tab    Tab
	fields []field
	focus  int
}

func newInput(placeholder, value string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	ti.SetValue(value)
	return ti
}

// machine returns the form machine of the active tab.
func (m Model) machine() *form.Machine {
	switch m.tab {
	case TabSponsors:
		return &m.sponsors.Form
	case TabNominees:
		return &m.nominees.Form
	default:
		return &m.aboutUs.Form
	}
}

// rebuildEditor regenerates the inputs from the active draft, keeping the
// focus position where possible.
func (m *Model) rebuildEditor() tea.Cmd {
	if !m.machine().Open() {
		m.editor = editor{}
		return nil
	}
	focus := m.editor.focus
	if m.editor.tab != m.tab {
		focus = 0
	}
	width := max(20, m.width-24)

	var fields []field
	switch m.tab {
	case TabAboutUs:
		p := m.aboutUs
		fields = []field{
			{label: "Title", input: newInput("Title", p.Draft.Title, 200, width), set: func(v string) { p.Draft.Title = v }},
			{label: "Description", input: newInput("Description (markdown)", p.Draft.Description, 4000, width), set: func(v string) { p.Draft.Description = v }},
		}
	case TabSponsors:
		p := m.sponsors
		fields = []field{
			{label: "Company", input: newInput("Company name", p.Draft.CompanyName, 200, width), set: func(v string) { p.Draft.CompanyName = v }},
			{label: "Description", input: newInput("Description (markdown)", p.Draft.Description, 4000, width), set: func(v string) { p.Draft.Description = v }},
		}
	case TabNominees:
		p := m.nominees
		fields = append(fields, field{
			label: "Round", cat: -1, artist: -1,
			input: newInput("Round", p.Draft.Round, 100, width),
			set:   func(v string) { p.Draft.Round = v },
		})
		for ci, cat := range p.Draft.Categories {
			ci := ci
			fields = append(fields, field{
				label: fmt.Sprintf("Category %d", ci+1), kind: fieldCategory, cat: ci, artist: -1,
				input: newInput("Category name", cat.Name, 200, width),
				set:   func(v string) { p.Draft.SetCategoryName(ci, v) },
			})
			if !cat.Expanded {
				continue
			}
			for ai, artist := range cat.Artists {
				ai := ai
				fields = append(fields,
					field{
						label: fmt.Sprintf("  Artist %d", ai+1), kind: fieldArtistName, cat: ci, artist: ai,
						input: newInput("Artist name", artist.Name, 200, width),
						set: func(v string) {
							a := p.Draft.Categories[ci].Artists[ai]
							a.Name = v
							p.Draft.SetArtist(ci, ai, a)
						},
					},
					field{
						label: "  SMS code", kind: fieldArtistSMS, cat: ci, artist: ai,
						input: newInput("SMS number", artist.SMSNumber, 40, width),
						set: func(v string) {
							a := p.Draft.Categories[ci].Artists[ai]
							a.SMSNumber = v
							p.Draft.SetArtist(ci, ai, a)
						},
					},
				)
			}
		}
	}

	m.editor = editor{tab: m.tab, fields: fields, focus: min(focus, len(fields)-1)}
	if m.editor.focus < 0 {
		m.editor.focus = 0
	}
	return m.focusEditor()
}

// focusEditor focuses the current field and blurs the rest.
func (m *Model) focusEditor() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.editor.fields {
		if i == m.editor.focus && m.machine().State() != form.Previewing {
			cmd = m.editor.fields[i].input.Focus()
			continue
		}
		m.editor.fields[i].input.Blur()
	}
	return cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.editor.fields)
	if n == 0 {
		return nil
	}
	m.editor.focus = (m.editor.focus + delta + n) % n
	return m.focusEditor()
}

// focusWhere moves focus to the first field matching pred.
func (m *Model) focusWhere(pred func(field) bool) {
	for i, f := range m.editor.fields {
		if pred(f) {
			m.editor.focus = i
			return
		}
	}
}

func (m Model) focused() (field, bool) {
	if m.editor.focus < 0 || m.editor.focus >= len(m.editor.fields) {
		return field{}, false
	}
	return m.editor.fields[m.editor.focus], true
}

// openEditor is called after a panel opened its form.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	m.editor = editor{}
	cmd := m.rebuildEditor()
	return m, cmd
}

func (m Model) cancelForm() {
	switch m.tab {
	case TabAboutUs:
		m.aboutUs.Cancel()
	case TabSponsors:
		m.sponsors.Cancel()
	case TabNominees:
		m.nominees.Cancel()
	}
}

func (m Model) submitForm() tea.Cmd {
	switch m.tab {
	case TabAboutUs:
		return m.aboutUs.Submit()
	case TabSponsors:
		return m.sponsors.Submit()
	case TabNominees:
		return m.nominees.Submit()
	}
	return nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fm := m.machine()
	if fm.State() == form.Submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelForm()
		m.editor = editor{}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()
	case key.Matches(msg, m.keys.Preview) && m.tab == TabNominees:
		m.nominees.Preview()
		cmd := m.focusEditor()
		return m, cmd
	case key.Matches(msg, m.keys.Back) && m.tab == TabNominees:
		m.nominees.Back()
		cmd := m.focusEditor()
		return m, cmd
	}

	// A preview is read-only.
	if fm.State() == form.Previewing {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		cmd := m.moveFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.moveFocus(-1)
		return m, cmd
	}

	switch m.tab {
	case TabAboutUs:
		switch {
		case key.Matches(msg, m.keys.Attach):
			cmd := m.openPicker()
			return m, cmd
		case key.Matches(msg, m.keys.Detach):
			m.aboutUs.Draft.ClearImage()
			return m, nil
		}
	case TabSponsors:
		switch {
		case key.Matches(msg, m.keys.Attach):
			if fm.IsEditing() {
				m.notes.Error("Logos cannot be changed when editing a sponsor.")
				return m, nil
			}
			cmd := m.openPicker()
			return m, cmd
		case key.Matches(msg, m.keys.Detach):
			m.sponsors.Draft.RemoveLogo(len(m.sponsors.Draft.Logos) - 1)
			return m, nil
		case key.Matches(msg, m.keys.CycleLevel):
			m.sponsors.Draft.CycleLevel()
			return m, nil
		}
	case TabNominees:
		if model, cmd, ok := m.handleNomineeKey(msg); ok {
			return model, cmd
		}
	}

	if len(m.editor.fields) == 0 {
		return m, nil
	}
	f := &m.editor.fields[m.editor.focus]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.set(f.input.Value())
	return m, cmd
}

// handleNomineeKey applies the category and artist editing keys.
func (m Model) handleNomineeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	d := &m.nominees.Draft
	cur, _ := m.focused()
	cat := cur.cat
	if cat < 0 {
		cat = len(d.Categories) - 1
	}

	switch {
	case key.Matches(msg, m.keys.CycleStage):
		d.CycleStage()
		return m, nil, true

	case key.Matches(msg, m.keys.AddCategory):
		added := d.AddCategory()
		cmd := m.rebuildEditor()
		m.focusWhere(func(f field) bool { return f.kind == fieldCategory && f.cat == added })
		focus := m.focusEditor()
		return m, tea.Batch(cmd, focus), true

	case key.Matches(msg, m.keys.AddArtist):
		if cat < 0 {
			return m, nil, true
		}
		if !d.Categories[cat].Expanded {
			d.ToggleDetails(cat)
		}
		added := d.AddArtist(cat)
		cmd := m.rebuildEditor()
		m.focusWhere(func(f field) bool { return f.kind == fieldArtistName && f.cat == cat && f.artist == added })
		focus := m.focusEditor()
		return m, tea.Batch(cmd, focus), true

	case key.Matches(msg, m.keys.ToggleDetails):
		if cat < 0 {
			return m, nil, true
		}
		d.ToggleDetails(cat)
		cmd := m.rebuildEditor()
		m.focusWhere(func(f field) bool { return f.kind == fieldCategory && f.cat == cat })
		focus := m.focusEditor()
		return m, tea.Batch(cmd, focus), true

	case key.Matches(msg, m.keys.Remove):
		var removed bool
		switch cur.kind {
		case fieldCategory:
			removed = d.RemoveCategory(cur.cat)
		case fieldArtistName, fieldArtistSMS:
			removed = d.RemoveArtist(cur.cat, cur.artist)
		default:
			return m, nil, true
		}
		if removed {
			cmd := m.rebuildEditor()
			return m, cmd, true
		}
		if prompt, ok := d.Pending(); ok {
			p := m.nominees
			m.confirm = &confirmDialog{
				title:     "Confirm removal",
				body:      prompt,
				focus:     focusCancel,
				onConfirm: func() tea.Cmd { p.Draft.Confirm(); return nil },
				onCancel:  func() { p.Draft.Dismiss() },
			}
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) renderEditor() string {
	fm := m.machine()
	styles := m.theme.Styles()
	var b strings.Builder

	title := "Add"
	if fm.IsEditing() {
		title = "Edit"
	}
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("%s %s", title, m.tab.Singular())))
	if fm.State() == form.Submitting {
		b.WriteString("  " + m.spinner.View() + styles.WarningText.Render(" Saving..."))
	}
	b.WriteString("\n\n")

	if fm.State() == form.Previewing || (fm.State() == form.Submitting && m.tab == TabNominees && !fm.IsEditing()) {
		b.WriteString(m.renderNomineePreview())
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("ctrl+s: post   ctrl+b: back   esc: cancel"))
		return styles.FocusPane.Width(max(20, m.width-4)).Render(b.String())
	}

	for i, f := range m.editor.fields {
		label := styles.MutedText.Render(padRight(f.label, 14))
		if i == m.editor.focus {
			label = styles.AccentText.Render(padRight(f.label, 14))
		}
		b.WriteString(label + " " + f.input.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderEditorExtras())
	return styles.FocusPane.Width(max(20, m.width-4)).Render(b.String())
}

// renderEditorExtras shows the draft values that are not text inputs.
func (m Model) renderEditorExtras() string {
	styles := m.theme.Styles()
	var lines []string
	switch m.tab {
	case TabAboutUs:
		d := m.aboutUs.Draft
		image := "none"
		switch {
		case d.Image != nil:
			image = d.Image.Filename + " (new)"
		case d.ImageURL != "":
			image = d.ImageURL
		}
		lines = append(lines,
			styles.MutedText.Render(padRight("Image", 14))+" "+styles.Text.Render(truncate(image, max(10, m.width-24))),
			styles.FaintText.Render("ctrl+o: choose image   ctrl+x: clear   ctrl+s: save   esc: cancel"),
		)
	case TabSponsors:
		d := m.sponsors.Draft
		lines = append(lines, styles.MutedText.Render(padRight("Level", 14))+" "+styles.BadgeStyle(string(d.Level)).Render(string(d.Level)))
		if m.sponsors.Form.IsEditing() {
			lines = append(lines, styles.MutedText.Render(padRight("Logos", 14))+" "+styles.Text.Render(pluralize(len(d.Existing), "logo")+" (unchanged on update)"))
			lines = append(lines, styles.FaintText.Render("ctrl+l: level   ctrl+s: save   esc: cancel"))
		} else {
			names := make([]string, 0, len(d.Logos))
			for _, l := range d.Logos {
				names = append(names, l.Filename)
			}
			logos := fmt.Sprintf("%d/%d", len(d.Logos), api.MaxLogos)
			if len(names) > 0 {
				logos += "  " + strings.Join(names, ", ")
			}
			lines = append(lines, styles.MutedText.Render(padRight("Logos", 14))+" "+styles.Text.Render(truncate(logos, max(10, m.width-24))))
			lines = append(lines, styles.FaintText.Render("ctrl+o: add logos   ctrl+x: drop last   ctrl+l: level   ctrl+s: save   esc: cancel"))
		}
	case TabNominees:
		stage := string(m.nominees.Draft.Stage)
		badge := styles.FaintText.Render("not set")
		if stage != "" {
			badge = styles.BadgeStyle(stage).Render(stage)
		}
		lines = append(lines, styles.MutedText.Render(padRight("Stage", 14))+" "+badge)
		action := "ctrl+p: preview"
		if m.nominees.Form.IsEditing() {
			action = "ctrl+s: save"
		}
		lines = append(lines,
			styles.FaintText.Render("ctrl+t: stage   ctrl+n: category   ctrl+a: artist   ctrl+d: remove   ctrl+e: show/hide"),
			styles.FaintText.Render(action+"   esc: cancel"),
		)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderNomineePreview() string {
	styles := m.theme.Styles()
	d := m.nominees.Draft
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Round "+d.Round) + "  " + styles.BadgeStyle(string(d.Stage)).Render(string(d.Stage)))
	b.WriteString("\n")
	if len(d.Categories) == 0 {
		b.WriteString(styles.WarningText.Render("No categories"))
	}
	for _, cat := range d.Categories {
		b.WriteString("\n" + styles.AccentText.Render(cat.Name) + "\n")
		if len(cat.Artists) == 0 {
			b.WriteString(styles.WarningText.Render("  No artists") + "\n")
		}
		for _, a := range cat.Artists {
			b.WriteString(styles.Text.Render("  "+padRight(a.Name, 28)) + styles.MutedText.Render(a.SMSNumber) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
