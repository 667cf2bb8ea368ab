package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/notify"
	"github.com/five82/podium/internal/panel"
	"github.com/five82/podium/internal/prefs"
)

// Tab identifies one of the three screens.
type Tab int

const (
	TabAboutUs Tab = iota
	TabSponsors
	TabNominees
	tabCount
)

var tabNames = [tabCount]string{"About Us", "Sponsors", "Nominees"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "unknown"
	}
	return tabNames[t]
}

// Singular names one entity of the tab.
func (t Tab) Singular() string {
	switch t {
	case TabSponsors:
		return "Sponsor"
	case TabNominees:
		return "Nominee"
	default:
		return "About Us"
	}
}

// Options configures the UI.
type Options struct {
	Context  context.Context
	AboutUs  api.AboutUsStore
	Sponsors api.SponsorStore
	Nominees api.NomineeStore
	// Notifier shows action outcomes. A default one is created when nil.
	Notifier  *notify.Notifier
	BaseURL   string
	ThemeName string
	PrefsPath string
	PageSize  int
}

// noticeMsg asks for a redraw after a notification expired.
type noticeMsg struct{}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	notes     *notify.Notifier
	baseURL   string
	prefsPath string

	// Screens
	aboutUs  *panel.AboutUs
	sponsors *panel.Sponsors
	nominees *panel.Nominees

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	detail   viewport.Model
	tab      Tab
	cursor   [tabCount]int
	pageSize int
	width    int
	height   int
	ready    bool
	showHelp bool

	// Overlays
	editor    editor
	confirm   *confirmDialog
	picker    filepicker.Model
	picking   bool
	pickerDir string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	notes := opts.Notifier
	if notes == nil {
		notes = notify.New(notify.DefaultDuration)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = pageSizes[0]
	}

	popts := panel.Options{Context: ctx, Notifier: notes, PageSize: pageSize}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	return Model{
		ctx:       ctx,
		notes:     notes,
		baseURL:   opts.BaseURL,
		prefsPath: prefsPath,
		aboutUs:   panel.NewAboutUs(opts.AboutUs, popts),
		sponsors:  panel.NewSponsors(opts.Sponsors, popts),
		nominees:  panel.NewNominees(opts.Nominees, popts),
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		detail:    vp,
		pageSize:  pageSize,
	}
}

// Init implements tea.Model. Every screen loads once on start.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.aboutUs.Load(),
		m.sponsors.Load(),
		m.nominees.Load(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		next := model.(Model)
		next.syncDetail()
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		if m.picking {
			m.picker.Height = pickerHeight(m.height)
		}
		cmd := m.rebuildEditor()
		m.syncDetail()
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case noticeMsg:
		return m, nil
	}

	return m.route(msg)
}

// route hands a completion message to every screen and keeps the editor in
// step with the form it mirrors.
func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasOpen := m.machine().Open()
	cmds := []tea.Cmd{
		m.aboutUs.Update(msg),
		m.sponsors.Update(msg),
		m.nominees.Update(msg),
	}

	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
	}
	if f, ok := m.focused(); ok && m.machine().Open() {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		m.editor.fields[m.editor.focus] = f
		cmds = append(cmds, cmd)
	}

	if wasOpen && !m.machine().Open() {
		m.editor = editor{}
		m.picking = false
	}
	m.clampCursor()
	m.syncDetail()
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.confirm != nil {
		return m.renderConfirm()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.picking {
		return m.handlePickerKey(msg)
	}
	if m.machine().Open() {
		return m.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.AboutUs):
		m.tab = TabAboutUs
		return m, nil
	case key.Matches(msg, m.keys.Sponsors):
		m.tab = TabSponsors
		return m, nil
	case key.Matches(msg, m.keys.Nominees):
		m.tab = TabNominees
		return m, nil
	}

	return m.handleListKey(msg)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: m.pageSize}); err != nil {
		log.Printf("save prefs failed: %v", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch {
	case m.picking:
		b.WriteString(m.renderPicker())
	case m.machine().Open():
		b.WriteString(m.renderEditor())
	default:
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(m.theme.Styles().Pane.Width(max(20, m.width-4)).Render(m.detail.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.renderNotice())

	return b.String()
}

// Run starts the Bubble Tea program and blocks until it exits. The notifier
// is closed on return.
func Run(opts Options) error {
	if opts.Notifier == nil {
		opts.Notifier = notify.New(notify.DefaultDuration)
	}
	defer opts.Notifier.Close()

	applyColorProfile()
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	opts.Notifier.OnChange(func() { p.Send(noticeMsg{}) })
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
