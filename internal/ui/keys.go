package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	AboutUs    key.Binding
	Sponsors   key.Binding
	Nominees   key.Binding
	Reload     key.Binding
	PageSize   key.Binding

	// List
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Check    key.Binding
	Filter   key.Binding

	// Editor
	NextField     key.Binding
	PrevField     key.Binding
	Submit        key.Binding
	Preview       key.Binding
	Back          key.Binding
	Attach        key.Binding
	Detach        key.Binding
	AddCategory   key.Binding
	AddArtist     key.Binding
	Remove        key.Binding
	ToggleDetails key.Binding
	CycleStage    key.Binding
	CycleLevel    key.Binding
	Cancel        key.Binding

	// Confirmation modal
	Confirm    key.Binding
	Dismiss    key.Binding
	ModalFocus key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		AboutUs: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "About Us"),
		),
		Sponsors: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sponsors"),
		),
		Nominees: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Nominees"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "Rows per page"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "Previous page"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "Edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete"),
		),
		Check: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle check"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle level filter"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save / post"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "Preview nominee"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "Back to form"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Attach image"),
		),
		Detach: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Remove image"),
		),
		AddCategory: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "Add category"),
		),
		AddArtist: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "Add artist"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Remove focused row"),
		),
		ToggleDetails: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "Show/hide artists"),
		),
		CycleStage: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle stage"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Cycle level"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "Select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", "Cancel"),
		),
		ModalFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "Focus"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.AboutUs, k.Sponsors, k.Nominees, k.Reload},
		{k.Up, k.Down, k.NextPage, k.PrevPage, k.PageSize},
		{k.Add, k.Edit, k.Delete, k.Check, k.Filter},
		{k.Submit, k.Preview, k.Back, k.Cancel, k.NextField},
		{k.Attach, k.Detach, k.CycleLevel, k.CycleStage},
		{k.AddCategory, k.AddArtist, k.Remove, k.ToggleDetails},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
