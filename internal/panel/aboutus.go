package panel

import (
	"context"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/form"
	"github.com/five82/podium/internal/state"
)

// SingleAboutUsMessage is shown when adding a second About Us entry.
const SingleAboutUsMessage = "Only one About Us information is allowed. Please edit or delete the existing one to add new."

type aboutUsLoadedMsg struct {
	tok     state.Token
	entries []api.AboutUsEntry
	err     error
}

type aboutUsSavedMsg struct {
	tok     state.Token
	slot    string
	created bool
	entry   api.AboutUsEntry
	err     error
}

type aboutUsDeletedMsg struct {
	tok state.Token
	id  string
	err error
}

// AboutUs is the About Us screen. Writes patch the cache locally.
type AboutUs struct {
	Strategy state.Strategy
	Form     form.Machine
	Draft    form.AboutUsDraft
	Pager    state.Pager

	store  api.AboutUsStore
	ctx    context.Context
	notes  Notifier
	cache  state.Cache[api.AboutUsEntry]
	tokens state.Tokens

	checked    map[string]bool
	fetching   bool
	submitting bool
	deleting   map[string]bool
}

// NewAboutUs builds the About Us screen over store.
func NewAboutUs(store api.AboutUsStore, opts Options) *AboutUs {
	return &AboutUs{
		Strategy: state.PatchLocally,
		Pager:    state.NewPager(opts.PageSize),
		store:    store,
		ctx:      opts.context(),
		notes:    opts.notifier(),
		checked:  make(map[string]bool),
		deleting: make(map[string]bool),
	}
}

// Entries returns a copy of every cached entry.
func (p *AboutUs) Entries() []api.AboutUsEntry { return p.cache.Snapshot() }

// PageEntries returns the entries on the current page.
func (p *AboutUs) PageEntries() []api.AboutUsEntry {
	return state.Page(&p.Pager, p.cache.Snapshot())
}

// Fetching reports whether a list request is outstanding.
func (p *AboutUs) Fetching() bool { return p.fetching }

// Submitting reports whether a create or update is outstanding.
func (p *AboutUs) Submitting() bool { return p.submitting }

// Deleting reports whether id is being deleted.
func (p *AboutUs) Deleting(id string) bool { return p.deleting[id] }

// Loaded reports whether a list has ever been received.
func (p *AboutUs) Loaded() bool { return p.cache.Loaded() }

// Load fetches the entries.
func (p *AboutUs) Load() tea.Cmd {
	tok := p.tokens.Issue(state.SlotList)
	p.fetching = true
	store, ctx := p.store, p.ctx
	return func() tea.Msg {
		entries, err := store.ListAboutUs(ctx)
		return aboutUsLoadedMsg{tok: tok, entries: entries, err: err}
	}
}

// OpenAdd opens a blank form. It is refused while an entry exists; the
// returned error has already been shown as a notification.
func (p *AboutUs) OpenAdd() error {
	if err := p.Form.OpenAddSingle(p.cache.Len(), SingleAboutUsMessage); err != nil {
		p.notes.Error(api.UserMessage(err))
		return err
	}
	p.Draft = form.AboutUsDraft{}
	return nil
}

// Edit loads entry id into the form.
func (p *AboutUs) Edit(id string) bool {
	entry, ok := p.cache.Find(id)
	if !ok {
		return false
	}
	if err := p.Form.Edit(id); err != nil {
		return false
	}
	p.Draft = form.AboutUsDraftFrom(entry)
	return true
}

// Cancel closes the form and discards the draft.
func (p *AboutUs) Cancel() {
	p.Form.Cancel()
	p.Draft = form.AboutUsDraft{}
}

// AttachImage loads an image file into the draft.
func (p *AboutUs) AttachImage(path string) bool {
	upload, err := api.LoadUpload(path)
	if err != nil {
		p.notes.Error(api.UserMessage(err))
		return false
	}
	p.Draft.SetImage(upload)
	return true
}

// Submit sends the draft as a create or an update.
func (p *AboutUs) Submit() tea.Cmd {
	if err := p.Draft.Validate(); err != nil {
		p.notes.Error(api.UserMessage(err))
		return nil
	}
	// A create can race a fetch that found another entry.
	if !p.Form.IsEditing() && p.cache.Len() > 0 {
		p.notes.Error(SingleAboutUsMessage)
		return nil
	}
	if err := p.Form.Submit(); err != nil {
		return nil
	}
	p.submitting = true

	in := p.Draft.Input()
	store, ctx := p.store, p.ctx
	if id := p.Form.EditingID(); id != "" {
		tok := p.tokens.Issue(id)
		return func() tea.Msg {
			entry, err := store.UpdateAboutUs(ctx, id, in)
			return aboutUsSavedMsg{tok: tok, slot: id, entry: entry, err: err}
		}
	}
	tok := p.tokens.Issue(state.SlotSingleton)
	return func() tea.Msg {
		entry, err := store.CreateAboutUs(ctx, in)
		return aboutUsSavedMsg{tok: tok, slot: state.SlotSingleton, created: true, entry: entry, err: err}
	}
}

// Delete removes entry id.
func (p *AboutUs) Delete(id string) tea.Cmd {
	if p.deleting[id] {
		return nil
	}
	tok := p.tokens.Issue(id)
	p.deleting[id] = true
	store, ctx := p.store, p.ctx
	return func() tea.Msg {
		return aboutUsDeletedMsg{tok: tok, id: id, err: store.DeleteAboutUs(ctx, id)}
	}
}

// ToggleChecked flips the check mark on entry id.
func (p *AboutUs) ToggleChecked(id string) {
	if p.checked[id] {
		delete(p.checked, id)
		return
	}
	if _, ok := p.cache.Find(id); ok {
		p.checked[id] = true
	}
}

// Checked reports whether entry id is checked.
func (p *AboutUs) Checked(id string) bool { return p.checked[id] }

// CheckedIDs returns the checked entry ids in sorted order.
func (p *AboutUs) CheckedIDs() []string {
	ids := make([]string, 0, len(p.checked))
	for id := range p.checked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetPageSize changes the rows per page and returns to page 1.
func (p *AboutUs) SetPageSize(n int) {
	p.Pager.SetPageSize(n)
	p.Pager.SetTotal(p.cache.Len())
}

// Update applies a completion message. It returns a follow-up command when
// the cache must be refetched.
func (p *AboutUs) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case aboutUsLoadedMsg:
		if !p.tokens.Current(state.SlotList, msg.tok) {
			return nil
		}
		p.fetching = false
		if msg.err != nil {
			logFailure("about us fetch", msg.err)
			p.cache.Fail(msg.err)
			if standalone(msg.err) {
				p.notes.Error(api.UserMessage(msg.err))
			} else {
				p.notes.Error("Failed to fetch About Us data.")
			}
			return nil
		}
		p.cache.Replace(msg.entries)
		p.pruneChecked()
		p.Pager.SetTotal(p.cache.Len())
		return nil

	case aboutUsSavedMsg:
		if !p.tokens.Current(msg.slot, msg.tok) {
			return nil
		}
		p.submitting = false
		if msg.err != nil {
			logFailure("about us submit", msg.err)
			p.Form.Fail()
			p.notes.Error(describe(msg.err, "Error submitting information: %s"))
			return nil
		}
		// A form reopened after Cancel keeps its own draft.
		if p.Form.State() == form.Submitting {
			p.Form.Succeed()
			p.Draft = form.AboutUsDraft{}
		}
		if msg.created {
			p.notes.Success("Information added successfully!")
		} else {
			p.notes.Success("Information updated successfully!")
		}
		return p.afterWrite(func() {
			if msg.created {
				p.cache.Replace([]api.AboutUsEntry{msg.entry})
			} else {
				p.cache.Upsert(msg.entry)
			}
		})

	case aboutUsDeletedMsg:
		if !p.tokens.Current(msg.id, msg.tok) {
			return nil
		}
		delete(p.deleting, msg.id)
		if msg.err != nil {
			logFailure("about us delete", msg.err)
			p.notes.Error(describe(msg.err, "Error deleting information: %s"))
			return nil
		}
		p.cache.Remove(msg.id)
		delete(p.checked, msg.id)
		if p.Form.EditingID() == msg.id {
			p.Cancel()
			p.submitting = false
		}
		p.notes.Success("Information deleted successfully!")
		return p.afterWrite(nil)
	}
	return nil
}

// afterWrite invalidates in-flight fetches and then either patches the
// cache or refetches it.
func (p *AboutUs) afterWrite(patch func()) tea.Cmd {
	p.tokens.Invalidate(state.SlotList)
	if p.Strategy == state.RefetchAfterWrite {
		return p.Load()
	}
	p.fetching = false
	if patch != nil {
		patch()
	}
	p.Pager.SetTotal(p.cache.Len())
	return nil
}

func (p *AboutUs) pruneChecked() {
	for id := range p.checked {
		if _, ok := p.cache.Find(id); !ok {
			delete(p.checked, id)
		}
	}
}
