package panel

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/form"
	"github.com/five82/podium/internal/state"
)

type nomineesLoadedMsg struct {
	tok      state.Token
	nominees []api.Nominee
	err      error
}

type nomineeSavedMsg struct {
	tok     state.Token
	slot    string
	created bool
	nominee api.Nominee
	err     error
}

type nomineeDeletedMsg struct {
	tok state.Token
	id  string
	err error
}

// Nominees is the nominee screen. New nominees go through a preview step
// before they are posted; edits are sent directly.
type Nominees struct {
	Strategy state.Strategy
	Form     form.Machine
	Draft    form.NomineeDraft
	Pager    state.Pager

	store  api.NomineeStore
	ctx    context.Context
	notes  Notifier
	cache  state.Cache[api.Nominee]
	tokens state.Tokens

	fetching   bool
	submitting bool
	deleting   map[string]bool
}

// NewNominees builds the nominee screen over store.
func NewNominees(store api.NomineeStore, opts Options) *Nominees {
	return &Nominees{
		Strategy: state.RefetchAfterWrite,
		Pager:    state.NewPager(opts.PageSize),
		store:    store,
		ctx:      opts.context(),
		notes:    opts.notifier(),
		deleting: make(map[string]bool),
	}
}

// Nominees returns a copy of every cached nominee.
func (p *Nominees) Nominees() []api.Nominee { return p.cache.Snapshot() }

// PageNominees returns the nominees on the current page.
func (p *Nominees) PageNominees() []api.Nominee {
	return state.Page(&p.Pager, p.cache.Snapshot())
}

// Find returns a copy of nominee id.
func (p *Nominees) Find(id string) (api.Nominee, bool) { return p.cache.Find(id) }

// Fetching reports whether a list request is outstanding.
func (p *Nominees) Fetching() bool { return p.fetching }

// Submitting reports whether a create or update is outstanding.
func (p *Nominees) Submitting() bool { return p.submitting }

// Deleting reports whether id is being deleted.
func (p *Nominees) Deleting(id string) bool { return p.deleting[id] }

// Loaded reports whether a list has ever been received.
func (p *Nominees) Loaded() bool { return p.cache.Loaded() }

// Load fetches the nominees.
func (p *Nominees) Load() tea.Cmd {
	tok := p.tokens.Issue(state.SlotList)
	p.fetching = true
	store, ctx := p.store, p.ctx
	return func() tea.Msg {
		nominees, err := store.ListNominees(ctx)
		return nomineesLoadedMsg{tok: tok, nominees: nominees, err: err}
	}
}

// OpenAdd opens a blank form with one category and one artist.
func (p *Nominees) OpenAdd() error {
	if err := p.Form.OpenAdd(); err != nil {
		return err
	}
	p.Draft = form.NewNomineeDraft()
	return nil
}

// Edit deep-copies nominee id into the form.
func (p *Nominees) Edit(id string) bool {
	nominee, ok := p.cache.Find(id)
	if !ok {
		return false
	}
	if err := p.Form.Edit(id); err != nil {
		return false
	}
	p.Draft = form.NomineeDraftFrom(nominee)
	return true
}

// Cancel closes the form and discards the draft.
func (p *Nominees) Cancel() {
	p.Form.Cancel()
	p.Draft = form.NomineeDraft{}
}

// Preview validates round and stage and shows the draft for review.
func (p *Nominees) Preview() bool {
	if err := p.Form.Preview(p.Draft.ValidateScalars); err != nil {
		if !errors.Is(err, form.ErrTransition) {
			p.notes.Error(api.UserMessage(err))
		}
		return false
	}
	return true
}

// Back leaves the preview and returns to the add form.
func (p *Nominees) Back() bool {
	return p.Form.Back() == nil
}

// Submit posts a previewed nominee, or sends an edit as an update.
func (p *Nominees) Submit() tea.Cmd {
	if p.Form.State() == form.Adding {
		p.notes.Error("Preview the nominee before posting.")
		return nil
	}
	if err := p.Draft.Validate(); err != nil {
		p.notes.Error(api.UserMessage(err))
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
			nominee, err := store.UpdateNominee(ctx, id, in)
			return nomineeSavedMsg{tok: tok, slot: id, nominee: nominee, err: err}
		}
	}
	tok := p.tokens.Issue(state.SlotSingleton)
	return func() tea.Msg {
		nominee, err := store.CreateNominee(ctx, in)
		return nomineeSavedMsg{tok: tok, slot: state.SlotSingleton, created: true, nominee: nominee, err: err}
	}
}

// Delete removes nominee id.
func (p *Nominees) Delete(id string) tea.Cmd {
	if p.deleting[id] {
		return nil
	}
	tok := p.tokens.Issue(id)
	p.deleting[id] = true
	store, ctx := p.store, p.ctx
	return func() tea.Msg {
		return nomineeDeletedMsg{tok: tok, id: id, err: store.DeleteNominee(ctx, id)}
	}
}

// SetPageSize changes the rows per page and returns to page 1.
func (p *Nominees) SetPageSize(n int) {
	p.Pager.SetPageSize(n)
	p.Pager.SetTotal(p.cache.Len())
}

// Update applies a completion message.
func (p *Nominees) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nomineesLoadedMsg:
		if !p.tokens.Current(state.SlotList, msg.tok) {
			return nil
		}
		p.fetching = false
		if msg.err != nil {
			logFailure("nominee fetch", msg.err)
			p.cache.Fail(msg.err)
			p.notes.Error(describeNominee(msg.err, "fetch", "fetching"))
			return nil
		}
		p.cache.Replace(msg.nominees)
		p.Pager.SetTotal(p.cache.Len())
		return nil

	case nomineeSavedMsg:
		if !p.tokens.Current(msg.slot, msg.tok) {
			return nil
		}
		p.submitting = false
		if msg.err != nil {
			if msg.created {
				logFailure("nominee create", msg.err)
				p.notes.Error(describeNominee(msg.err, "post", "posting"))
			} else {
				logFailure("nominee update", msg.err)
				p.notes.Error(describeNominee(msg.err, "update", "updating"))
			}
			p.Form.Fail()
			return nil
		}
		// A form reopened after Cancel keeps its own draft.
		if p.Form.State() == form.Submitting {
			p.Form.Succeed()
			p.Draft = form.NomineeDraft{}
		}
		if msg.created {
			p.notes.Success("Nominee added successfully!")
		} else {
			p.notes.Success("Nominee updated successfully!")
		}
		return p.afterWrite(func() {
			// Create may answer with an empty body.
			if msg.nominee.ID != "" {
				p.cache.Upsert(msg.nominee)
			}
		})

	case nomineeDeletedMsg:
		if !p.tokens.Current(msg.id, msg.tok) {
			return nil
		}
		delete(p.deleting, msg.id)
		if msg.err != nil {
			logFailure("nominee delete", msg.err)
			p.notes.Error(describeNominee(msg.err, "delete", "deleting"))
			return nil
		}
		p.cache.Remove(msg.id)
		if p.Form.EditingID() == msg.id {
			p.Cancel()
			p.submitting = false
		}
		p.notes.Success("Nominee deleted successfully!")
		return p.afterWrite(nil)
	}
	return nil
}

func (p *Nominees) afterWrite(patch func()) tea.Cmd {
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

// describeNominee formats nominee failures the way the screen always has:
// server errors carry the status code, transport errors do not.
func describeNominee(err error, verb, gerund string) string {
	if standalone(err) {
		return api.UserMessage(err)
	}
	noun := "nominee"
	if verb == "fetch" {
		noun = "nominees"
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf("Failed to %s %s: %d - %s", verb, noun, apiErr.Status, msg)
	}
	if verb == "fetch" {
		return "Failed to fetch nominees: " + api.UserMessage(err)
	}
	return fmt.Sprintf("Error %s %s: %s", gerund, noun, api.UserMessage(err))
}
