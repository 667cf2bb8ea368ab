package panel

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/form"
	"github.com/five82/podium/internal/state"
)

type sponsorsLoadedMsg struct {
	tok      state.Token
	sponsors []api.Sponsor
	err      error
}

type sponsorSavedMsg struct {
	tok     state.Token
	slot    string
	created bool
	sponsor api.Sponsor
	err     error
}

type sponsorDeletedMsg struct {
	tok state.Token
	id  string
	err error
}

// Sponsors is the sponsor screen. Writes refetch the list.
type Sponsors struct {
	Strategy state.Strategy
	Form     form.Machine
	Draft    form.SponsorDraft
	Pager    state.Pager

	store  api.SponsorStore
	ctx    context.Context
	notes  Notifier
	cache  state.Cache[api.Sponsor]
	tokens state.Tokens
	level  api.Level

	fetching   bool
	submitting bool
	deleting   map[string]bool
}

// NewSponsors builds the sponsor screen over store.
func NewSponsors(store api.SponsorStore, opts Options) *Sponsors {
	return &Sponsors{
		Strategy: state.RefetchAfterWrite,
		Draft:    form.NewSponsorDraft(),
		Pager:    state.NewPager(opts.PageSize),
		store:    store,
		ctx:      opts.context(),
		notes:    opts.notifier(),
		deleting: make(map[string]bool),
	}
}

// Sponsors returns a copy of every cached sponsor, ignoring the filter.
func (p *Sponsors) Sponsors() []api.Sponsor { return p.cache.Snapshot() }

// Visible returns the sponsors matching the level filter.
func (p *Sponsors) Visible() []api.Sponsor {
	return state.FilterSponsorsByLevel(p.cache.Snapshot(), p.level)
}

// PageSponsors returns the visible sponsors on the current page.
func (p *Sponsors) PageSponsors() []api.Sponsor {
	return state.Page(&p.Pager, p.Visible())
}

// Level returns the active level filter, "" for all levels.
func (p *Sponsors) Level() api.Level { return p.level }

// SetLevel filters the list to level and returns to page 1.
func (p *Sponsors) SetLevel(level api.Level) {
	p.level = level
	p.Pager.GoTo(1)
	p.Pager.SetTotal(len(p.Visible()))
}

// CycleLevel steps the filter through all levels and back to none.
func (p *Sponsors) CycleLevel() {
	if p.level == "" {
		p.SetLevel(api.Levels[0])
		return
	}
	for i, l := range api.Levels {
		if l == p.level {
			if i+1 < len(api.Levels) {
				p.SetLevel(api.Levels[i+1])
			} else {
				p.SetLevel("")
			}
			return
		}
	}
	p.SetLevel("")
}

// Fetching reports whether a list request is outstanding.
func (p *Sponsors) Fetching() bool { return p.fetching }

// Submitting reports whether a create or update is outstanding.
func (p *Sponsors) Submitting() bool { return p.submitting }

// Deleting reports whether id is being deleted.
func (p *Sponsors) Deleting(id string) bool { return p.deleting[id] }

// Loaded reports whether a list has ever been received.
func (p *Sponsors) Loaded() bool { return p.cache.Loaded() }

// Load fetches the sponsors.
func (p *Sponsors) Load() tea.Cmd {
	tok := p.tokens.Issue(state.SlotList)
	p.fetching = true
	store, ctx := p.store, p.ctx
	return func() tea.Msg {
		sponsors, err := store.ListSponsors(ctx)
		return sponsorsLoadedMsg{tok: tok, sponsors: sponsors, err: err}
	}
}

// OpenAdd opens a blank form at the default level.
func (p *Sponsors) OpenAdd() error {
	if err := p.Form.OpenAdd(); err != nil {
		return err
	}
	p.Draft = form.NewSponsorDraft()
	return nil
}

// Edit loads sponsor id into the form. Its logos are shown but cannot be
// changed.
func (p *Sponsors) Edit(id string) bool {
	sponsor, ok := p.cache.Find(id)
	if !ok {
		return false
	}
	if err := p.Form.Edit(id); err != nil {
		return false
	}
	p.Draft = form.SponsorDraftFrom(sponsor)
	return true
}

// Cancel closes the form and discards the draft and any chosen files.
func (p *Sponsors) Cancel() {
	p.Form.Cancel()
	p.Draft = form.NewSponsorDraft()
}

// AttachLogos loads image files into the draft. Files beyond the logo limit
// are dropped.
func (p *Sponsors) AttachLogos(paths ...string) int {
	var uploads []api.Upload
	for _, path := range paths {
		upload, err := api.LoadUpload(path)
		if err != nil {
			p.notes.Error(api.UserMessage(err))
			continue
		}
		uploads = append(uploads, upload)
	}
	if dropped := p.Draft.AddLogos(uploads...); dropped > 0 {
		p.notes.Error(fmt.Sprintf("A sponsor can have at most %d logos; %d file(s) were dropped.", api.MaxLogos, dropped))
	}
	return len(p.Draft.Logos)
}

// Submit sends the draft as a create or an update.
func (p *Sponsors) Submit() tea.Cmd {
	editing := p.Form.IsEditing()
	if err := p.Draft.Validate(editing); err != nil {
		p.notes.Error(api.UserMessage(err))
		return nil
	}
	if err := p.Form.Submit(); err != nil {
		return nil
	}
	p.submitting = true

	store, ctx := p.store, p.ctx
	if editing {
		id := p.Form.EditingID()
		in := p.Draft.UpdateInput()
		tok := p.tokens.Issue(id)
		return func() tea.Msg {
			sponsor, err := store.UpdateSponsor(ctx, id, in)
			return sponsorSavedMsg{tok: tok, slot: id, sponsor: sponsor, err: err}
		}
	}
	in := p.Draft.CreateInput()
	tok := p.tokens.Issue(state.SlotSingleton)
	return func() tea.Msg {
		sponsor, err := store.CreateSponsor(ctx, in)
		return sponsorSavedMsg{tok: tok, slot: state.SlotSingleton, created: true, sponsor: sponsor, err: err}
	}
}

// Delete removes sponsor id.
func (p *Sponsors) Delete(id string) tea.Cmd {
	if p.deleting[id] {
		return nil
	}
	tok := p.tokens.Issue(id)
	p.deleting[id] = true
	store, ctx := p.store, p.ctx
	return func() tea.Msg {
		return sponsorDeletedMsg{tok: tok, id: id, err: store.DeleteSponsor(ctx, id)}
	}
}

// SetPageSize changes the rows per page and returns to page 1.
func (p *Sponsors) SetPageSize(n int) {
	p.Pager.SetPageSize(n)
	p.Pager.SetTotal(len(p.Visible()))
}

// Update applies a completion message.
func (p *Sponsors) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sponsorsLoadedMsg:
		if !p.tokens.Current(state.SlotList, msg.tok) {
			return nil
		}
		p.fetching = false
		if msg.err != nil {
			logFailure("sponsor fetch", msg.err)
			p.cache.Fail(msg.err)
			p.notes.Error(describe(msg.err, "Failed to fetch sponsors: %s"))
			return nil
		}
		p.cache.Replace(msg.sponsors)
		p.Pager.SetTotal(len(p.Visible()))
		return nil

	case sponsorSavedMsg:
		if !p.tokens.Current(msg.slot, msg.tok) {
			return nil
		}
		p.submitting = false
		if msg.err != nil {
			if msg.created {
				logFailure("sponsor create", msg.err)
				p.notes.Error(describe(msg.err, "Failed to add sponsor: %s"))
			} else {
				logFailure("sponsor update", msg.err)
				p.notes.Error(describe(msg.err, "Failed to update sponsor: %s"))
			}
			p.Form.Fail()
			return nil
		}
		// A form reopened after Cancel keeps its own draft.
		if p.Form.State() == form.Submitting {
			p.Form.Succeed()
			p.Draft = form.NewSponsorDraft()
		}
		if msg.created {
			p.notes.Success("Sponsor added successfully!")
		} else {
			p.notes.Success("Sponsor updated successfully!")
		}
		return p.afterWrite(func() {
			if msg.sponsor.ID != "" {
				p.cache.Upsert(msg.sponsor)
			}
		})

	case sponsorDeletedMsg:
		if !p.tokens.Current(msg.id, msg.tok) {
			return nil
		}
		delete(p.deleting, msg.id)
		if msg.err != nil {
			logFailure("sponsor delete", msg.err)
			p.notes.Error(describe(msg.err, "Failed to delete sponsor: %s"))
			return nil
		}
		p.cache.Remove(msg.id)
		if p.Form.EditingID() == msg.id {
			p.Cancel()
			p.submitting = false
		}
		p.notes.Success("Sponsor deleted successfully!")
		return p.afterWrite(nil)
	}
	return nil
}

func (p *Sponsors) afterWrite(patch func()) tea.Cmd {
	p.tokens.Invalidate(state.SlotList)
	if p.Strategy == state.RefetchAfterWrite {
		p.Pager.SetTotal(len(p.Visible()))
		return p.Load()
	}
	p.fetching = false
	if patch != nil {
		patch()
	}
	p.Pager.SetTotal(len(p.Visible()))
	return nil
}
