package form

import (
	"fmt"
	"strings"

	"github.com/five82/podium/internal/api"
)

const (
	lastCategoryPrompt = "Are you sure you want to delete this category? This is the last one."
	lastArtistPrompt   = "Are you sure you want to delete this artist? This is the last one in this category."
)

// CategoryDraft is one category being edited.
type CategoryDraft struct {
	Name    string
	Artists []api.Artist
	// Expanded controls whether the artist rows are shown.
	Expanded bool
}

// NomineeDraft is the editable copy of a nominee.
type NomineeDraft struct {
	Round      string
	Stage      api.Stage
	Categories []CategoryDraft

	pending *pendingRemoval
}

type pendingRemoval struct {
	prompt string
	apply  func(*NomineeDraft)
}

// NewNomineeDraft returns a draft with one empty category holding one empty
// artist.
func NewNomineeDraft() NomineeDraft {
	return NomineeDraft{Categories: []CategoryDraft{blankCategory()}}
}

// NomineeDraftFrom deep-copies an existing nominee into a draft.
func NomineeDraftFrom(n api.Nominee) NomineeDraft {
	dup := n.Clone()
	d := NomineeDraft{Round: dup.Round, Stage: dup.Stage}
	for _, cat := range dup.Categories {
		d.Categories = append(d.Categories, CategoryDraft{Name: cat.Name, Artists: cat.Artists, Expanded: true})
	}
	return d
}

func blankCategory() CategoryDraft {
	return CategoryDraft{Artists: []api.Artist{{}}, Expanded: true}
}

// AddCategory appends an empty category and returns its index.
func (d *NomineeDraft) AddCategory() int {
	d.Categories = append(d.Categories, blankCategory())
	return len(d.Categories) - 1
}

// RemoveCategory drops category i. Removing the last category only records
// a pending confirmation; RemoveCategory then reports false.
func (d *NomineeDraft) RemoveCategory(i int) bool {
	if i < 0 || i >= len(d.Categories) {
		return false
	}
	if len(d.Categories) == 1 {
		d.pending = &pendingRemoval{
			prompt: lastCategoryPrompt,
			apply:  func(d *NomineeDraft) { d.Categories = []CategoryDraft{} },
		}
		return false
	}
	d.Categories = append(d.Categories[:i:i], d.Categories[i+1:]...)
	return true
}

// SetCategoryName renames category i.
func (d *NomineeDraft) SetCategoryName(i int, name string) {
	if i < 0 || i >= len(d.Categories) {
		return
	}
	d.Categories[i].Name = name
}

// ToggleDetails shows or hides the artists of category i.
func (d *NomineeDraft) ToggleDetails(i int) {
	if i < 0 || i >= len(d.Categories) {
		return
	}
	d.Categories[i].Expanded = !d.Categories[i].Expanded
}

// AddArtist appends an empty artist to category cat and returns its index,
// or -1 when cat is out of range.
func (d *NomineeDraft) AddArtist(cat int) int {
	if cat < 0 || cat >= len(d.Categories) {
		return -1
	}
	d.Categories[cat].Artists = append(d.Categories[cat].Artists, api.Artist{})
	return len(d.Categories[cat].Artists) - 1
}

// SetArtist updates the artist at (cat, i).
func (d *NomineeDraft) SetArtist(cat, i int, artist api.Artist) {
	if !d.validArtist(cat, i) {
		return
	}
	d.Categories[cat].Artists[i] = artist
}

// RemoveArtist drops the artist at (cat, i). Removing the last artist of a
// category records a pending confirmation and reports false.
func (d *NomineeDraft) RemoveArtist(cat, i int) bool {
	if !d.validArtist(cat, i) {
		return false
	}
	artists := d.Categories[cat].Artists
	if len(artists) == 1 {
		d.pending = &pendingRemoval{
			prompt: lastArtistPrompt,
			apply: func(d *NomineeDraft) {
				if cat < len(d.Categories) {
					d.Categories[cat].Artists = []api.Artist{}
				}
			},
		}
		return false
	}
	d.Categories[cat].Artists = append(artists[:i:i], artists[i+1:]...)
	return true
}

func (d *NomineeDraft) validArtist(cat, i int) bool {
	return cat >= 0 && cat < len(d.Categories) && i >= 0 && i < len(d.Categories[cat].Artists)
}

// Pending returns the prompt of a removal awaiting confirmation.
func (d *NomineeDraft) Pending() (string, bool) {
	if d.pending == nil {
		return "", false
	}
	return d.pending.prompt, true
}

// Confirm applies the pending removal. It reports whether there was one.
func (d *NomineeDraft) Confirm() bool {
	p := d.pending
	if p == nil {
		return false
	}
	d.pending = nil
	p.apply(d)
	return true
}

// Dismiss drops the pending removal.
func (d *NomineeDraft) Dismiss() {
	d.pending = nil
}

// ValidateScalars checks round and stage, the fields required to preview.
func (d NomineeDraft) ValidateScalars() error {
	if strings.TrimSpace(d.Round) == "" {
		return api.Invalid("round", "Round and stage are required.")
	}
	if _, ok := api.ParseStage(string(d.Stage)); !ok {
		return api.Invalid("stage", "Round and stage are required.")
	}
	return nil
}

// Validate checks everything required to submit.
func (d NomineeDraft) Validate() error {
	if err := d.ValidateScalars(); err != nil {
		return err
	}
	if len(d.Categories) == 0 {
		return api.Invalid("categories", "At least one category is required.")
	}
	for i, cat := range d.Categories {
		if len(cat.Artists) == 0 {
			return api.Invalid("artists", fmt.Sprintf("Category %d needs at least one artist.", i+1))
		}
	}
	return nil
}

// CycleStage moves to the next competition stage.
func (d *NomineeDraft) CycleStage() {
	for i, s := range api.Stages {
		if s == d.Stage {
			d.Stage = api.Stages[(i+1)%len(api.Stages)]
			return
		}
	}
	d.Stage = api.Stages[0]
}

// Input builds the request payload. The result shares nothing with d.
func (d NomineeDraft) Input() api.NomineeInput {
	in := api.NomineeInput{
		Round:      strings.TrimSpace(d.Round),
		Stage:      d.Stage,
		Categories: make([]api.Category, 0, len(d.Categories)),
	}
	for _, cat := range d.Categories {
		in.Categories = append(in.Categories, api.Category{Name: cat.Name, Artists: cat.Artists}.Clone())
	}
	return in
}
