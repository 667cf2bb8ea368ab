package form

import (
	"strings"

	"github.com/five82/podium/internal/api"
)

// SponsorDraft is the editable copy of a sponsor.
type SponsorDraft struct {
	CompanyName string
	Description string
	Level       api.Level
	// Logos are files chosen for a new sponsor.
	Logos []api.Upload
	// Existing are the stored logos of the sponsor being edited. Updates
	// never change them.
	Existing []api.Logo
}

// NewSponsorDraft returns a blank draft at the default level.
func NewSponsorDraft() SponsorDraft {
	return SponsorDraft{Level: api.LevelPlatinum}
}

// SponsorDraftFrom loads an existing sponsor into a draft.
func SponsorDraftFrom(s api.Sponsor) SponsorDraft {
	dup := s.Clone()
	return SponsorDraft{
		CompanyName: dup.CompanyName,
		Description: dup.Description,
		Level:       dup.Level,
		Existing:    dup.Logos,
	}
}

// AddLogos appends uploads up to api.MaxLogos and returns how many were
// dropped.
func (d *SponsorDraft) AddLogos(uploads ...api.Upload) int {
	room := api.MaxLogos - len(d.Logos)
	if room < 0 {
		room = 0
	}
	if len(uploads) <= room {
		d.Logos = append(d.Logos, uploads...)
		return 0
	}
	d.Logos = append(d.Logos, uploads[:room]...)
	return len(uploads) - room
}

// RemoveLogo drops the upload at i.
func (d *SponsorDraft) RemoveLogo(i int) bool {
	if i < 0 || i >= len(d.Logos) {
		return false
	}
	d.Logos = append(d.Logos[:i:i], d.Logos[i+1:]...)
	return true
}

// CycleLevel moves to the next sponsor level.
func (d *SponsorDraft) CycleLevel() {
	for i, l := range api.Levels {
		if l == d.Level {
			d.Level = api.Levels[(i+1)%len(api.Levels)]
			return
		}
	}
	d.Level = api.Levels[0]
}

// CreateInput builds the payload for a new sponsor.
func (d SponsorDraft) CreateInput() api.SponsorInput {
	logos := make([]api.Upload, len(d.Logos))
	copy(logos, d.Logos)
	return api.SponsorInput{
		CompanyName: strings.TrimSpace(d.CompanyName),
		Description: strings.TrimSpace(d.Description),
		Level:       d.Level,
		Logos:       logos,
	}
}

// UpdateInput builds the payload for an update.
func (d SponsorDraft) UpdateInput() api.SponsorUpdate {
	return api.SponsorUpdate{
		CompanyName: strings.TrimSpace(d.CompanyName),
		Description: strings.TrimSpace(d.Description),
		Level:       d.Level,
	}
}

// Validate checks the draft for a create, or for an update when editing.
func (d SponsorDraft) Validate(editing bool) error {
	if editing {
		return d.UpdateInput().Validate()
	}
	return d.CreateInput().Validate()
}
