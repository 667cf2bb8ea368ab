package form

import (
	"strings"

	"github.com/five82/podium/internal/api"
)

// AboutUsDraft is the editable copy of the About Us entry.
type AboutUsDraft struct {
	Title       string
	Description string
	// ImageURL is the stored image when editing.
	ImageURL string
	// Image is a newly chosen file, sent on submit.
	Image *api.Upload
}

// AboutUsDraftFrom loads an existing entry into a draft.
func AboutUsDraftFrom(e api.AboutUsEntry) AboutUsDraft {
	return AboutUsDraft{
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.Image,
	}
}

// SetImage attaches a new image file.
func (d *AboutUsDraft) SetImage(u api.Upload) {
	d.Image = &u
}

// ClearImage drops the newly chosen file. The stored image is kept.
func (d *AboutUsDraft) ClearImage() {
	d.Image = nil
}

// Validate checks the required fields.
func (d AboutUsDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Description) == "" {
		return api.Invalid("title", "Title and description are required.")
	}
	return nil
}

// Input builds the request payload.
func (d AboutUsDraft) Input() api.AboutUsInput {
	in := api.AboutUsInput{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
	}
	if d.Image != nil {
		img := *d.Image
		in.Image = &img
	}
	return in
}
