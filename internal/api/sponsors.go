package api

import (
	"context"
	"net/http"
	"strings"
)

// SponsorInput is the payload for creating a sponsor.
type SponsorInput struct {
	CompanyName string
	Description string
	Level       Level
	Logos       []Upload
}

// SponsorUpdate is the payload for updating a sponsor. Logos cannot change
// through an update.
type SponsorUpdate struct {
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
}

// Validate checks the client-side rules for a sponsor creation.
func (in SponsorInput) Validate() error {
	if strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.Description) == "" {
		return Invalid("companyName", "Company name and description are required.")
	}
	if _, ok := ParseLevel(string(in.Level)); !ok {
		return Invalid("level", "Select a sponsor level.")
	}
	if len(in.Logos) == 0 {
		return Invalid("logos", "At least one logo image is required.")
	}
	if len(in.Logos) > MaxLogos {
		return Invalid("logos", "A sponsor can have at most 5 logos.")
	}
	return nil
}

// Validate checks the client-side rules for a sponsor update.
func (in SponsorUpdate) Validate() error {
	if strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.Description) == "" {
		return Invalid("companyName", "Company name and description are required.")
	}
	if _, ok := ParseLevel(string(in.Level)); !ok {
		return Invalid("level", "Select a sponsor level.")
	}
	return nil
}

// ListSponsors fetches every sponsor.
func (c *Client) ListSponsors(ctx context.Context) ([]Sponsor, error) {
	var payload []Sponsor
	if err := c.do(ctx, http.MethodGet, []string{"api", "sponsor"}, nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = []Sponsor{}
	}
	return payload, nil
}

// CreateSponsor posts a new sponsor with its logos. The input is validated
// before any request is made.
func (c *Client) CreateSponsor(ctx context.Context, in SponsorInput) (Sponsor, error) {
	if err := in.Validate(); err != nil {
		return Sponsor{}, err
	}
	body := multipartBody{
		fields: []formField{
			{name: "companyName", value: in.CompanyName},
			{name: "description", value: in.Description},
			{name: "level", value: string(in.Level)},
		},
	}
	for _, logo := range in.Logos {
		body.files = append(body.files, formFile{field: "logos", upload: logo})
	}
	var created Sponsor
	if err := c.do(ctx, http.MethodPost, []string{"api", "sponsor"}, body, &created); err != nil {
		return Sponsor{}, err
	}
	return created, nil
}

// UpdateSponsor changes the text fields and level of a sponsor.
func (c *Client) UpdateSponsor(ctx context.Context, id string, in SponsorUpdate) (Sponsor, error) {
	if err := requireID(id); err != nil {
		return Sponsor{}, err
	}
	if err := in.Validate(); err != nil {
		return Sponsor{}, err
	}
	var updated Sponsor
	if err := c.do(ctx, http.MethodPut, []string{"api", "sponsor", id}, jsonBody{value: in}, &updated); err != nil {
		return Sponsor{}, err
	}
	return updated, nil
}

// DeleteSponsor removes a sponsor.
func (c *Client) DeleteSponsor(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, []string{"api", "sponsor", id}, nil, nil)
}
