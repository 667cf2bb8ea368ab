package api

import (
	"context"
	"net/http"
)

// NomineeInput is the JSON payload for creating or updating a nominee.
type NomineeInput struct {
	Round      string     `json:"round"`
	Stage      Stage      `json:"stage"`
	Categories []Category `json:"categories"`
}

// ListNominees fetches every nominee.
func (c *Client) ListNominees(ctx context.Context) ([]Nominee, error) {
	var payload []Nominee
	if err := c.do(ctx, http.MethodGet, []string{"api", "nominee"}, nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = []Nominee{}
	}
	return payload, nil
}

// CreateNominee posts a new nominee. The backend may answer with an empty
// body, in which case the zero Nominee is returned.
func (c *Client) CreateNominee(ctx context.Context, in NomineeInput) (Nominee, error) {
	var created Nominee
	if err := c.do(ctx, http.MethodPost, []string{"api", "nominee"}, jsonBody{value: in}, &created); err != nil {
		return Nominee{}, err
	}
	return created, nil
}

// UpdateNominee replaces the nominee with the given id.
func (c *Client) UpdateNominee(ctx context.Context, id string, in NomineeInput) (Nominee, error) {
	if err := requireID(id); err != nil {
		return Nominee{}, err
	}
	var updated Nominee
	if err := c.do(ctx, http.MethodPut, []string{"api", "nominee", id}, jsonBody{value: in}, &updated); err != nil {
		return Nominee{}, err
	}
	return updated, nil
}

// DeleteNominee removes a nominee.
func (c *Client) DeleteNominee(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, []string{"api", "nominee", id}, nil, nil)
}
