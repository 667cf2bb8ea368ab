package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// AboutUsInput is the form payload for creating or updating the About Us entry.
type AboutUsInput struct {
	Title       string
	Description string
	// Image is sent only when a new file was chosen. On update the backend
	// keeps the stored image when Image is nil.
	Image *Upload
}

func (in AboutUsInput) body() multipartBody {
	body := multipartBody{
		fields: []formField{
			{name: "title", value: in.Title},
			{name: "description", value: in.Description},
		},
	}
	if in.Image != nil {
		body.files = append(body.files, formFile{field: "image", upload: *in.Image})
	}
	return body
}

// aboutUsEnvelope is the {data: ...} wrapper /api/aboutus answers with.
type aboutUsEnvelope[T any] struct {
	Data *T `json:"data"`
}

// ListAboutUs fetches the About Us entries (expected zero or one).
func (c *Client) ListAboutUs(ctx context.Context) ([]AboutUsEntry, error) {
	var payload aboutUsEnvelope[[]AboutUsEntry]
	if err := c.do(ctx, http.MethodGet, []string{"api", "aboutus"}, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []AboutUsEntry{}, nil
	}
	return *payload.Data, nil
}

// CreateAboutUs posts a new About Us entry.
func (c *Client) CreateAboutUs(ctx context.Context, in AboutUsInput) (AboutUsEntry, error) {
	var payload aboutUsEnvelope[AboutUsEntry]
	if err := c.do(ctx, http.MethodPost, []string{"api", "aboutus"}, in.body(), &payload); err != nil {
		return AboutUsEntry{}, err
	}
	return unwrapAboutUs(payload, "POST /api/aboutus")
}

// UpdateAboutUs replaces the About Us entry with the given id.
func (c *Client) UpdateAboutUs(ctx context.Context, id string, in AboutUsInput) (AboutUsEntry, error) {
	if err := requireID(id); err != nil {
		return AboutUsEntry{}, err
	}
	var payload aboutUsEnvelope[AboutUsEntry]
	if err := c.do(ctx, http.MethodPut, []string{"api", "aboutus", id}, in.body(), &payload); err != nil {
		return AboutUsEntry{}, err
	}
	return unwrapAboutUs(payload, "PUT /api/aboutus/"+id)
}

// DeleteAboutUs removes the About Us entry with the given id.
func (c *Client) DeleteAboutUs(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, []string{"api", "aboutus", id}, nil, nil)
}

func unwrapAboutUs(payload aboutUsEnvelope[AboutUsEntry], op string) (AboutUsEntry, error) {
	if payload.Data == nil || strings.TrimSpace(payload.Data.ID) == "" {
		return AboutUsEntry{}, &NetworkError{Op: op, Err: fmt.Errorf("unexpected response format: missing data")}
	}
	return *payload.Data, nil
}
