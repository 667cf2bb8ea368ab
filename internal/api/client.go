package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the awards backend REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	requestID func() string
}

const (
	defaultUserAgent = "podium/0.1"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 64 * 1024
	requestIDHeader  = "X-Request-ID"
)

// NewClient builds a Client for baseURL. An empty baseURL is accepted: the
// client is created, and each operation reports a ConfigError before any
// network traffic.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		requestID: uuid.NewString,
	}, nil
}

// Configured reports whether the client has a base URL.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != nil
}

// BaseURL returns the configured base URL, or "" when unset.
func (c *Client) BaseURL() string {
	if !c.Configured() {
		return ""
	}
	return c.baseURL.String()
}

// requestBody encodes an outgoing payload.
type requestBody interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	value any
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", fmt.Errorf("encode json: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field  string
	upload Upload
}

type multipartBody struct {
	fields []formField
	files  []formFile
}

func (b multipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range b.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, f := range b.files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.upload.Filename))
		header.Set("Content-Type", f.upload.contentType())
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.field, err)
		}
		if _, err := part.Write(f.upload.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// do issues one request. dest may be nil when the response body is ignored.
// An empty response body leaves dest untouched.
func (c *Client) do(ctx context.Context, method string, segments []string, body requestBody, dest any) error {
	if !c.Configured() {
		return errNoBaseURL
	}
	reqURL := c.baseURL.JoinPath(segments...)
	op := method + " " + reqURL.Path
	reqID := c.requestID()

	var reader io.Reader
	contentType := ""
	if body != nil {
		r, ct, err := body.encode()
		if err != nil {
			return &NetworkError{Op: op, RequestID: reqID, Err: err}
		}
		reader, contentType = r, ct
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return &NetworkError{Op: op, RequestID: reqID, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, RequestID: reqID, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp, reqID)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, RequestID: reqID, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &NetworkError{Op: op, RequestID: reqID, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func decodeAPIError(resp *http.Response, reqID string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{Status: resp.StatusCode, RequestID: reqID}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = strings.TrimSpace(payload.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(payload.Error)
		}
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(data))
	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	// Only a bare host:port gets a default scheme; "http://" alone must not
	// turn into a host named "http:".
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse api base url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Hostname() == "" || strings.HasSuffix(u.Host, ":") {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return Invalid("id", "An id is required.")
	}
	return nil
}
