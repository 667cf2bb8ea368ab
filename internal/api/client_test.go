package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_EmptyAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("   ")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u != nil {
		t.Fatalf("parseBaseURL(blank) = %v, want nil", u)
	}

	u, err = parseBaseURL("localhost:5000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "localhost:5000" {
		t.Fatalf("parseBaseURL = %q, want http://localhost:5000", u.String())
	}

	u, err = parseBaseURL("https://example.com/backend/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/backend" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	for _, bad := range []string{"http://", "http:///", "https://", "http:", "ftp://files.example", "http://:5000"} {
		if u, err := parseBaseURL(bad); err == nil {
			t.Fatalf("parseBaseURL(%q) = %q, want error", bad, u.String())
		}
	}
}

func TestClient_MissingBaseURLIsConfigErrorWithoutNetwork(t *testing.T) {
	c, err := NewClient("", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.Configured() {
		t.Fatalf("Configured() = true, want false")
	}

	ctx := context.Background()
	calls := []func() error{
		func() error { _, err := c.ListAboutUs(ctx); return err },
		func() error { _, err := c.ListSponsors(ctx); return err },
		func() error { _, err := c.ListNominees(ctx); return err },
		func() error { return c.DeleteNominee(ctx, "abc") },
		func() error { _, err := c.CreateNominee(ctx, NomineeInput{Round: "1"}); return err },
	}
	for i, call := range calls {
		err := call()
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("call %d error = %v, want ConfigError", i, err)
		}
	}
	if got := UserMessage(errNoBaseURL); got != "Configuration error: API Base URL is not set." {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestClient_AboutUsEnvelopeAndMultipart(t *testing.T) {
	t.Parallel()

	var gotTitle, gotImageName, gotContentType, gotRequestID, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(requestIDHeader)
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/aboutus":
			_, _ = w.Write([]byte(`{"data":[{"_id":"a1","title":"Hello","description":"World","image":"http://img"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/aboutus":
			gotContentType = r.Header.Get("Content-Type")
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Errorf("ParseMultipartForm: %v", err)
			}
			gotTitle = r.FormValue("title")
			if _, header, err := r.FormFile("image"); err == nil {
				gotImageName = header.Filename
			}
			_, _ = w.Write([]byte(`{"data":{"_id":"a2","title":"T","description":"D"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/aboutus/a2":
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	entries, err := c.ListAboutUs(ctx)
	if err != nil {
		t.Fatalf("ListAboutUs returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "a1" || entries[0].Title != "Hello" {
		t.Fatalf("ListAboutUs = %#v, want one entry a1", entries)
	}

	created, err := c.CreateAboutUs(ctx, AboutUsInput{
		Title:       "T",
		Description: "D",
		Image:       &Upload{Filename: "team.png", Data: []byte("png")},
	})
	if err != nil {
		t.Fatalf("CreateAboutUs returned error: %v", err)
	}
	if created.ID != "a2" {
		t.Fatalf("CreateAboutUs id = %q, want a2", created.ID)
	}
	if gotTitle != "T" || gotImageName != "team.png" {
		t.Fatalf("multipart title=%q image=%q, want T/team.png", gotTitle, gotImageName)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("Content-Type = %q, want multipart/form-data", gotContentType)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID header missing")
	}
	if !strings.HasPrefix(gotUserAgent, "podium/") {
		t.Fatalf("User-Agent = %q, want podium/*", gotUserAgent)
	}

	// A success status without the data envelope is treated as a failure.
	_, err = c.UpdateAboutUs(ctx, "a2", AboutUsInput{Title: "T", Description: "D"})
	var netErr *NetworkError
	if !errors.As(err, &netErr) || !strings.Contains(err.Error(), "unexpected response format") {
		t.Fatalf("UpdateAboutUs error = %v, want unexpected response format", err)
	}
}

func TestClient_SponsorCreateWithoutLogosNeverHitsNetwork(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.CreateSponsor(context.Background(), SponsorInput{
		CompanyName: "Acme",
		Description: "desc",
		Level:       LevelGold,
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("CreateSponsor error = %v, want ValidationError", err)
	}
	if valErr.Message != "At least one logo image is required." {
		t.Fatalf("ValidationError message = %q", valErr.Message)
	}

	tooMany := make([]Upload, MaxLogos+1)
	_, err = c.CreateSponsor(context.Background(), SponsorInput{CompanyName: "Acme", Description: "d", Level: LevelGold, Logos: tooMany})
	if !errors.As(err, &valErr) {
		t.Fatalf("CreateSponsor(6 logos) error = %v, want ValidationError", err)
	}

	if err := c.DeleteSponsor(context.Background(), " "); !errors.As(err, &valErr) {
		t.Fatalf("DeleteSponsor(blank) error = %v, want ValidationError", err)
	}
}

func TestClient_SponsorCreateRepeatsLogosAndUpdateIsJSON(t *testing.T) {
	t.Parallel()

	var logoNames []string
	var updateBody map[string]any
	var updateContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/sponsor":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Errorf("ParseMultipartForm: %v", err)
			}
			for _, fh := range r.MultipartForm.File["logos"] {
				logoNames = append(logoNames, fh.Filename)
			}
			_ = json.NewEncoder(w).Encode(Sponsor{ID: "s1", CompanyName: r.FormValue("companyName"), Level: Level(r.FormValue("level")), Logos: []Logo{{URL: "u1", PublicID: "p1"}}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/sponsor/s1":
			updateContentType = r.Header.Get("Content-Type")
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &updateBody)
			_ = json.NewEncoder(w).Encode(Sponsor{ID: "s1", CompanyName: "Acme 2", Level: LevelPlatinum})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	sp, err := c.CreateSponsor(context.Background(), SponsorInput{
		CompanyName: "Acme",
		Description: "desc",
		Level:       LevelGold,
		Logos:       []Upload{{Filename: "a.png", Data: []byte("a")}, {Filename: "b.svg", Data: []byte("b")}},
	})
	if err != nil {
		t.Fatalf("CreateSponsor returned error: %v", err)
	}
	if sp.ID != "s1" || sp.Level != LevelGold || len(sp.Logos) != 1 {
		t.Fatalf("CreateSponsor = %#v", sp)
	}
	if len(logoNames) != 2 || logoNames[0] != "a.png" || logoNames[1] != "b.svg" {
		t.Fatalf("logos field = %v, want [a.png b.svg]", logoNames)
	}

	if _, err := c.UpdateSponsor(context.Background(), "s1", SponsorUpdate{CompanyName: "Acme 2", Description: "d", Level: LevelPlatinum}); err != nil {
		t.Fatalf("UpdateSponsor returned error: %v", err)
	}
	if updateContentType != "application/json" {
		t.Fatalf("update Content-Type = %q, want application/json", updateContentType)
	}
	if _, ok := updateBody["logos"]; ok {
		t.Fatalf("update body carries logos: %v", updateBody)
	}
	if updateBody["companyName"] != "Acme 2" || updateBody["level"] != "Platinum" {
		t.Fatalf("update body = %v", updateBody)
	}
}

func TestClient_APIErrorPrefersServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/nominee":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"round is required"}`))
		case "/api/sponsor":
			http.Error(w, "upstream exploded", http.StatusBadGateway)
		case "/api/aboutus":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListNominees(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("ListNominees error = %v, want APIError 400", err)
	}
	if got := UserMessage(err); got != "round is required" {
		t.Fatalf("UserMessage = %q, want server message", got)
	}
	if RequestID(err) == "" {
		t.Fatalf("RequestID(err) empty, want propagated id")
	}

	_, err = c.ListSponsors(context.Background())
	if got := UserMessage(err); got != "upstream exploded" {
		t.Fatalf("UserMessage = %q, want plain-text body", got)
	}

	_, err = c.ListAboutUs(context.Background())
	var netErr *NetworkError
	if !errors.As(err, &netErr) || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListAboutUs error = %v, want decode response NetworkError", err)
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.ListSponsors(context.Background())
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("ListSponsors error = %v, want NetworkError", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure classified as APIError")
	}
	if UserMessage(err) == "" {
		t.Fatalf("UserMessage empty for transport failure")
	}
}

func TestClient_NomineeCreateAcceptsEmptyBody(t *testing.T) {
	t.Parallel()

	var got NomineeInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &got)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	in := NomineeInput{
		Round: "12TH",
		Stage: StageFinal,
		Categories: []Category{{
			Name:    "Best Song",
			Artists: []Artist{{Name: "A", SMSNumber: "123"}},
		}},
	}
	created, err := c.CreateNominee(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateNominee returned error: %v", err)
	}
	if created.ID != "" {
		t.Fatalf("CreateNominee = %#v, want zero value", created)
	}
	if got.Round != "12TH" || len(got.Categories) != 1 || got.Categories[0].Name != "Best Song" {
		t.Fatalf("server received %#v", got)
	}
}
