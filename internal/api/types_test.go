package api

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNomineeWireFormat(t *testing.T) {
	raw := `{"_id":"n1","round":"12TH","stage":"Final","created":"2025-03-01T10:00:00Z",
		"categories":[{"category":"Best Song","artists":[{"name":"A","smsNumber":"123"}]}]}`
	var n Nominee
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if n.ID != "n1" || n.Stage != StageFinal || n.Categories[0].Name != "Best Song" {
		t.Fatalf("decoded nominee = %#v", n)
	}
	if n.Categories[0].Artists[0].SMSNumber != "123" {
		t.Fatalf("smsNumber not decoded: %#v", n.Categories[0].Artists)
	}
	if got := n.ParsedCreated(); got.Year() != 2025 || got.Month() != time.March {
		t.Fatalf("ParsedCreated = %v", got)
	}
	if n.ArtistCount() != 1 {
		t.Fatalf("ArtistCount = %d, want 1", n.ArtistCount())
	}
}

func TestCloneSharesNoSlices(t *testing.T) {
	n := Nominee{ID: "n1", Categories: []Category{{Name: "c", Artists: []Artist{{Name: "a"}}}}}
	dup := n.Clone()
	dup.Categories[0].Name = "changed"
	dup.Categories[0].Artists[0].Name = "changed"
	if n.Categories[0].Name != "c" || n.Categories[0].Artists[0].Name != "a" {
		t.Fatalf("Nominee.Clone aliased the original: %#v", n)
	}

	s := Sponsor{ID: "s1", Logos: []Logo{{URL: "u"}}}
	sDup := s.Clone()
	sDup.Logos[0].URL = "changed"
	if s.Logos[0].URL != "u" {
		t.Fatalf("Sponsor.Clone aliased logos")
	}
}

func TestParseLevelAndStage(t *testing.T) {
	if l, ok := ParseLevel(" gold "); !ok || l != LevelGold {
		t.Fatalf("ParseLevel(gold) = %q, %v", l, ok)
	}
	if _, ok := ParseLevel("Silver"); ok {
		t.Fatalf("ParseLevel(Silver) ok, want false")
	}
	if s, ok := ParseStage("semi-final"); !ok || s != StageSemiFinal {
		t.Fatalf("ParseStage(semi-final) = %q, %v", s, ok)
	}
}

func TestParseTimeLayouts(t *testing.T) {
	if parseTime("2025-12-13T10:11:12Z").IsZero() {
		t.Fatalf("parseTime should parse RFC3339")
	}
	got := parseTime("2025-12-13 10:11:12")
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 13 {
		t.Fatalf("parseTime = %v, want 2025-12-13", got)
	}
	if !parseTime("yesterday").IsZero() {
		t.Fatalf("parseTime should return zero for garbage")
	}
}

func TestLoadUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Logo.PNG")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	up, err := LoadUpload(path)
	if err != nil {
		t.Fatalf("LoadUpload returned error: %v", err)
	}
	if up.Filename != "Logo.PNG" || up.ContentType != "image/png" || string(up.Data) != "png-bytes" {
		t.Fatalf("LoadUpload = %#v", up)
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadUpload(txt); err == nil {
		t.Fatalf("LoadUpload(.txt) returned nil error")
	}
}
