package api

import (
	"strings"
	"time"
)

const backendDateLayout = "2006-01-02 15:04:05"

// AboutUsEntry mirrors an item of /api/aboutus. The backend keeps at most one.
type AboutUsEntry struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Key returns the backend identifier.
func (e AboutUsEntry) Key() string { return e.ID }

// Clone returns an independent copy.
func (e AboutUsEntry) Clone() AboutUsEntry { return e }

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (e AboutUsEntry) ParsedCreatedAt() time.Time {
	return parseTime(e.CreatedAt)
}

// Level is a sponsorship tier.
type Level string

const (
	LevelPlatinum Level = "Platinum"
	LevelGold     Level = "Gold"
)

// Levels lists sponsorship tiers in display order.
var Levels = []Level{LevelPlatinum, LevelGold}

// ParseLevel matches a tier name case-insensitively.
func ParseLevel(value string) (Level, bool) {
	trimmed := strings.TrimSpace(value)
	for _, l := range Levels {
		if strings.EqualFold(trimmed, string(l)) {
			return l, true
		}
	}
	return "", false
}

// Logo is an uploaded sponsor image as stored by the backend.
type Logo struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
}

// Sponsor mirrors an item of /api/sponsor.
type Sponsor struct {
	ID          string `json:"_id"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Logos       []Logo `json:"logos"`
}

// Key returns the backend identifier.
func (s Sponsor) Key() string { return s.ID }

// Clone returns a copy that shares no slices with s.
func (s Sponsor) Clone() Sponsor {
	dup := s
	if s.Logos != nil {
		dup.Logos = make([]Logo, len(s.Logos))
		copy(dup.Logos, s.Logos)
	}
	return dup
}

// Stage is the competition stage a nominee list belongs to.
type Stage string

const (
	StageFinal       Stage = "Final"
	StageSemiFinal   Stage = "Semi-Final"
	StagePreliminary Stage = "Preliminary"
)

// Stages lists competition stages in display order.
var Stages = []Stage{StageFinal, StageSemiFinal, StagePreliminary}

// ParseStage matches a stage name case-insensitively.
func ParseStage(value string) (Stage, bool) {
	trimmed := strings.TrimSpace(value)
	for _, s := range Stages {
		if strings.EqualFold(trimmed, string(s)) {
			return s, true
		}
	}
	return "", false
}

// Artist is a nominated act and the SMS short code fans vote with.
type Artist struct {
	Name      string `json:"name"`
	SMSNumber string `json:"smsNumber"`
}

// Category groups the artists nominated for one award.
type Category struct {
	Name    string   `json:"category"`
	Artists []Artist `json:"artists"`
}

// Nominee mirrors an item of /api/nominee: one round and stage of nominations.
type Nominee struct {
	ID         string     `json:"_id,omitempty"`
	Round      string     `json:"round"`
	Stage      Stage      `json:"stage"`
	Categories []Category `json:"categories"`
	Created    string     `json:"created,omitempty"`
}

// Key returns the backend identifier.
func (n Nominee) Key() string { return n.ID }

// Clone returns a deep copy that shares no slices with n.
func (n Nominee) Clone() Nominee {
	dup := n
	if n.Categories != nil {
		dup.Categories = make([]Category, len(n.Categories))
		for i, cat := range n.Categories {
			dup.Categories[i] = cat.Clone()
		}
	}
	return dup
}

// ParsedCreated returns the parsed Created timestamp.
func (n Nominee) ParsedCreated() time.Time {
	return parseTime(n.Created)
}

// Clone returns a copy that shares no slices with c.
func (c Category) Clone() Category {
	dup := c
	if c.Artists != nil {
		dup.Artists = make([]Artist, len(c.Artists))
		copy(dup.Artists, c.Artists)
	}
	return dup
}

// ArtistCount returns the number of artists across all categories.
func (n Nominee) ArtistCount() int {
	total := 0
	for _, cat := range n.Categories {
		total += len(cat.Artists)
	}
	return total
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(backendDateLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
