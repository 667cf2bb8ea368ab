package form

import (
	"errors"
	"reflect"
	"testing"

	"github.com/five82/podium/internal/api"
)

func TestNewNomineeDraftHasOneCategoryAndArtist(t *testing.T) {
	d := NewNomineeDraft()
	if len(d.Categories) != 1 || len(d.Categories[0].Artists) != 1 {
		t.Fatalf("blank draft = %#v, want 1 category with 1 artist", d.Categories)
	}
	if !d.Categories[0].Expanded {
		t.Fatalf("blank category should start expanded")
	}
}

func TestNomineeDraft_RemoveLastCategoryNeedsConfirmation(t *testing.T) {
	d := NewNomineeDraft()

	if d.RemoveCategory(0) {
		t.Fatalf("RemoveCategory(last) = true, want pending confirmation")
	}
	prompt, ok := d.Pending()
	if !ok || prompt != lastCategoryPrompt {
		t.Fatalf("Pending = %q, %v", prompt, ok)
	}
	if len(d.Categories) != 1 {
		t.Fatalf("category removed before confirmation")
	}

	d.Dismiss()
	if _, ok := d.Pending(); ok {
		t.Fatalf("Pending after Dismiss")
	}
	if d.Confirm() {
		t.Fatalf("Confirm with nothing pending = true")
	}

	d.RemoveCategory(0)
	if !d.Confirm() {
		t.Fatalf("Confirm = false, want true")
	}
	if len(d.Categories) != 0 {
		t.Fatalf("categories = %d after confirm, want 0", len(d.Categories))
	}

	// An emptied draft is allowed but cannot be submitted.
	d.Round = "12TH"
	d.Stage = api.StageFinal
	var valErr *api.ValidationError
	if err := d.Validate(); !errors.As(err, &valErr) || valErr.Field != "categories" {
		t.Fatalf("Validate = %v, want categories ValidationError", err)
	}
}

func TestNomineeDraft_RemoveArtist(t *testing.T) {
	d := NewNomineeDraft()
	d.SetCategoryName(0, "Best Song")
	d.AddArtist(0)
	d.SetArtist(0, 0, api.Artist{Name: "A", SMSNumber: "1"})
	d.SetArtist(0, 1, api.Artist{Name: "B", SMSNumber: "2"})

	if !d.RemoveArtist(0, 0) {
		t.Fatalf("RemoveArtist with two artists = false")
	}
	if got := d.Categories[0].Artists; len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("artists = %#v, want [B]", got)
	}

	if d.RemoveArtist(0, 0) {
		t.Fatalf("RemoveArtist(last) = true, want pending")
	}
	if prompt, _ := d.Pending(); prompt != lastArtistPrompt {
		t.Fatalf("prompt = %q", prompt)
	}
	d.Confirm()
	if len(d.Categories[0].Artists) != 0 {
		t.Fatalf("artist not removed after Confirm")
	}

	d.Round = "1"
	d.Stage = api.StagePreliminary
	var valErr *api.ValidationError
	if err := d.Validate(); !errors.As(err, &valErr) || valErr.Field != "artists" {
		t.Fatalf("Validate = %v, want artists ValidationError", err)
	}
	if err := d.ValidateScalars(); err != nil {
		t.Fatalf("ValidateScalars = %v, want nil", err)
	}

	if d.RemoveArtist(5, 0) || d.AddArtist(5) != -1 {
		t.Fatalf("out-of-range artist ops should be ignored")
	}
}

func TestNomineeDraft_ScalarValidation(t *testing.T) {
	tests := []struct {
		name  string
		round string
		stage api.Stage
		ok    bool
	}{
		{name: "missing round", round: " ", stage: api.StageFinal},
		{name: "missing stage", round: "1"},
		{name: "unknown stage", round: "1", stage: "Quarter"},
		{name: "valid", round: "1", stage: api.StageSemiFinal, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewNomineeDraft()
			d.Round = tt.round
			d.Stage = tt.stage
			err := d.ValidateScalars()
			if (err == nil) != tt.ok {
				t.Fatalf("ValidateScalars = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestNomineeDraftFromIsDeepCopy(t *testing.T) {
	orig := api.Nominee{
		ID:    "n1",
		Round: "12TH",
		Stage: api.StageFinal,
		Categories: []api.Category{
			{Name: "Best Song", Artists: []api.Artist{{Name: "A", SMSNumber: "1"}}},
		},
	}
	snapshot := orig.Clone()

	d := NomineeDraftFrom(orig)
	d.Round = "changed"
	d.SetCategoryName(0, "changed")
	d.SetArtist(0, 0, api.Artist{Name: "changed"})
	d.AddCategory()
	d.ToggleDetails(0)

	if !reflect.DeepEqual(orig, snapshot) {
		t.Fatalf("editing the draft mutated the source: %#v", orig)
	}

	in := d.Input()
	in.Categories[0].Artists[0].Name = "again"
	if d.Categories[0].Artists[0].Name != "changed" {
		t.Fatalf("Input shares artists with the draft")
	}
	if d.Categories[0].Expanded {
		t.Fatalf("ToggleDetails did not collapse category 0")
	}
}

func TestNomineeDraft_CycleStage(t *testing.T) {
	d := NewNomineeDraft()
	d.CycleStage()
	if d.Stage != api.StageFinal {
		t.Fatalf("first cycle = %q, want Final", d.Stage)
	}
	d.CycleStage()
	d.CycleStage()
	d.CycleStage()
	if d.Stage != api.StageFinal {
		t.Fatalf("cycle did not wrap: %q", d.Stage)
	}
}

func TestSponsorDraft_LogoLimitDropsExtras(t *testing.T) {
	d := NewSponsorDraft()
	if d.Level != api.LevelPlatinum {
		t.Fatalf("default level = %q, want Platinum", d.Level)
	}

	uploads := make([]api.Upload, 4)
	if dropped := d.AddLogos(uploads...); dropped != 0 {
		t.Fatalf("dropped = %d, want 0", dropped)
	}
	if dropped := d.AddLogos(make([]api.Upload, 3)...); dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
	if len(d.Logos) != api.MaxLogos {
		t.Fatalf("logos = %d, want %d", len(d.Logos), api.MaxLogos)
	}
	if !d.RemoveLogo(0) || len(d.Logos) != api.MaxLogos-1 {
		t.Fatalf("RemoveLogo failed; logos = %d", len(d.Logos))
	}
	if d.RemoveLogo(10) {
		t.Fatalf("RemoveLogo(10) = true")
	}
}

func TestSponsorDraft_Validate(t *testing.T) {
	d := NewSponsorDraft()
	d.CompanyName = "Acme"
	d.Description = "desc"

	var valErr *api.ValidationError
	if err := d.Validate(false); !errors.As(err, &valErr) || valErr.Message != "At least one logo image is required." {
		t.Fatalf("Validate(create) = %v, want logo ValidationError", err)
	}
	// Updates never carry logos.
	if err := d.Validate(true); err != nil {
		t.Fatalf("Validate(update) = %v, want nil", err)
	}

	d.CycleLevel()
	if d.Level != api.LevelGold {
		t.Fatalf("CycleLevel = %q, want Gold", d.Level)
	}

	edit := SponsorDraftFrom(api.Sponsor{ID: "s1", CompanyName: "X", Logos: []api.Logo{{URL: "u"}}})
	edit.Existing[0].URL = "changed"
	if len(edit.Logos) != 0 {
		t.Fatalf("edit draft should not carry uploads")
	}
}

func TestAboutUsDraft(t *testing.T) {
	d := AboutUsDraftFrom(api.AboutUsEntry{ID: "a1", Title: "T", Image: "http://img"})
	if err := d.Validate(); err == nil {
		t.Fatalf("Validate without description = nil")
	}
	d.Description = "D"
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate = %v", err)
	}
	if d.Input().Image != nil {
		t.Fatalf("Input carries an image without a new upload")
	}

	d.SetImage(api.Upload{Filename: "new.png"})
	in := d.Input()
	if in.Image == nil || in.Image.Filename != "new.png" {
		t.Fatalf("Input image = %#v", in.Image)
	}
	d.ClearImage()
	if d.Image != nil || d.ImageURL != "http://img" {
		t.Fatalf("ClearImage should keep the stored image URL")
	}
}
