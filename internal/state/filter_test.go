package state

import (
	"testing"

	"github.com/five82/podium/internal/api"
)

func TestFilterSponsorsByLevel(t *testing.T) {
	sponsors := []api.Sponsor{
		{ID: "1", Level: api.LevelGold},
		{ID: "2", Level: api.LevelPlatinum, Logos: []api.Logo{{URL: "u"}}},
		{ID: "3", Level: api.LevelGold},
	}

	tests := []struct {
		level api.Level
		want  []string
	}{
		{level: "", want: []string{"1", "2", "3"}},
		{level: api.LevelGold, want: []string{"1", "3"}},
		{level: api.LevelPlatinum, want: []string{"2"}},
	}
	for _, tt := range tests {
		got := FilterSponsorsByLevel(sponsors, tt.level)
		if len(got) != len(tt.want) {
			t.Fatalf("level %q: got %d sponsors, want %d", tt.level, len(got), len(tt.want))
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Fatalf("level %q: got[%d] = %s, want %s", tt.level, i, got[i].ID, id)
			}
		}
	}

	filtered := FilterSponsorsByLevel(sponsors, api.LevelPlatinum)
	filtered[0].Logos[0].URL = "changed"
	if sponsors[1].Logos[0].URL != "u" {
		t.Fatalf("filter result aliases the input")
	}
}
