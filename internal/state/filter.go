package state

import "github.com/five82/podium/internal/api"

// FilterSponsorsByLevel returns copies of the sponsors at level, in cache
// order. An empty level matches every sponsor.
func FilterSponsorsByLevel(sponsors []api.Sponsor, level api.Level) []api.Sponsor {
	out := make([]api.Sponsor, 0, len(sponsors))
	for _, s := range sponsors {
		if level != "" && s.Level != level {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}
