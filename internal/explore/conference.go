package explore

import (
	"sort"
	"strings"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/filter"
)

// ConferenceProfile compares trope usage across conferences.
type ConferenceProfile struct {
	// Top are the conferences on offer, largest first.
	Top []string `json:"top" yaml:"top"`
	// Selected is the requested selection restricted to Top, in Top order.
	Selected []string `json:"selected" yaml:"selected"`
	// Counts holds the number of songs behind each conference in Top.
	Counts  map[string]int          `json:"counts" yaml:"counts"`
	Profile aggregate.ProfileResult `json:"profile" yaml:"profile"`
}

// profileSpec selects songs usable in a conference profile: dated, with a
// conference, and with every profile trope known.
func profileSpec() filter.Spec {
	return filter.Spec{Known: filter.Known{
		Year:       true,
		Conference: true,
		Tropes:     dataset.RadarTropes,
	}}
}

// TopConferencesOf returns the n conferences with the most profile-eligible
// songs. Ties are broken alphabetically.
func TopConferencesOf(ds *dataset.Dataset, n int) ([]string, map[string]int) {
	subset := filter.Apply(ds.Records(), profileSpec())
	res := aggregate.Aggregate(subset, aggregate.Request{GroupBy: aggregate.ByConference, Metric: aggregate.Count})

	groups := append([]aggregate.Group(nil), res.Groups...)
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})

	if n > len(groups) {
		n = len(groups)
	}
	top := make([]string, 0, n)
	counts := make(map[string]int, n)
	for _, g := range groups[:n] {
		top = append(top, g.Key)
		counts[g.Key] = g.Count
	}
	return top, counts
}

// DefaultConferences is the initial selection: the first DefaultSelected
// of the top conferences.
func DefaultConferences(ds *dataset.Dataset) []string {
	top, _ := TopConferencesOf(ds, TopConferences)
	if len(top) > DefaultSelected {
		top = top[:DefaultSelected]
	}
	return top
}

// ConferenceProfiles profiles the selected conferences over tropes.
// A nil selection means DefaultConferences; selections outside the top
// conferences are dropped. Fewer than MinDimensions tropes is an error.
func ConferenceProfiles(ds *dataset.Dataset, selected []string, tropes []dataset.Trope) (ConferenceProfile, error) {
	if len(tropes) < MinDimensions {
		return ConferenceProfile{}, ErrTooFewDimensions
	}

	top, counts := TopConferencesOf(ds, TopConferences)
	if selected == nil {
		selected = top
		if len(selected) > DefaultSelected {
			selected = selected[:DefaultSelected]
		}
	}

	valid := restrict(selected, top)
	spec := profileSpec()
	spec.Conferences = valid

	var subset []dataset.Record
	if len(valid) > 0 {
		subset = filter.Apply(ds.Records(), spec)
	}

	return ConferenceProfile{
		Top:      top,
		Selected: valid,
		Counts:   counts,
		Profile:  aggregate.Profile(subset, aggregate.ByConference, tropes),
	}, nil
}

// restrict keeps the entries of want that appear in allowed, in allowed's
// order, matching case-insensitively.
func restrict(want, allowed []string) []string {
	set := make(map[string]bool, len(want))
	for _, w := range want {
		set[strings.ToLower(strings.TrimSpace(w))] = true
	}
	out := []string{}
	for _, a := range allowed {
		if set[strings.ToLower(a)] {
			out = append(out, a)
		}
	}
	return out
}
