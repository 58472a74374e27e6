package aggregate

import (
	"github.com/dbmrq/fightsongs/internal/dataset"
)

// ProfileGroup holds, for one group, the share of songs with each trope.
type ProfileGroup struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
	// Values[i] is the mean of Tropes[i] over the group's known flags.
	Values []float64 `json:"values" yaml:"values"`
	// Samples[i] is the number of known flags behind Values[i].
	Samples []int `json:"samples" yaml:"samples"`
}

// Known reports whether any member has a known value for the i-th trope.
func (g ProfileGroup) Known(i int) bool {
	return g.Samples[i] > 0
}

// Value returns the mean for trope t, or ok=false if t is not profiled.
func (g ProfileGroup) Value(tropes []dataset.Trope, t dataset.Trope) (float64, bool) {
	for i, pt := range tropes {
		if pt == t {
			return g.Values[i], true
		}
	}
	return 0, false
}

// ProfileResult is a multi-series aggregation: one row per group, one
// column per trope.
type ProfileResult struct {
	GroupBy Dimension       `json:"group_by" yaml:"group_by"`
	Tropes  []dataset.Trope `json:"tropes" yaml:"tropes"`
	Total   int             `json:"total" yaml:"total"`
	Groups  []ProfileGroup  `json:"groups" yaml:"groups"`
}

// TropeKeys returns the profiled trope keys in column order.
func (p ProfileResult) TropeKeys() []string {
	keys := make([]string, len(p.Tropes))
	for i, t := range p.Tropes {
		keys[i] = t.Key()
	}
	return keys
}

// Lookup finds a group by key.
func (p ProfileResult) Lookup(key string) (ProfileGroup, bool) {
	for _, g := range p.Groups {
		if g.Key == key {
			return g, true
		}
	}
	return ProfileGroup{}, false
}

// Profile computes, per group of subset, the mean of each trope flag. It is
// Aggregate with Mean over several trope measures at once, and shares its
// grouping and ordering.
func Profile(subset []dataset.Record, groupBy Dimension, tropes []dataset.Trope) ProfileResult {
	res := ProfileResult{
		GroupBy: groupBy,
		Tropes:  append([]dataset.Trope(nil), tropes...),
		Total:   len(subset),
		Groups:  []ProfileGroup{},
	}
	if len(subset) == 0 {
		return res
	}

	for _, b := range partition(subset, groupBy) {
		g := ProfileGroup{
			Key:     b.key,
			Label:   b.label,
			Count:   len(b.members),
			Values:  make([]float64, len(tropes)),
			Samples: make([]int, len(tropes)),
		}
		for i, t := range tropes {
			g.Values[i], g.Samples[i] = mean(b.members, TropeMeasure(t))
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}
