// Package aggregate summarizes a filtered subset of fight songs.
//
// Every function here is pure: the same subset and request always yield the
// same ordered result. Groups are never empty. Records with an unknown
// group-by value are collected in a trailing group keyed UnknownKey, so the
// group counts of a result always sum to the subset size.
package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
)

// Request describes one aggregation.
type Request struct {
	GroupBy Dimension `json:"group_by" yaml:"group_by"`
	Metric  Metric    `json:"metric" yaml:"metric"`
	// Attribute is only used by Mean.
	Attribute Measure `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	// Population is the denominator for Proportion. Zero means the subset size.
	Population int `json:"population,omitempty" yaml:"population,omitempty"`
}

// Validate checks that the request can be computed.
func (r Request) Validate() error {
	if !r.GroupBy.Valid() {
		return errors.InvalidQuery("group-by", "no dimension given", DimensionNames())
	}
	if _, err := ParseMetric(string(r.Metric)); err != nil {
		return err
	}
	if r.Metric == Mean && !r.Attribute.Valid() {
		return errors.InvalidQuery("attribute", "mean needs an attribute", MeasureNames())
	}
	if r.Population < 0 {
		return errors.InvalidQuery("population", fmt.Sprintf("must not be negative, got %d", r.Population), nil)
	}
	return nil
}

// ParseRequest builds a request from user-supplied names.
func ParseRequest(groupBy, metric, attribute string) (Request, error) {
	dim, err := ParseDimension(groupBy)
	if err != nil {
		return Request{}, err
	}
	m, err := ParseMetric(metric)
	if err != nil {
		return Request{}, err
	}
	req := Request{GroupBy: dim, Metric: m}
	if m == Mean || attribute != "" {
		measure, err := ParseMeasure(attribute)
		if err != nil {
			return Request{}, err
		}
		req.Attribute = measure
	}
	return req, nil
}

// Group is one bucket of an aggregation.
type Group struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	// Count is the number of records in the group.
	Count int `json:"count" yaml:"count"`
	// Value is the metric. For Mean it is zero when Samples is zero.
	Value float64 `json:"value" yaml:"value"`
	// Samples is the number of known values behind a Mean.
	Samples int `json:"samples" yaml:"samples"`
}

// Unknown reports whether the group collects unknown values.
func (g Group) Unknown() bool {
	return g.Key == UnknownKey
}

// Result is an ordered aggregation.
type Result struct {
	Request Request `json:"request" yaml:"request"`
	Total   int     `json:"total" yaml:"total"`
	Groups  []Group `json:"groups" yaml:"groups"`
}

// Empty reports whether the result has no groups.
func (r Result) Empty() bool {
	return len(r.Groups) == 0
}

// Lookup finds a group by key.
func (r Result) Lookup(key string) (Group, bool) {
	for _, g := range r.Groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// Aggregate groups subset by req.GroupBy and computes req.Metric per group.
// An empty subset yields an empty result.
//
// Aggregate does not reject a request that fails Validate. An unknown
// metric, or a mean without an attribute, is computed as Count and the
// result's Request says so. An invalid GroupBy puts the whole subset in one
// group keyed AllKey.
func Aggregate(subset []dataset.Record, req Request) Result {
	switch {
	case req.Metric != Count && req.Metric != Proportion && req.Metric != Mean:
		req.Metric = Count
	case req.Metric == Mean && !req.Attribute.Valid():
		req.Metric = Count
	}

	res := Result{Request: req, Total: len(subset), Groups: []Group{}}
	if len(subset) == 0 {
		return res
	}

	population := req.Population
	if population <= 0 {
		population = len(subset)
	}

	for _, b := range partition(subset, req.GroupBy) {
		g := Group{Key: b.key, Label: b.label, Count: len(b.members)}
		switch req.Metric {
		case Count:
			g.Value = float64(g.Count)
			g.Samples = g.Count
		case Proportion:
			g.Value = float64(g.Count) / float64(population)
			g.Samples = g.Count
		case Mean:
			g.Value, g.Samples = mean(b.members, req.Attribute)
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}

func mean(records []dataset.Record, m Measure) (float64, int) {
	var sum float64
	var n int
	for _, r := range records {
		if v, ok := m.value(r); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// bucket is a group under construction.
type bucket struct {
	key     string
	label   string
	members []dataset.Record
}

// partition splits records by dim and returns the buckets in result order.
func partition(records []dataset.Record, dim Dimension) []*bucket {
	if !dim.Valid() {
		return []*bucket{{key: AllKey, label: "All songs", members: records}}
	}

	byKey := make(map[string]*bucket)
	var unknown *bucket

	for _, r := range records {
		key, label, ok := dim.key(r)
		if !ok {
			if unknown == nil {
				unknown = &bucket{key: UnknownKey, label: "Unknown"}
			}
			unknown.members = append(unknown.members, r)
			continue
		}
		b, exists := byKey[key]
		if !exists {
			b = &bucket{key: key, label: label}
			byKey[key] = b
		}
		b.members = append(b.members, r)
	}

	buckets := make([]*bucket, 0, len(byKey)+1)
	for _, b := range byKey {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return keyLess(buckets[i].key, buckets[j].key)
	})
	if unknown != nil {
		buckets = append(buckets, unknown)
	}
	return buckets
}

// keyLess orders numeric keys numerically, numbers before text, and
// everything else lexicographically.
func keyLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
