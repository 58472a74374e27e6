package aggregate

import (
	"fmt"
	"strings"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
)

// Metric is the summary computed per group.
type Metric string

const (
	// Count is the number of records in the group.
	Count Metric = "count"
	// Proportion is the group size over the request's population.
	Proportion Metric = "proportion"
	// Mean averages a Measure over the group's known values.
	Mean Metric = "mean"
)

// Metrics lists the supported metrics.
var Metrics = []Metric{Count, Proportion, Mean}

// ParseMetric parses a metric name.
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case Count, Proportion, Mean:
		return m, nil
	}
	names := make([]string, len(Metrics))
	for i, m := range Metrics {
		names[i] = string(m)
	}
	return "", errors.InvalidQuery("metric", fmt.Sprintf("unknown metric %q", s), names)
}

// Measure is the per-record value averaged by Mean: either a numeric
// attribute or a trope flag read as 1 for yes and 0 for no.
type Measure struct {
	attr  dataset.Attribute
	trope dataset.Trope
	flag  bool
}

// AttributeMeasure measures a numeric attribute.
func AttributeMeasure(a dataset.Attribute) Measure {
	return Measure{attr: a}
}

// TropeMeasure measures a trope flag.
func TropeMeasure(t dataset.Trope) Measure {
	return Measure{trope: t, flag: true}
}

// ParseMeasure parses "bpm", "sec_duration", "number_fights",
// "trope_count" or "trope:<key>".
func ParseMeasure(s string) (Measure, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if key, ok := strings.CutPrefix(name, "trope:"); ok {
		if t, ok := dataset.ParseTrope(key); ok {
			return TropeMeasure(t), nil
		}
		return Measure{}, errors.InvalidQuery("attribute", fmt.Sprintf("unknown trope %q", key), dataset.TropeKeys())
	}
	if a, ok := dataset.ParseAttribute(name); ok {
		return AttributeMeasure(a), nil
	}
	return Measure{}, errors.InvalidQuery("attribute", fmt.Sprintf("unknown attribute %q", s), MeasureNames())
}

// MeasureNames lists the accepted measure spellings.
func MeasureNames() []string {
	var names []string
	for _, a := range dataset.Attributes {
		names = append(names, string(a))
	}
	for _, k := range dataset.TropeKeys() {
		names = append(names, "trope:"+k)
	}
	return names
}

// Valid reports whether m names a real attribute or trope.
func (m Measure) Valid() bool {
	if m.flag {
		return m.trope.Valid()
	}
	_, ok := dataset.ParseAttribute(string(m.attr))
	return ok
}

func (m Measure) String() string {
	if m.flag {
		return "trope:" + m.trope.Key()
	}
	return string(m.attr)
}

// MarshalText lets measures appear by name in JSON and YAML output.
func (m Measure) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// value returns the measure for r, or ok=false when unknown.
func (m Measure) value(r dataset.Record) (float64, bool) {
	if m.flag {
		v, ok := r.Trope(m.trope).Bool()
		if !ok {
			return 0, false
		}
		if v {
			return 1, true
		}
		return 0, true
	}
	return r.Attribute(m.attr).Value()
}
