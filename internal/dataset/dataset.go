package dataset

import (
	"fmt"
	"slices"
	"sort"
)

// Dataset is the immutable in-memory table. It is built once at startup and
// only handed out as copies, so it can be shared without locking.
type Dataset struct {
	source  string
	records []Record
	index   map[string]int
}

// New builds a Dataset from records, enforcing unique school names.
func New(records []Record) (*Dataset, error) {
	index := make(map[string]int, len(records))
	for i, r := range records {
		if r.School == "" {
			return nil, fmt.Errorf("record %d: school is empty", i)
		}
		if _, dup := index[r.School]; dup {
			return nil, fmt.Errorf("record %d: duplicate school %q", i, r.School)
		}
		index[r.School] = i
	}
	return &Dataset{records: slices.Clone(records), index: index}, nil
}

// Source returns the path the dataset was loaded from, if any.
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in source order.
func (d *Dataset) Records() []Record {
	return slices.Clone(d.records)
}

// Lookup returns the record for a school.
func (d *Dataset) Lookup(school string) (Record, bool) {
	i, ok := d.index[school]
	if !ok {
		return Record{}, false
	}
	return d.records[i], true
}

// Conferences returns the distinct known conferences, sorted.
func (d *Dataset) Conferences() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.records {
		if r.HasConference() && !seen[r.Conference] {
			seen[r.Conference] = true
			out = append(out, r.Conference)
		}
	}
	sort.Strings(out)
	return out
}

// Decades returns the distinct known decades, ascending.
func (d *Dataset) Decades() []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range d.records {
		if dec, ok := r.Decade(); ok && !seen[dec] {
			seen[dec] = true
			out = append(out, dec)
		}
	}
	sort.Ints(out)
	return out
}
