// Package filter selects the records that satisfy a user's criteria.
//
// Constraints are AND-combined across dimensions and OR-combined within the
// conference set. A record whose value on a constrained dimension is unknown
// never satisfies that constraint.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
)

// Spec is one interaction's set of constraints. Nil pointers, empty slices
// and empty maps mean "no constraint" on that dimension.
type Spec struct {
	// MinDecade and MaxDecade bound the decade bucket, inclusive.
	MinDecade *int
	MaxDecade *int
	// Conferences is the set of allowed conferences (case-insensitive).
	Conferences []string
	// Tropes maps a trope to the value it must have.
	Tropes map[dataset.Trope]bool
	// Authorship constraints.
	StudentWriter *bool
	Contest       *bool
	OfficialSong  *bool
	// School is a case-insensitive substring of the school name.
	School string
	// Known drops records with unknown values on the listed fields.
	Known Known
}

// Known lists fields a record must have a known value for, regardless of
// what that value is.
type Known struct {
	Year          bool
	Conference    bool
	StudentWriter bool
	Contest       bool
	Tropes        []dataset.Trope
}

// IsZero reports whether no field is required.
func (k Known) IsZero() bool {
	return !k.Year && !k.Conference && !k.StudentWriter && !k.Contest && len(k.Tropes) == 0
}

func (k Known) match(r dataset.Record) bool {
	if k.Year && !r.Year.Known() {
		return false
	}
	if k.Conference && !r.HasConference() {
		return false
	}
	if k.StudentWriter && !r.StudentWriter.Known() {
		return false
	}
	if k.Contest && !r.Contest.Known() {
		return false
	}
	for _, t := range k.Tropes {
		if !r.Trope(t).Known() {
			return false
		}
	}
	return true
}

func (k Known) describe() string {
	var fields []string
	if k.Year {
		fields = append(fields, "year")
	}
	if k.Conference {
		fields = append(fields, "conference")
	}
	if k.StudentWriter {
		fields = append(fields, "student_writer")
	}
	if k.Contest {
		fields = append(fields, "contest")
	}
	for _, t := range k.Tropes {
		fields = append(fields, t.Key())
	}
	return "known " + strings.Join(fields, ",")
}

// Ptr returns a pointer to v, for filling optional Spec fields.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether the spec has no constraints.
func (s Spec) IsEmpty() bool {
	return s.MinDecade == nil &&
		s.MaxDecade == nil &&
		len(s.Conferences) == 0 &&
		len(s.Tropes) == 0 &&
		s.StudentWriter == nil &&
		s.Contest == nil &&
		s.OfficialSong == nil &&
		strings.TrimSpace(s.School) == "" &&
		s.Known.IsZero()
}

// Validate reports specs that cannot be satisfied because they are
// malformed, as opposed to specs that merely match nothing.
func (s Spec) Validate() error {
	if s.MinDecade != nil && s.MaxDecade != nil && *s.MinDecade > *s.MaxDecade {
		return errors.InvalidQuery("decade range",
			fmt.Sprintf("minimum %d is after maximum %d", *s.MinDecade, *s.MaxDecade), nil)
	}
	for t := range s.Tropes {
		if !t.Valid() {
			return errors.InvalidQuery("trope", fmt.Sprintf("unknown trope %d", int(t)), dataset.TropeKeys())
		}
	}
	for _, t := range s.Known.Tropes {
		if !t.Valid() {
			return errors.InvalidQuery("trope", fmt.Sprintf("unknown trope %d", int(t)), dataset.TropeKeys())
		}
	}
	return nil
}

// Apply returns the records matching every constraint in spec, in input
// order. An empty spec returns records unchanged.
func Apply(records []dataset.Record, spec Spec) []dataset.Record {
	if spec.IsEmpty() {
		return records
	}

	m := newMatcher(spec)
	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record satisfies spec.
func Matches(r dataset.Record, spec Spec) bool {
	if spec.IsEmpty() {
		return true
	}
	return newMatcher(spec).match(r)
}

// matcher holds the spec with its lookup sets prebuilt, so a filter pass
// does not rebuild them per record.
type matcher struct {
	spec        Spec
	conferences map[string]bool
	school      string
}

func newMatcher(spec Spec) *matcher {
	m := &matcher{
		spec:   spec,
		school: strings.ToLower(strings.TrimSpace(spec.School)),
	}
	if len(spec.Conferences) > 0 {
		m.conferences = make(map[string]bool, len(spec.Conferences))
		for _, c := range spec.Conferences {
			if c = strings.TrimSpace(c); c != "" {
				m.conferences[strings.ToLower(c)] = true
			}
		}
	}
	return m
}

func (m *matcher) match(r dataset.Record) bool {
	if !m.spec.Known.match(r) {
		return false
	}

	if m.spec.MinDecade != nil || m.spec.MaxDecade != nil {
		dec, ok := r.Decade()
		if !ok {
			return false
		}
		if m.spec.MinDecade != nil && dec < *m.spec.MinDecade {
			return false
		}
		if m.spec.MaxDecade != nil && dec > *m.spec.MaxDecade {
			return false
		}
	}

	if m.conferences != nil {
		if !r.HasConference() || !m.conferences[strings.ToLower(r.Conference)] {
			return false
		}
	}

	for t, want := range m.spec.Tropes {
		if !flagIs(r.Trope(t), want) {
			return false
		}
	}

	if m.spec.StudentWriter != nil && !flagIs(r.StudentWriter, *m.spec.StudentWriter) {
		return false
	}
	if m.spec.Contest != nil && !flagIs(r.Contest, *m.spec.Contest) {
		return false
	}
	if m.spec.OfficialSong != nil && !flagIs(r.OfficialSong, *m.spec.OfficialSong) {
		return false
	}

	if m.school != "" && !strings.Contains(strings.ToLower(r.School), m.school) {
		return false
	}

	return true
}

// flagIs is false for unknown flags whatever the wanted value.
func flagIs(f dataset.Flag, want bool) bool {
	v, ok := f.Bool()
	return ok && v == want
}

// Describe returns a short human-readable summary of the constraints,
// e.g. "decade 1900-1950 · conference Big Ten · victory_win_won=yes".
func (s Spec) Describe() string {
	if s.IsEmpty() {
		return "all songs"
	}

	var parts []string
	switch {
	case s.MinDecade != nil && s.MaxDecade != nil:
		parts = append(parts, fmt.Sprintf("decade %ds-%ds", *s.MinDecade, *s.MaxDecade))
	case s.MinDecade != nil:
		parts = append(parts, fmt.Sprintf("decade ≥ %ds", *s.MinDecade))
	case s.MaxDecade != nil:
		parts = append(parts, fmt.Sprintf("decade ≤ %ds", *s.MaxDecade))
	}
	if len(s.Conferences) > 0 {
		parts = append(parts, "conference "+strings.Join(s.Conferences, "/"))
	}
	if len(s.Tropes) > 0 {
		keys := make([]string, 0, len(s.Tropes))
		for t, want := range s.Tropes {
			keys = append(keys, t.Key()+"="+yesNo(want))
		}
		sort.Strings(keys)
		parts = append(parts, keys...)
	}
	if s.StudentWriter != nil {
		parts = append(parts, "student_writer="+yesNo(*s.StudentWriter))
	}
	if s.Contest != nil {
		parts = append(parts, "contest="+yesNo(*s.Contest))
	}
	if s.OfficialSong != nil {
		parts = append(parts, "official_song="+yesNo(*s.OfficialSong))
	}
	if school := strings.TrimSpace(s.School); school != "" {
		parts = append(parts, fmt.Sprintf("school ~ %q", school))
	}
	if !s.Known.IsZero() {
		parts = append(parts, s.Known.describe())
	}
	return strings.Join(parts, " · ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
