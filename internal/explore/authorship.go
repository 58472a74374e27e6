package explore

import (
	"fmt"
	"strings"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/filter"
)

// AuthorshipKind selects which authorship flag splits the songs.
type AuthorshipKind string

const (
	// ByStudent compares student-written songs with the rest.
	ByStudent AuthorshipKind = "student"
	// ByContest compares contest-selected songs with the rest.
	ByContest AuthorshipKind = "contest"
)

// ParseAuthorshipKind parses "student" or "contest".
func ParseAuthorshipKind(s string) (AuthorshipKind, error) {
	switch k := AuthorshipKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ByStudent, ByContest:
		return k, nil
	}
	return "", errors.InvalidQuery("authorship", fmt.Sprintf("unknown comparison %q", s),
		[]string{string(ByStudent), string(ByContest)})
}

// Title is the chart heading for the comparison.
func (k AuthorshipKind) Title() string {
	if k == ByContest {
		return "Trope Usage by Contest Selection"
	}
	return "Trope Usage by Student Authorship"
}

// Labels returns the names of the yes and no groups.
func (k AuthorshipKind) Labels() (yes, no string) {
	if k == ByContest {
		return "Contest-selected", "Non-contest"
	}
	return "Student-written", "Non-student-written"
}

func (k AuthorshipKind) dimension() aggregate.Dimension {
	if k == ByContest {
		return aggregate.ByContest
	}
	return aggregate.ByStudentWriter
}

// Authorship is the trope usage of two complementary groups of songs.
type Authorship struct {
	Kind   AuthorshipKind  `json:"kind" yaml:"kind"`
	Tropes []dataset.Trope `json:"tropes" yaml:"tropes"`
	// Yes and No hold one value per trope; a missing group is all zeros.
	Yes      []float64 `json:"yes" yaml:"yes"`
	No       []float64 `json:"no" yaml:"no"`
	YesCount int       `json:"yes_count" yaml:"yes_count"`
	NoCount  int       `json:"no_count" yaml:"no_count"`
}

// AuthorshipComparison compares trope usage between the two sides of kind.
// Only songs with a known year, known student_writer and contest flags
// and every compared trope known are counted.
func AuthorshipComparison(ds *dataset.Dataset, kind AuthorshipKind) Authorship {
	tropes := dataset.AuthorshipTropes
	subset := filter.Apply(ds.Records(), filter.Spec{Known: filter.Known{
		Year:          true,
		StudentWriter: true,
		Contest:       true,
		Tropes:        tropes,
	}})
	prof := aggregate.Profile(subset, kind.dimension(), tropes)

	out := Authorship{
		Kind:   kind,
		Tropes: append([]dataset.Trope(nil), tropes...),
		Yes:    make([]float64, len(tropes)),
		No:     make([]float64, len(tropes)),
	}
	if g, ok := prof.Lookup("true"); ok {
		copy(out.Yes, g.Values)
		out.YesCount = g.Count
	}
	if g, ok := prof.Lookup("false"); ok {
		copy(out.No, g.Values)
		out.NoCount = g.Count
	}
	return out
}
