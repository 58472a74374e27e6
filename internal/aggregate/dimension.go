package aggregate

import (
	"fmt"
	"strings"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
)

// UnknownKey is the group key for records whose group-by value is unknown.
const UnknownKey = "unknown"

// AllKey is the key of the single group made by an invalid dimension.
const AllKey = "all"

type dimensionKind int

const (
	dimNone dimensionKind = iota
	dimDecade
	dimConference
	dimTrope
	dimStudentWriter
	dimContest
	dimOfficialSong
)

// Dimension is a record attribute that records can be grouped by.
type Dimension struct {
	kind  dimensionKind
	trope dataset.Trope
}

var (
	ByDecade        = Dimension{kind: dimDecade}
	ByConference    = Dimension{kind: dimConference}
	ByStudentWriter = Dimension{kind: dimStudentWriter}
	ByContest       = Dimension{kind: dimContest}
	ByOfficialSong  = Dimension{kind: dimOfficialSong}
)

// ByTrope groups records by the value of a trope flag.
func ByTrope(t dataset.Trope) Dimension {
	return Dimension{kind: dimTrope, trope: t}
}

// ParseDimension parses "decade", "conference", "student_writer",
// "contest", "official_song" or "trope:<key>".
func ParseDimension(s string) (Dimension, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "decade":
		return ByDecade, nil
	case "conference":
		return ByConference, nil
	case "student_writer":
		return ByStudentWriter, nil
	case "contest":
		return ByContest, nil
	case "official_song":
		return ByOfficialSong, nil
	}

	if key, ok := strings.CutPrefix(name, "trope:"); ok {
		if t, ok := dataset.ParseTrope(key); ok {
			return ByTrope(t), nil
		}
		return Dimension{}, errors.InvalidQuery("group-by", fmt.Sprintf("unknown trope %q", key), dataset.TropeKeys())
	}

	return Dimension{}, errors.InvalidQuery("group-by", fmt.Sprintf("unknown dimension %q", s), DimensionNames())
}

// DimensionNames lists the accepted dimension spellings.
func DimensionNames() []string {
	names := []string{"decade", "conference", "student_writer", "contest", "official_song"}
	for _, k := range dataset.TropeKeys() {
		names = append(names, "trope:"+k)
	}
	return names
}

// Valid reports whether d is a usable dimension.
func (d Dimension) Valid() bool {
	if d.kind == dimTrope {
		return d.trope.Valid()
	}
	return d.kind != dimNone
}

func (d Dimension) String() string {
	switch d.kind {
	case dimDecade:
		return "decade"
	case dimConference:
		return "conference"
	case dimTrope:
		return "trope:" + d.trope.Key()
	case dimStudentWriter:
		return "student_writer"
	case dimContest:
		return "contest"
	case dimOfficialSong:
		return "official_song"
	}
	return ""
}

// Label returns a display name for the dimension.
func (d Dimension) Label() string {
	switch d.kind {
	case dimDecade:
		return "Decade"
	case dimConference:
		return "Conference"
	case dimTrope:
		return d.trope.Label()
	case dimStudentWriter:
		return "Student writer"
	case dimContest:
		return "Written for a contest"
	case dimOfficialSong:
		return "Official song"
	}
	return ""
}

// MarshalText lets dimensions appear by name in JSON and YAML output.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// key returns the group key and display label of r under d.
// ok is false when the value is unknown.
func (d Dimension) key(r dataset.Record) (key, label string, ok bool) {
	switch d.kind {
	case dimDecade:
		dec, known := r.Decade()
		if !known {
			return "", "", false
		}
		return fmt.Sprintf("%d", dec), fmt.Sprintf("%ds", dec), true
	case dimConference:
		if !r.HasConference() {
			return "", "", false
		}
		return r.Conference, r.Conference, true
	case dimTrope:
		return flagKey(r.Trope(d.trope))
	case dimStudentWriter:
		return flagKey(r.StudentWriter)
	case dimContest:
		return flagKey(r.Contest)
	case dimOfficialSong:
		return flagKey(r.OfficialSong)
	}
	return "", "", false
}

func flagKey(f dataset.Flag) (key, label string, ok bool) {
	v, known := f.Bool()
	if !known {
		return "", "", false
	}
	if v {
		return "true", "Yes", true
	}
	return "false", "No", true
}
