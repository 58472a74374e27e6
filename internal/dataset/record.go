// Package dataset loads the fight song table and models its rows.
//
// Every attribute that can be missing in the source is represented with an
// explicit unknown state rather than a zero value, so that filters and
// aggregations can tell "no" apart from "not recorded".
package dataset

import (
	"regexp"
	"strconv"
	"strings"
)

var yearPattern = regexp.MustCompile(`[0-9]{4}`)

// Flag is a tri-state yes/no attribute. The zero value is Unknown.
type Flag int

const (
	// Unknown means the source did not record a yes/no answer.
	Unknown Flag = iota
	// Yes means the attribute is present.
	Yes
	// No means the attribute is absent.
	No
)

// String returns "yes", "no" or "unknown".
func (f Flag) String() string {
	switch f {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// Known reports whether the flag carries a yes/no answer.
func (f Flag) Known() bool {
	return f == Yes || f == No
}

// Bool returns the flag as a bool and whether it is known.
func (f Flag) Bool() (value bool, ok bool) {
	return f == Yes, f.Known()
}

// FlagOf converts a bool into a known Flag.
func FlagOf(b bool) Flag {
	if b {
		return Yes
	}
	return No
}

// ParseFlag parses a yes/no cell. Matching is case-insensitive and ignores
// surrounding whitespace; anything else is Unknown.
func ParseFlag(s string) Flag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return Yes
	case "no":
		return No
	default:
		return Unknown
	}
}

// Year is the year a song was written, possibly unknown.
type Year struct {
	value int
	known bool
}

// YearOf returns a known year.
func YearOf(y int) Year {
	return Year{value: y, known: true}
}

// Value returns the year and whether it is known.
func (y Year) Value() (int, bool) {
	return y.value, y.known
}

// Known reports whether the year is known.
func (y Year) Known() bool {
	return y.known
}

// Decade returns the decade bucket (1923 -> 1920) and whether it is known.
func (y Year) Decade() (int, bool) {
	if !y.known {
		return 0, false
	}
	return DecadeOf(y.value), true
}

// String returns the year or "unknown".
func (y Year) String() string {
	if !y.known {
		return "unknown"
	}
	return strconv.Itoa(y.value)
}

// DecadeOf returns the decade bucket for a year.
func DecadeOf(year int) int {
	return (year / 10) * 10
}

// ParseYear extracts the first run of four digits from a cell, so values
// like "1920" or "c. 1915" are known and "Unknown" or blanks are not.
func ParseYear(s string) Year {
	match := yearPattern.FindString(s)
	if match == "" {
		return Year{}
	}
	y, err := strconv.Atoi(match)
	if err != nil {
		return Year{}
	}
	return YearOf(y)
}

// Number is a numeric attribute, possibly unknown.
type Number struct {
	value float64
	known bool
}

// NumberOf returns a known number.
func NumberOf(v float64) Number {
	return Number{value: v, known: true}
}

// Value returns the number and whether it is known.
func (n Number) Value() (float64, bool) {
	return n.value, n.known
}

// Known reports whether the number is known.
func (n Number) Known() bool {
	return n.known
}

// ParseNumber parses a numeric cell; unparseable cells are unknown.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}
	}
	return NumberOf(v)
}

// Record is one institution's fight song.
type Record struct {
	School     string
	Conference string
	SongName   string
	Writers    string
	SpotifyID  string
	Year       Year

	StudentWriter Flag
	OfficialSong  Flag
	Contest       Flag

	Tropes TropeFlags

	BPM          Number
	Duration     Number
	NumberFights Number
	TropeCount   Number
}

// HasConference reports whether the conference is known.
func (r Record) HasConference() bool {
	return r.Conference != ""
}

// Decade returns the record's decade bucket and whether it is known.
func (r Record) Decade() (int, bool) {
	return r.Year.Decade()
}

// Trope returns the flag for a single trope.
func (r Record) Trope(t Trope) Flag {
	if !t.Valid() {
		return Unknown
	}
	return r.Tropes[t]
}

// Attribute returns a numeric attribute by name.
func (r Record) Attribute(a Attribute) Number {
	switch a {
	case AttrBPM:
		return r.BPM
	case AttrDuration:
		return r.Duration
	case AttrNumberFights:
		return r.NumberFights
	case AttrTropeCount:
		return r.TropeCount
	default:
		return Number{}
	}
}

// Attribute names a numeric column.
type Attribute string

const (
	AttrBPM          Attribute = "bpm"
	AttrDuration     Attribute = "sec_duration"
	AttrNumberFights Attribute = "number_fights"
	AttrTropeCount   Attribute = "trope_count"
)

// Attributes lists every numeric attribute.
var Attributes = []Attribute{AttrBPM, AttrDuration, AttrNumberFights, AttrTropeCount}

// ParseAttribute parses an attribute name.
func ParseAttribute(s string) (Attribute, bool) {
	a := Attribute(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Attributes {
		if a == known {
			return a, true
		}
	}
	return "", false
}
