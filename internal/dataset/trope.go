package dataset

import "strings"

// Trope identifies one lyrical theme flag.
type Trope int

const (
	Fight Trope = iota
	Victory
	WinWon
	VictoryWinWon
	Rah
	Nonsense
	Colors
	Men
	Opponents
	Spelling

	numTropes
)

// TropeFlags holds one Flag per Trope, indexed by Trope.
type TropeFlags [numTropes]Flag

var tropeKeys = [numTropes]string{
	Fight:         "fight",
	Victory:       "victory",
	WinWon:        "win_won",
	VictoryWinWon: "victory_win_won",
	Rah:           "rah",
	Nonsense:      "nonsense",
	Colors:        "colors",
	Men:           "men",
	Opponents:     "opponents",
	Spelling:      "spelling",
}

var tropeLabels = [numTropes]string{
	Fight:         "Fight",
	Victory:       "Victory",
	WinWon:        "Win / Won",
	VictoryWinWon: "Victory / Win / Won",
	Rah:           "Rah",
	Nonsense:      "Nonsense",
	Colors:        "Colors",
	Men:           "Men",
	Opponents:     "Opponents",
	Spelling:      "Spelling",
}

// Tropes lists every trope in column order.
func Tropes() []Trope {
	out := make([]Trope, 0, numTropes)
	for t := Trope(0); t < numTropes; t++ {
		out = append(out, t)
	}
	return out
}

// Series used by the explore views.
var (
	// DecadeSeries are the lines of the decade trend chart.
	DecadeSeries = []Trope{Men, VictoryWinWon, Fight, Rah, Colors, Nonsense, Opponents}
	// RadarTropes are the conference profile dimensions.
	RadarTropes = []Trope{VictoryWinWon, Fight, Rah, Nonsense, Men, Colors, Opponents}
	// AuthorshipTropes are compared between student/non-student and
	// contest/non-contest songs.
	AuthorshipTropes = []Trope{Fight, VictoryWinWon, Rah, Nonsense, Colors, Men, Opponents, Spelling}
)

// Valid reports whether t names a trope.
func (t Trope) Valid() bool {
	return t >= 0 && t < numTropes
}

// Key returns the column name of the trope.
func (t Trope) Key() string {
	if !t.Valid() {
		return ""
	}
	return tropeKeys[t]
}

// Label returns the display label of the trope.
func (t Trope) Label() string {
	if !t.Valid() {
		return ""
	}
	return tropeLabels[t]
}

// String implements fmt.Stringer.
func (t Trope) String() string {
	return t.Key()
}

// MarshalText encodes a trope as its column name.
func (t Trope) MarshalText() ([]byte, error) {
	return []byte(t.Key()), nil
}

// ParseTrope looks a trope up by column name. Hyphens and case are ignored,
// so "Victory-Win-Won" resolves too.
func ParseTrope(s string) (Trope, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for t, k := range tropeKeys {
		if k == key {
			return Trope(t), true
		}
	}
	return 0, false
}

// TropeKeys returns the column names of all tropes.
func TropeKeys() []string {
	keys := make([]string, 0, numTropes)
	for _, k := range tropeKeys {
		keys = append(keys, k)
	}
	return keys
}
