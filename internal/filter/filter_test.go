package filter

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
)

func loadFixture(t *testing.T) []dataset.Record {
	t.Helper()
	ds, err := dataset.Load("../dataset/testdata/fight-songs.csv")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return ds.Records()
}

func schools(records []dataset.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.School
	}
	return out
}

func TestApply_EmptySpecReturnsInput(t *testing.T) {
	records := loadFixture(t)
	got := Apply(records, Spec{})

	if len(got) != len(records) {
		t.Fatalf("len = %d, want %d", len(got), len(records))
	}
	for i := range got {
		if got[i].School != records[i].School {
			t.Errorf("record %d = %q, want %q", i, got[i].School, records[i].School)
		}
	}
}

func TestApply(t *testing.T) {
	records := loadFixture(t)

	tests := []struct {
		name string
		spec Spec
		want []string
	}{
		{
			name: "min decade",
			spec: Spec{MinDecade: Ptr(1940)},
			want: []string{"Iowa", "Duke"},
		},
		{
			name: "decade range",
			spec: Spec{MinDecade: Ptr(1910), MaxDecade: Ptr(1920)},
			want: []string{"Ohio State", "Texas", "Alabama", "Florida", "Oregon"},
		},
		{
			name: "single conference",
			spec: Spec{Conferences: []string{"SEC"}},
			want: []string{"Alabama", "Florida"},
		},
		{
			name: "conference set is OR",
			spec: Spec{Conferences: []string{"SEC", "Pac-12"}},
			want: []string{"Alabama", "Florida", "Stanford", "Oregon"},
		},
		{
			name: "conference is case-insensitive",
			spec: Spec{Conferences: []string{"big 12"}},
			want: []string{"Texas", "Oklahoma"},
		},
		{
			name: "unknown conference matches nothing",
			spec: Spec{Conferences: []string{"Ivy League"}},
			want: []string{},
		},
		{
			name: "dimensions are AND",
			spec: Spec{
				Conferences: []string{"Big Ten"},
				Tropes:      map[dataset.Trope]bool{dataset.VictoryWinWon: true},
			},
			want: []string{"Michigan", "Ohio State"},
		},
		{
			name: "trope false",
			spec: Spec{
				Conferences: []string{"Big Ten"},
				Tropes:      map[dataset.Trope]bool{dataset.VictoryWinWon: false},
			},
			want: []string{"Wisconsin", "Minnesota", "Iowa"},
		},
		{
			name: "student writer excludes unknown",
			spec: Spec{StudentWriter: Ptr(true), Conferences: []string{"ACC", "Pac-12"}},
			want: []string{"Stanford", "Oregon"},
		},
		{
			name: "contest",
			spec: Spec{Contest: Ptr(true)},
			want: []string{"Minnesota", "Alabama"},
		},
		{
			name: "official song false",
			spec: Spec{OfficialSong: Ptr(false)},
			want: []string{"Stanford"},
		},
		{
			name: "school substring",
			spec: Spec{School: "  ORE "},
			want: []string{"Oregon"},
		},
		{
			name: "school and trope",
			spec: Spec{School: "o", Tropes: map[dataset.Trope]bool{dataset.Spelling: true}},
			want: []string{"Minnesota", "Oregon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schools(Apply(records, tt.spec))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_Known(t *testing.T) {
	records := loadFixture(t)

	tests := []struct {
		name  string
		known Known
		want  int
	}{
		{"year", Known{Year: true}, 13},
		{"student writer", Known{StudentWriter: true}, 12},
		{"year and contest", Known{Year: true, Contest: true}, 13},
		{"conference and radar tropes", Known{Conference: true, Tropes: dataset.RadarTropes}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Spec{Known: tt.known}
			if spec.IsEmpty() {
				t.Fatal("IsEmpty() = true for a Known requirement")
			}
			if got := len(Apply(records, spec)); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApply_UnknownDecadeExcluded(t *testing.T) {
	records := loadFixture(t)

	for _, spec := range []Spec{
		{MinDecade: Ptr(0)},
		{MaxDecade: Ptr(3000)},
	} {
		for _, r := range Apply(records, spec) {
			if r.School == "Georgia Tech" {
				t.Errorf("spec %s matched a record with unknown year", spec.Describe())
			}
		}
	}
}

func TestApply_SubsetProperty(t *testing.T) {
	records := loadFixture(t)
	specs := []Spec{
		{MinDecade: Ptr(1900)},
		{Conferences: []string{"Big Ten", "ACC"}},
		{Tropes: map[dataset.Trope]bool{dataset.Fight: true, dataset.Men: false}},
		{StudentWriter: Ptr(false), Contest: Ptr(false)},
	}

	for _, spec := range specs {
		got := Apply(records, spec)
		if len(got) > len(records) {
			t.Fatalf("%s: subset larger than input", spec.Describe())
		}
		for _, r := range got {
			if !Matches(r, spec) {
				t.Errorf("%s: %s returned but does not match", spec.Describe(), r.School)
			}
		}
		// Every excluded record must fail the spec.
		kept := make(map[string]bool, len(got))
		for _, r := range got {
			kept[r.School] = true
		}
		for _, r := range records {
			if !kept[r.School] && Matches(r, spec) {
				t.Errorf("%s: %s matches but was dropped", spec.Describe(), r.School)
			}
		}
	}
}

func TestApply_Deterministic(t *testing.T) {
	records := loadFixture(t)
	spec := Spec{MinDecade: Ptr(1900), Tropes: map[dataset.Trope]bool{dataset.Fight: true}}

	first := strings.Join(schools(Apply(records, spec)), ",")
	for i := 0; i < 5; i++ {
		if got := strings.Join(schools(Apply(records, spec)), ","); got != first {
			t.Fatalf("run %d = %s, want %s", i, got, first)
		}
	}
}

func TestSpec_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want bool
	}{
		{"zero", Spec{}, true},
		{"empty collections", Spec{Conferences: []string{}, Tropes: map[dataset.Trope]bool{}}, true},
		{"blank school", Spec{School: "   "}, true},
		{"min decade", Spec{MinDecade: Ptr(1900)}, false},
		{"conference", Spec{Conferences: []string{"SEC"}}, false},
		{"trope", Spec{Tropes: map[dataset.Trope]bool{dataset.Rah: false}}, false},
		{"contest", Spec{Contest: Ptr(false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpec_Validate(t *testing.T) {
	if err := (Spec{MinDecade: Ptr(1900), MaxDecade: Ptr(1900)}).Validate(); err != nil {
		t.Errorf("Validate() equal bounds error = %v", err)
	}

	err := Spec{MinDecade: Ptr(1950), MaxDecade: Ptr(1900)}.Validate()
	if err == nil {
		t.Fatal("Validate() inverted range error = nil")
	}
	if !stderrors.Is(err, errors.ErrQuery) {
		t.Errorf("Validate() error kind = %v, want ErrQuery", err)
	}

	err = Spec{Tropes: map[dataset.Trope]bool{dataset.Trope(99): true}}.Validate()
	if !stderrors.Is(err, errors.ErrQuery) {
		t.Errorf("Validate() bad trope error = %v, want ErrQuery", err)
	}

	err = Spec{Known: Known{Tropes: []dataset.Trope{dataset.Trope(-1)}}}.Validate()
	if !stderrors.Is(err, errors.ErrQuery) {
		t.Errorf("Validate() bad known trope error = %v, want ErrQuery", err)
	}
}

func TestSpec_Describe(t *testing.T) {
	if got := (Spec{}).Describe(); got != "all songs" {
		t.Errorf("Describe() = %q, want %q", got, "all songs")
	}

	spec := Spec{
		MinDecade:   Ptr(1900),
		Conferences: []string{"Big Ten"},
		Tropes:      map[dataset.Trope]bool{dataset.Rah: true, dataset.Fight: false},
		Contest:     Ptr(true),
		Known:       Known{Year: true, Tropes: []dataset.Trope{dataset.Men}},
	}
	got := spec.Describe()
	for _, want := range []string{"1900s", "Big Ten", "fight=no", "rah=yes", "contest=yes", "known year,men"} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe() = %q, missing %q", got, want)
		}
	}
	if strings.Index(got, "fight=no") > strings.Index(got, "rah=yes") {
		t.Errorf("Describe() trope order not sorted: %q", got)
	}
}
