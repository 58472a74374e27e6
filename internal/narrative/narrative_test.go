package narrative

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	want := []int{1890, 1900, 1910, 1920, 1930, 1940, 1950, 1960}
	if got := Default().Decades(); !reflect.DeepEqual(got, want) {
		t.Errorf("Decades() = %v, want %v", got, want)
	}
}

func TestDefault_Overview(t *testing.T) {
	c := Default()
	if c.Title() != "College Fight Song Analysis" {
		t.Errorf("Title() = %q", c.Title())
	}
	if got := c.Overview(); len(got) != 3 || !strings.HasPrefix(got[0], "College fight songs are") {
		t.Errorf("Overview() = %v", got)
	}
	for _, name := range []string{"decade", "conference", "authorship"} {
		v, ok := c.View(name)
		if !ok || v.Title == "" || v.Description == "" {
			t.Errorf("View(%q) = %+v, %v", name, v, ok)
		}
	}
	if _, ok := c.View("overview"); ok {
		t.Error("View(overview) should not exist")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		decade int
		prefix string
	}{
		{1890, "Late 19th century: Universities were formalizing"},
		{1920, "Roaring Twenties: "},
		{1960, "Civil Rights Movement and social change: "},
		{1970, Fallback},
		{1880, Fallback},
	}

	for _, tt := range tests {
		if got := Lookup(tt.decade); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Lookup(%d) = %q, want prefix %q", tt.decade, got, tt.prefix)
		}
	}
}

func TestLookup_FoldedText(t *testing.T) {
	got := Lookup(1900)
	if strings.Contains(got, "\n") {
		t.Errorf("Lookup(1900) contains a newline: %q", got)
	}
	if !strings.HasSuffix(got, "gender norms.") {
		t.Errorf("Lookup(1900) = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: "decades:\n  - decade: 2000\n    era: Now\n    text: Hello\n",
		},
		{
			name:    "not a decade",
			yaml:    "decades:\n  - decade: 2001\n    text: Hello\n",
			wantErr: "not a decade",
		},
		{
			name:    "duplicate",
			yaml:    "decades:\n  - decade: 2000\n    text: a\n  - decade: 2000\n    text: b\n",
			wantErr: "defined twice",
		},
		{
			name:    "missing text",
			yaml:    "decades:\n  - decade: 2000\n    era: Now\n",
			wantErr: "text is required",
		},
		{
			name:    "bad yaml",
			yaml:    "decades: [",
			wantErr: "parse narratives",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := c.Lookup(2000); got != "Now: Hello" {
				t.Errorf("Lookup(2000) = %q", got)
			}
			if e, ok := c.Entry(2000); !ok || e.Era != "Now" {
				t.Errorf("Entry(2000) = %+v, %v", e, ok)
			}
		})
	}
}
