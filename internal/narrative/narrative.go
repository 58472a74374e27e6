// Package narrative holds the historical context written for each decade.
package narrative

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fallback is shown for decades without written context.
const Fallback = "No context added yet for this decade."

// Entry is the context for one decade.
type Entry struct {
	Decade int    `yaml:"decade"`
	Era    string `yaml:"era"`
	Text   string `yaml:"text"`
}

// Summary joins the era and the text the way the decade pane shows them.
func (e Entry) Summary() string {
	if e.Era == "" {
		return e.Text
	}
	return e.Era + ": " + e.Text
}

// View is the heading of one explorer view.
type View struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type catalogFile struct {
	Title    string          `yaml:"title"`
	Overview []string        `yaml:"overview"`
	Views    map[string]View `yaml:"views"`
	Decades  []Entry         `yaml:"decades"`
}

// Catalog maps decades to their context and holds the explorer's
// overview text.
type Catalog struct {
	title    string
	overview []string
	views    map[string]View
	entries  map[int]Entry
}

//go:embed narratives.yaml
var embeddedNarratives []byte

var defaultCatalog = mustParse(embeddedNarratives)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog
}

// Lookup returns the context text for a decade from the default catalog.
func Lookup(decade int) string {
	return defaultCatalog.Lookup(decade)
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse narratives: %w", err)
	}

	c := &Catalog{
		title:   strings.TrimSpace(file.Title),
		views:   make(map[string]View, len(file.Views)),
		entries: make(map[int]Entry, len(file.Decades)),
	}
	for _, p := range file.Overview {
		if p = strings.TrimSpace(p); p != "" {
			c.overview = append(c.overview, p)
		}
	}
	for name, v := range file.Views {
		c.views[name] = View{
			Title:       strings.TrimSpace(v.Title),
			Description: strings.TrimSpace(v.Description),
		}
	}
	for _, e := range file.Decades {
		if e.Decade%10 != 0 {
			return nil, fmt.Errorf("narrative for %d: not a decade", e.Decade)
		}
		if _, exists := c.entries[e.Decade]; exists {
			return nil, fmt.Errorf("narrative for %d defined twice", e.Decade)
		}
		e.Era = strings.TrimSpace(e.Era)
		e.Text = strings.TrimSpace(e.Text)
		if e.Text == "" {
			return nil, fmt.Errorf("narrative for %d: text is required", e.Decade)
		}
		c.entries[e.Decade] = e
	}
	return c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Title is the application title.
func (c *Catalog) Title() string {
	return c.title
}

// Overview returns the overview paragraphs.
func (c *Catalog) Overview() []string {
	return append([]string(nil), c.overview...)
}

// View returns the heading for a named view ("decade", "conference",
// "authorship").
func (c *Catalog) View(name string) (View, bool) {
	v, ok := c.views[name]
	return v, ok
}

// Entry returns the entry for a decade.
func (c *Catalog) Entry(decade int) (Entry, bool) {
	e, ok := c.entries[decade]
	return e, ok
}

// Lookup returns the context text for decade, or Fallback.
func (c *Catalog) Lookup(decade int) string {
	if e, ok := c.entries[decade]; ok {
		return e.Summary()
	}
	return Fallback
}

// Decades lists the decades with context, ascending.
func (c *Catalog) Decades() []int {
	out := make([]int, 0, len(c.entries))
	for d := range c.entries {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
