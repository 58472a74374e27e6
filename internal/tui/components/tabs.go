package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// Tabs is a row of numbered tab titles with one active tab.
type Tabs struct {
	titles []string
	active int
	width  int
}

// NewTabs creates a Tabs component with the first tab active.
func NewTabs(titles ...string) *Tabs {
	return &Tabs{titles: titles}
}

// Active returns the index of the active tab.
func (t *Tabs) Active() int {
	return t.active
}

// Len returns the number of tabs.
func (t *Tabs) Len() int {
	return len(t.titles)
}

// Next activates the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.titles) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.titles)
}

// Prev activates the preceding tab, wrapping around.
func (t *Tabs) Prev() {
	if len(t.titles) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.titles)) % len(t.titles)
}

// Set activates tab i. Out of range indexes are ignored.
func (t *Tabs) Set(i int) bool {
	if i < 0 || i >= len(t.titles) {
		return false
	}
	t.active = i
	return true
}

// SetWidth sets the width used to draw the rule under the tabs.
func (t *Tabs) SetWidth(width int) {
	t.width = width
}

// View renders the tab row.
func (t *Tabs) View() string {
	parts := make([]string, len(t.titles))
	for i, title := range t.titles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if i == t.active {
			parts[i] = styles.ActiveTabStyle.Render(label)
		} else {
			parts[i] = styles.TabStyle.Render(label)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if t.width <= 0 {
		return row
	}
	rule := lipgloss.NewStyle().
		Foreground(styles.BorderColor).
		Render(strings.Repeat("─", t.width))
	return row + "\n" + rule
}
