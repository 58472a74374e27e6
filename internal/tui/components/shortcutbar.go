package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar is a component that displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	var parts []string
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}

	content := strings.Join(parts, lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ "))

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

// Predefined shortcut sets, one per tab.
var (
	// OverviewShortcuts are shortcuts for the overview tab.
	OverviewShortcuts = []ShortcutDef{
		{"Tab", "next tab"},
		{"/", "search"},
		{"PgUp/PgDn", "scroll"},
		{"q", "quit"},
		{"?", "help"},
	}

	// DecadeShortcuts are shortcuts for the decade tab.
	DecadeShortcuts = []ShortcutDef{
		{"←→", "decade"},
		{"[ ]", "context"},
		{"↑↓", "select"},
		{"Space", "toggle series"},
		{"Tab", "next tab"},
		{"?", "help"},
	}

	// ConferenceShortcuts are shortcuts for the conference tab.
	ConferenceShortcuts = []ShortcutDef{
		{"↑↓", "select"},
		{"Space", "toggle"},
		{"Tab", "next tab"},
		{"?", "help"},
	}

	// AuthorshipShortcuts are shortcuts for the authorship tab.
	AuthorshipShortcuts = []ShortcutDef{
		{"←→", "student/contest"},
		{"Tab", "next tab"},
		{"?", "help"},
	}

	// SearchShortcuts are shortcuts while the search box has focus.
	SearchShortcuts = []ShortcutDef{
		{"Enter", "apply"},
		{"Esc", "clear"},
	}
)
