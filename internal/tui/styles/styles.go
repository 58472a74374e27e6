// Package styles provides Lip Gloss styles for the fightsongs TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/dataset"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#376F32") // Field green
	Secondary   = lipgloss.Color("#FFD700") // Gold
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Series colors, matching the exported charts.
var (
	tropeColors = map[dataset.Trope]lipgloss.Color{
		dataset.Men:           lipgloss.Color("#F08080"),
		dataset.VictoryWinWon: lipgloss.Color("#FFA500"),
		dataset.Fight:         lipgloss.Color("#87CEFA"),
		dataset.Rah:           lipgloss.Color("#FFD700"),
		dataset.Nonsense:      lipgloss.Color("#40E0D0"),
		dataset.Colors:        lipgloss.Color("#9370DB"),
		dataset.Opponents:     lipgloss.Color("#DA70D6"),
	}

	conferenceColors = map[string]lipgloss.Color{
		"ACC":     lipgloss.Color("#A5A9AB"),
		"Big Ten": lipgloss.Color("#0088CE"),
		"Big 12":  lipgloss.Color("#C8102E"),
		"Pac-12":  lipgloss.Color("#4B6EAF"),
		"SEC":     lipgloss.Color("#FBCE28"),
	}

	// Yes and No sides of the authorship comparisons.
	StudentColors = [2]lipgloss.Color{"#228B22", "#8FBC8B"}
	ContestColors = [2]lipgloss.Color{"#EF6351", "#FBC3BC"}
)

// TropeColor returns the color of a trope series.
func TropeColor(t dataset.Trope) lipgloss.Color {
	if c, ok := tropeColors[t]; ok {
		return c
	}
	return MutedLight
}

// ConferenceColor returns the color of a conference.
func ConferenceColor(name string) lipgloss.Color {
	if c, ok := conferenceColors[name]; ok {
		return c
	}
	return MutedLight
}

// Header styles.
var (
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Tab styles.
var (
	// TabStyle is an inactive tab.
	TabStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 2)

	// ActiveTabStyle is the selected tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 2)
)

// Progress bar styles.
var (
	// ProgressFilledStyle is for the filled portion.
	ProgressFilledStyle = lipgloss.NewStyle().
				Foreground(Success).
				Bold(true)

	// ProgressEmptyStyle is for the empty portion.
	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)
)

// Text styles.
var (
	// SectionTitleStyle heads a block of a tab.
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Control styles.
var (
	// LabelStyle is for control labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// LabelFocusedStyle is for the focused control's label.
	LabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// CheckboxCheckedStyle is for checked checkboxes.
	CheckboxCheckedStyle = lipgloss.NewStyle().
				Foreground(Success)

	// CheckboxUncheckedStyle is for unchecked checkboxes.
	CheckboxUncheckedStyle = lipgloss.NewStyle().
				Foreground(Muted)
)
