package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Matched       int
	Total         int
	Filter        string // Describes the active filter, empty for none
	Message       string // Optional status message
	Error         bool   // Renders Message as an error
	ShowShortcuts bool
	Shortcuts     []ShortcutDef
}

// StatusBar shows the match count, the active filter and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			ShowShortcuts: true,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetCounts sets the matched and total song counts.
func (s *StatusBar) SetCounts(matched, total int) {
	s.data.Matched = matched
	s.data.Total = total
}

// SetFilter sets the filter description.
func (s *StatusBar) SetFilter(filter string) {
	s.data.Filter = filter
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
	s.data.Error = false
}

// SetError sets a message rendered as an error.
func (s *StatusBar) SetError(message string) {
	s.data.Message = message
	s.data.Error = true
}

// SetShortcuts sets the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	label := lipgloss.NewStyle().
		Foreground(styles.MutedLight)

	countValue := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Render(fmt.Sprintf("%d/%d", s.data.Matched, s.data.Total))

	leftContent := label.Render("Songs: ") + countValue

	filter := s.data.Filter
	if filter == "" {
		filter = "all songs"
	}
	leftContent += sep + label.Render("Filter: ") +
		lipgloss.NewStyle().Foreground(styles.Foreground).Render(filter)

	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		if s.data.Error {
			msgStyle = styles.ErrorTextStyle
		}
		leftContent += sep + msgStyle.Render(s.data.Message)
	}

	rightContent := ""
	if s.data.ShowShortcuts && len(s.data.Shortcuts) > 0 {
		rightContent = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // -2 for container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	if rightContent == "" {
		return containerStyle.Render(leftContent)
	}
	return containerStyle.Render(leftContent + "  " + rightContent)
}
