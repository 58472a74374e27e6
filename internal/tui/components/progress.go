package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// ProgressData contains the data to display in the match gauge.
type ProgressData struct {
	Matched int
	Total   int
	// Filter describes what narrowed the songs, e.g. "school contains ohio".
	Filter string
}

// Progress is a gauge showing how many songs the current filter keeps.
type Progress struct {
	data  ProgressData
	width int
}

// NewProgress creates a new Progress component.
func NewProgress() *Progress {
	return &Progress{}
}

// SetData updates the gauge data.
func (p *Progress) SetData(data ProgressData) {
	p.data = data
}

// SetProgress sets matched and total counts.
func (p *Progress) SetProgress(matched, total int) {
	p.data.Matched = matched
	p.data.Total = total
}

// SetFilter sets the filter description.
func (p *Progress) SetFilter(filter string) {
	p.data.Filter = filter
}

// SetWidth sets the width for the gauge.
func (p *Progress) SetWidth(width int) {
	p.width = width
}

// View renders the gauge.
func (p *Progress) View() string {
	barWidth := 20
	if p.width > 60 {
		barWidth = 30
	}
	if p.width > 80 {
		barWidth = 40
	}

	filled := int(p.Percent() * float64(barWidth))
	bar := styles.ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	count := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Render(fmt.Sprintf("%d/%d songs", p.data.Matched, p.data.Total))

	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	content := fmt.Sprintf("Songs: %s%s%s", bar, sep, count)

	if p.data.Filter != "" {
		filterStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		content = fmt.Sprintf("%s%s%s", content, sep, filterStyle.Render(p.data.Filter))
	}

	containerStyle := lipgloss.NewStyle().
		Padding(0, 1)

	if p.width > 0 {
		containerStyle = containerStyle.Width(p.width)
	}

	return containerStyle.Render(content)
}

// Percent returns the matched share (0.0 - 1.0).
func (p *Progress) Percent() float64 {
	if p.data.Total == 0 {
		return 0
	}
	return float64(p.data.Matched) / float64(p.data.Total)
}

// Filtered returns true if the filter drops any song.
func (p *Progress) Filtered() bool {
	return p.data.Matched < p.data.Total
}
