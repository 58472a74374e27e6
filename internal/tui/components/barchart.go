package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// BarRow is one horizontal bar.
type BarRow struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart draws labeled horizontal bars in the terminal.
type BarChart struct {
	rows   []BarRow
	max    float64
	width  int
	format func(float64) string
}

// NewBarChart creates an empty chart that prints values as percentages.
func NewBarChart() *BarChart {
	return &BarChart{
		width:  30,
		format: Percent,
	}
}

// Percent formats a 0..1 share as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// SetRows replaces the bars.
func (c *BarChart) SetRows(rows []BarRow) {
	c.rows = rows
}

// Rows returns the bars.
func (c *BarChart) Rows() []BarRow {
	return c.rows
}

// SetMax fixes the value of a full bar. Zero scales to the largest row.
func (c *BarChart) SetMax(max float64) {
	c.max = max
}

// SetWidth sets the length of a full bar in cells.
func (c *BarChart) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	c.width = width
}

// SetFormat sets how values are printed after the bars.
func (c *BarChart) SetFormat(format func(float64) string) {
	c.format = format
}

// View renders the chart, one bar per line.
func (c *BarChart) View() string {
	if len(c.rows) == 0 {
		return styles.MutedTextStyle.Render("No data")
	}

	max := c.max
	labelWidth := 0
	for _, r := range c.rows {
		if c.max <= 0 && r.Value > max {
			max = r.Value
		}
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, len(c.rows))
	for i, r := range c.rows {
		n := 0
		if max > 0 && r.Value > 0 {
			n = int(r.Value/max*float64(c.width) + 0.5)
			if n > c.width {
				n = c.width
			}
		}
		color := r.Color
		if color == "" {
			color = styles.Primary
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n)) +
			strings.Repeat(" ", c.width-n)
		label := styles.LabelStyle.Width(labelWidth).Render(r.Label)
		lines[i] = fmt.Sprintf("%s %s %s", label, bar, styles.MutedTextStyle.Render(c.format(r.Value)))
	}
	return strings.Join(lines, "\n")
}
