package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/explore"
	"github.com/dbmrq/fightsongs/internal/filter"
	"github.com/dbmrq/fightsongs/internal/tui/components"
	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

func (m *Model) wrap(s string) string {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (m *Model) chartWidth() int {
	width := m.width - 40
	if width < 10 {
		width = 10
	}
	if width > 50 {
		width = 50
	}
	return width
}

func (m *Model) heading(view string) string {
	v, ok := m.narratives.View(view)
	if !ok {
		return ""
	}
	return styles.SectionTitleStyle.Render(v.Title) + "\n" + m.wrap(styles.MutedTextStyle.Render(v.Description)) + "\n\n"
}

func songs(v float64) string {
	if v == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%.0f songs", v)
}

func (m *Model) overviewContent() string {
	var b strings.Builder
	b.WriteString(styles.SectionTitleStyle.Render(m.narratives.Title()))
	b.WriteString("\n\n")
	for _, p := range m.narratives.Overview() {
		b.WriteString(m.wrap(p))
		b.WriteString("\n\n")
	}

	for _, dim := range []aggregate.Dimension{aggregate.ByConference, aggregate.ByDecade} {
		it, err := m.scope.Run(m.ctx, filter.Spec{}, aggregate.Request{GroupBy: dim, Metric: aggregate.Count})
		if err != nil {
			b.WriteString(styles.ErrorTextStyle.Render(err.Error()) + "\n")
			continue
		}
		rows := make([]components.BarRow, len(it.Result.Groups))
		for i, g := range it.Result.Groups {
			rows[i] = components.BarRow{Label: g.Label, Value: g.Value}
			if dim == aggregate.ByConference {
				rows[i].Color = styles.ConferenceColor(g.Key)
			}
		}
		chart := components.NewBarChart()
		chart.SetWidth(m.chartWidth())
		chart.SetFormat(songs)
		chart.SetRows(rows)

		b.WriteString(styles.SectionTitleStyle.Render("Songs by " + strings.ToLower(dim.Label())))
		b.WriteString("\n")
		b.WriteString(chart.View())
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) decadeContent() string {
	var b strings.Builder
	b.WriteString(m.heading("decade"))

	minDecade := m.slider.Value()
	tropes := m.SelectedSeries()
	if len(tropes) == 0 {
		b.WriteString(styles.WarningTextStyle.Render("Select at least one series."))
	} else {
		trend := m.scope.DecadeTrends(m.ctx, minDecade, tropes)
		decades := trend.Decades()
		if len(decades) == 0 {
			b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("No dated songs from the %ds on.", minDecade)))
		} else {
			b.WriteString(m.trendLines(trend, decades, tropes))
		}
	}

	b.WriteString("\n\n")
	decade, ok := m.picker.Selected()
	if !ok {
		b.WriteString(styles.MutedTextStyle.Render("Click a decade button to see historical context."))
		return b.String()
	}
	b.WriteString(styles.SectionTitleStyle.Render(fmt.Sprintf("The %ds", decade)))
	b.WriteString("\n")
	b.WriteString(m.wrap(m.narratives.Lookup(decade)))
	return b.String()
}

func (m *Model) trendLines(trend explore.DecadeTrend, decades []int, tropes []dataset.Trope) string {
	labelWidth := 0
	for _, t := range tropes {
		if w := lipgloss.Width(t.Label()); w > labelWidth {
			labelWidth = w
		}
	}
	label := styles.LabelStyle.Width(labelWidth)

	var lines []string
	lines = append(lines, styles.MutedTextStyle.Render(fmt.Sprintf("%ds to %ds, one mark per decade, scaled to 100%%",
		decades[0], decades[len(decades)-1])))
	for _, t := range tropes {
		values, ok := trend.Series(t)
		if !ok {
			continue
		}
		first, last := knownEnds(values)
		lines = append(lines, fmt.Sprintf("%s %s  %s → %s",
			label.Render(t.Label()),
			components.Sparkline(values, 1, styles.TropeColor(t)),
			first, last,
		))
	}

	counts := make([]string, len(trend.Profile.Groups))
	for i, g := range trend.Profile.Groups {
		counts[i] = fmt.Sprintf("%s: %d", g.Label, g.Count)
	}
	lines = append(lines, "", styles.MutedTextStyle.Render("Songs per decade  "+strings.Join(counts, " · ")))
	return strings.Join(lines, "\n")
}

// knownEnds formats the first and last values that are not NaN.
func knownEnds(values []float64) (first, last string) {
	first, last = "n/a", "n/a"
	for _, v := range values {
		if !math.IsNaN(v) {
			first = components.Percent(v)
			break
		}
	}
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			last = components.Percent(values[i])
			break
		}
	}
	return first, last
}

func (m *Model) conferenceContent() string {
	var b strings.Builder
	b.WriteString(m.heading("conference"))

	prof, err := m.scope.ConferenceProfiles(m.ctx, m.SelectedConferences(), m.SelectedDimensions())
	if err != nil {
		msg := err.Error()
		if appErr, ok := errors.As(err); ok && appErr.Suggestion != "" {
			msg = appErr.Suggestion
		}
		b.WriteString(styles.WarningTextStyle.Render(msg))
		return b.String()
	}
	if len(prof.Top) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("No songs with a known conference and profile."))
		return b.String()
	}
	if len(prof.Selected) == 0 {
		b.WriteString(styles.WarningTextStyle.Render("Select at least one conference."))
		return b.String()
	}

	for i, t := range prof.Profile.Tropes {
		rows := make([]components.BarRow, len(prof.Profile.Groups))
		for j, g := range prof.Profile.Groups {
			rows[j] = components.BarRow{Label: g.Label, Value: g.Values[i], Color: styles.ConferenceColor(g.Key)}
		}
		chart := components.NewBarChart()
		chart.SetWidth(m.chartWidth())
		chart.SetMax(1)
		chart.SetRows(rows)

		b.WriteString(lipgloss.NewStyle().Foreground(styles.TropeColor(t)).Bold(true).Render(t.Label()))
		b.WriteString("\n")
		b.WriteString(chart.View())
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) authorshipContent() string {
	var b strings.Builder
	b.WriteString(m.heading("authorship"))

	a := m.scope.AuthorshipComparison(m.ctx, m.kind)
	yes, no := m.kind.Labels()
	colors := styles.StudentColors
	if m.kind == explore.ByContest {
		colors = styles.ContestColors
	}

	b.WriteString(styles.SectionTitleStyle.Render(m.kind.Title()))
	b.WriteString("\n")
	if a.YesCount+a.NoCount == 0 {
		b.WriteString(styles.MutedTextStyle.Render("No songs with known authorship."))
		return b.String()
	}

	swatch := func(c lipgloss.Color) string { return lipgloss.NewStyle().Foreground(c).Render("■") }
	b.WriteString(fmt.Sprintf("%s %s (%d)   %s %s (%d)\n\n",
		swatch(colors[0]), yes, a.YesCount, swatch(colors[1]), no, a.NoCount))

	rows := make([]components.BarRow, 0, 2*len(a.Tropes))
	for i, t := range a.Tropes {
		rows = append(rows,
			components.BarRow{Label: t.Label(), Value: a.Yes[i], Color: colors[0]},
			components.BarRow{Label: "", Value: a.No[i], Color: colors[1]},
		)
	}
	chart := components.NewBarChart()
	chart.SetWidth(m.chartWidth())
	chart.SetMax(1)
	chart.SetRows(rows)
	b.WriteString(chart.View())
	return b.String()
}

// controlsView renders the active tab's widgets above the pane.
func (m *Model) controlsView() string {
	switch m.ActiveTab() {
	case TabDecade:
		lines := []string{m.slider.View(), styles.SectionTitleStyle.Render("Series")}
		lines = append(lines, checkboxRows(m.series, 4)...)
		lines = append(lines, m.picker.View())
		return strings.Join(lines, "\n")

	case TabConference:
		lines := []string{styles.SectionTitleStyle.Render("Conferences")}
		lines = append(lines, checkboxRows(m.conferences, 5)...)
		lines = append(lines, styles.SectionTitleStyle.Render("Dimensions"))
		lines = append(lines, checkboxRows(m.dimensions, 4)...)
		return strings.Join(lines, "\n")

	case TabAuthorship:
		student, contest := "( )", "( )"
		if m.kind == explore.ByContest {
			contest = "(•)"
		} else {
			student = "(•)"
		}
		return styles.LabelStyle.Render("Compare: ") +
			styles.LabelFocusedStyle.Render(student) + " Student writer   " +
			styles.LabelFocusedStyle.Render(contest) + " Contest selection"
	}
	return ""
}

// checkboxRows lays boxes out perRow to a line.
func checkboxRows(boxes []*components.Checkbox, perRow int) []string {
	if len(boxes) == 0 {
		return []string{styles.MutedTextStyle.Render("  (none)")}
	}
	var rows []string
	for start := 0; start < len(boxes); start += perRow {
		end := start + perRow
		if end > len(boxes) {
			end = len(boxes)
		}
		cells := make([]string, 0, end-start)
		for _, cb := range boxes[start:end] {
			cells = append(cells, lipgloss.NewStyle().Width(26).Render(cb.View()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return rows
}
