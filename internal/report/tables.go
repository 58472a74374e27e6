package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/explore"
)

const barWidth = 20

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})
	return t.String()
}

// bar draws v out of top as a row of blocks.
func bar(v, top float64) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := int(v / top * barWidth)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Interaction writes a query's result.
func (r *Reporter) Interaction(it explore.Interaction) error {
	return r.write("query", it, func() string {
		return r.interactionText(it)
	})
}

func (r *Reporter) interactionText(it explore.Interaction) string {
	var sb strings.Builder
	req := it.Result.Request

	fmt.Fprintf(&sb, "%s %s\n", titleStyle.Render("Filter:"), it.Filter)
	fmt.Fprintf(&sb, "%s %s of %s songs\n", titleStyle.Render("Matched:"), r.count(it.Matched), r.count(it.Total))
	metric := string(req.Metric)
	if req.Metric == aggregate.Mean {
		metric = fmt.Sprintf("mean %s", req.Attribute)
	}
	fmt.Fprintf(&sb, "%s %s by %s\n\n", titleStyle.Render("Metric:"), metric, req.GroupBy.Label())

	if it.Result.Empty() {
		sb.WriteString("No songs match this filter.\n")
		return sb.String()
	}

	var top float64
	for _, g := range it.Result.Groups {
		if g.Value > top {
			top = g.Value
		}
	}

	rows := make([][]string, 0, len(it.Result.Groups))
	for _, g := range it.Result.Groups {
		rows = append(rows, []string{g.Label, r.count(g.Count), r.value(req.Metric, g), bar(g.Value, top)})
	}
	sb.WriteString(newTable([]string{req.GroupBy.Label(), "Songs", valueHeader(req), ""}, rows))
	sb.WriteString("\n")
	return sb.String()
}

func valueHeader(req aggregate.Request) string {
	switch req.Metric {
	case aggregate.Proportion:
		return "Share"
	case aggregate.Mean:
		return "Mean"
	}
	return "Count"
}

func (r *Reporter) value(m aggregate.Metric, g aggregate.Group) string {
	switch m {
	case aggregate.Proportion:
		return r.percent(g.Value)
	case aggregate.Mean:
		if g.Samples == 0 {
			return "n/a"
		}
		return r.number(g.Value)
	}
	return r.count(g.Count)
}

// DecadeTrend writes the decade view.
func (r *Reporter) DecadeTrend(t explore.DecadeTrend) error {
	return r.write("decade", t, func() string {
		return r.profileText(
			fmt.Sprintf("Trope share by decade, from the %ds", t.MinDecade),
			t.Profile)
	})
}

// ConferenceProfile writes the conference view.
func (r *Reporter) ConferenceProfile(p explore.ConferenceProfile) error {
	return r.write("conference", p, func() string {
		title := "Trope share by conference"
		if len(p.Selected) == 0 {
			return title + "\n\nNo conferences selected. Choose from: " + strings.Join(p.Top, ", ") + "\n"
		}
		return r.profileText(title, p.Profile)
	})
}

// profileText renders a profile with groups as rows and tropes as columns.
func (r *Reporter) profileText(title string, p aggregate.ProfileResult) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	if len(p.Groups) == 0 {
		sb.WriteString("No songs match this selection.\n")
		return sb.String()
	}

	headers := []string{p.GroupBy.Label(), "Songs"}
	for _, t := range p.Tropes {
		headers = append(headers, t.Label())
	}
	rows := make([][]string, 0, len(p.Groups))
	for _, g := range p.Groups {
		row := []string{g.Label, r.count(g.Count)}
		for i, v := range g.Values {
			if !g.Known(i) {
				row = append(row, "n/a")
				continue
			}
			row = append(row, r.percent(v))
		}
		rows = append(rows, row)
	}
	sb.WriteString(newTable(headers, rows))
	sb.WriteString("\n")
	return sb.String()
}

// Authorship writes the authorship comparison.
func (r *Reporter) Authorship(a explore.Authorship) error {
	return r.write("authorship", a, func() string {
		var sb strings.Builder
		yes, no := a.Kind.Labels()
		sb.WriteString(titleStyle.Render(a.Kind.Title()))
		sb.WriteString("\n\n")

		rows := make([][]string, 0, len(a.Tropes))
		for i, t := range a.Tropes {
			rows = append(rows, []string{t.Label(), r.percent(a.Yes[i]), r.percent(a.No[i])})
		}
		sb.WriteString(newTable([]string{
			"Trope",
			fmt.Sprintf("%s (n=%s)", yes, r.count(a.YesCount)),
			fmt.Sprintf("%s (n=%s)", no, r.count(a.NoCount)),
		}, rows))
		sb.WriteString("\n")
		return sb.String()
	})
}
