// Package render draws the explorer's charts to PNG or SVG.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/explore"
)

// Format is an image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat parses "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	case "":
		return PNG, nil
	}
	return "", errors.InvalidQuery("chart format", fmt.Sprintf("unknown format %q", s), []string{string(PNG), string(SVG)})
}

// FormatForPath guesses the format from a file extension, defaulting to def.
func FormatForPath(path string, def Format) Format {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".svg"):
		return SVG
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return PNG
	}
	return def
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Options sizes and encodes a chart.
type Options struct {
	Width  int
	Height int
	Format Format
}

// DefaultOptions returns a 1200x480 PNG.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 480, Format: PNG}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	return o
}

// WriteFile creates path and draws into it with draw.
func WriteFile(path string, draw func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.RenderFailed(path, err)
	}
	if err := draw(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.RenderFailed(path, err)
	}
	return nil
}

// shareAxis is the y axis of every chart: a proportion from 0 to 1.
func shareAxis(name string, style chart.Style) chart.YAxis {
	return chart.YAxis{
		Name:  name,
		Style: style,
		Range: &chart.ContinuousRange{Min: 0, Max: 1.05},
		Ticks: []chart.Tick{
			{Value: 0, Label: "0%"},
			{Value: 0.25, Label: "25%"},
			{Value: 0.5, Label: "50%"},
			{Value: 0.75, Label: "75%"},
			{Value: 1, Label: "100%"},
		},
	}
}

// categoryAxis labels the integer positions 0..len(labels)-1. go-chart
// takes the x range from the outermost ticks, so unlabeled ticks half a
// step outside pad both ends and keep a single category drawable.
func categoryAxis(name string, labels []string, style chart.Style) chart.XAxis {
	ticks := make([]chart.Tick, 0, len(labels)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, l := range labels {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(labels)) - 0.5})
	return chart.XAxis{
		Name:  name,
		Style: style,
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(labels)) - 0.5},
	}
}

// knownRuns splits ys into runs of consecutive non-NaN values, so a
// decade without data is a gap in the line instead of a point at 0.
func knownRuns(xs, ys []float64) (runs [][2][]float64) {
	start := -1
	for i := 0; i <= len(ys); i++ {
		if i < len(ys) && !math.IsNaN(ys[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, [2][]float64{xs[start:i], ys[start:i]})
			start = -1
		}
	}
	return runs
}

func positions(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: 3,
		DotColor:    c,
		DotWidth:    5,
	}
}

// Decade draws one line per profiled trope across decades, on a field
// green background.
func Decade(w io.Writer, t explore.DecadeTrend, opts Options) error {
	opts = opts.withDefaults()
	decades := t.Decades()
	if len(t.Profile.Tropes) == 0 {
		return errors.RenderFailed("decade chart", fmt.Errorf("no tropes selected"))
	}
	if len(decades) == 0 {
		return errors.RenderFailed("decade chart", fmt.Errorf("no songs from the %ds onward", t.MinDecade))
	}

	labels := make([]string, len(decades))
	for i, d := range decades {
		labels[i] = fmt.Sprintf("%ds", d)
	}

	xs := positions(len(decades))
	var series, legend []chart.Series
	for _, trope := range t.Profile.Tropes {
		ys, _ := t.Series(trope)
		style := lineStyle(TropeColor(trope))
		legend = append(legend, chart.ContinuousSeries{Name: trope.Label(), Style: style})
		for _, run := range knownRuns(xs, ys) {
			series = append(series, chart.ContinuousSeries{
				XValues: run[0],
				YValues: run[1],
				Style:   style,
			})
		}
	}
	if len(series) == 0 {
		return errors.RenderFailed("decade chart", fmt.Errorf("no known trope values from the %ds onward", t.MinDecade))
	}

	onField := chart.Style{FontColor: drawing.ColorWhite, StrokeColor: drawing.ColorWhite}
	ch := chart.Chart{
		Title:      "Fight Song Trope Mentions by Decade",
		TitleStyle: chart.Style{FontColor: drawing.ColorWhite},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			FillColor: fieldGreen,
			Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: fieldGreen},
		XAxis:  categoryAxis("Decade", labels, onField),
		YAxis:  shareAxis("Proportion of songs using each trope", onField),
		Series: series,
	}
	// One legend entry per trope, however many runs its line has.
	key := ch
	key.Series = legend
	ch.Elements = []chart.Renderable{chart.Legend(&key)}

	if err := ch.Render(opts.Format.provider(), w); err != nil {
		return errors.RenderFailed("decade chart", err)
	}
	return nil
}

// Conference draws each selected conference's trope profile as a filled
// line across the trope axis.
func Conference(w io.Writer, p explore.ConferenceProfile, opts Options) error {
	opts = opts.withDefaults()
	prof := p.Profile
	if len(prof.Groups) == 0 {
		return errors.RenderFailed("conference chart", fmt.Errorf("no conferences selected"))
	}

	labels := make([]string, len(prof.Tropes))
	for i, t := range prof.Tropes {
		labels[i] = t.Label()
	}

	xs := positions(len(prof.Tropes))
	series := make([]chart.Series, 0, len(prof.Groups))
	for _, g := range prof.Groups {
		c := ConferenceColor(g.Key)
		style := lineStyle(c)
		style.FillColor = c.WithAlpha(46)
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s (n=%d)", g.Label, g.Count),
			XValues: xs,
			YValues: g.Values,
			Style:   style,
		})
	}

	ch := chart.Chart{
		Title:  "Fight Song Trope Profiles by Conference",
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  categoryAxis("Trope", labels, chart.Style{}),
		YAxis:  shareAxis("Proportion of songs", chart.Style{}),
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(opts.Format.provider(), w); err != nil {
		return errors.RenderFailed("conference chart", err)
	}
	return nil
}

// Authorship draws paired bars per trope: the dark bar is the yes side of
// the comparison and the light bar the no side.
func Authorship(w io.Writer, a explore.Authorship, opts Options) error {
	opts = opts.withDefaults()
	if len(a.Tropes) == 0 {
		return errors.RenderFailed("authorship chart", fmt.Errorf("no tropes to compare"))
	}

	palette := studentColors
	if a.Kind == explore.ByContest {
		palette = contestColors
	}
	yes, no := a.Kind.Labels()

	bars := make([]chart.Value, 0, 2*len(a.Tropes))
	for i, t := range a.Tropes {
		bars = append(bars,
			chart.Value{
				Label: t.Key(),
				Value: a.Yes[i],
				Style: chart.Style{FillColor: palette[0], StrokeColor: palette[0]},
			},
			chart.Value{
				Label: " ",
				Value: a.No[i],
				Style: chart.Style{FillColor: palette[1], StrokeColor: palette[1]},
			},
		)
	}

	bc := chart.BarChart{
		Title:  fmt.Sprintf("%s: %s (n=%d) vs %s (n=%d)", a.Kind.Title(), yes, a.YesCount, no, a.NoCount),
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth:   barWidth(opts.Width, len(bars)),
		BarSpacing: 6,
		YAxis:      shareAxis("Proportion of songs", chart.Style{}),
		Bars:       bars,
	}

	if err := bc.Render(opts.Format.provider(), w); err != nil {
		return errors.RenderFailed("authorship chart", err)
	}
	return nil
}

// barWidth fits n bars and their spacing into the plot area.
func barWidth(width, n int) int {
	w := (width-160)/n - 6
	if w < 4 {
		return 4
	}
	if w > 30 {
		return 30
	}
	return w
}
