package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/explore"
	"github.com/dbmrq/fightsongs/internal/logging"
	"github.com/dbmrq/fightsongs/internal/render"
	"github.com/dbmrq/fightsongs/internal/report"
)

// View kinds shared by chart and view.
const (
	kindDecade     = "decade"
	kindConference = "conference"
	kindAuthorship = "authorship"
)

var viewKinds = []string{kindDecade, kindConference, kindAuthorship}

// chartCmd represents the chart command.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render an explorer chart to an image",
	Long: `Render one of the explorer's charts to a PNG or SVG file.

Kinds:
  decade      trope shares per decade, one line per trope
  conference  trope profiles of the selected conferences
  authorship  trope shares of student-written or contest songs vs the rest

The image format follows --format, then the file extension, then the
chart.format setting.

Examples:
  fightsongs chart --kind decade --out decades.png
  fightsongs chart --kind conference --conference SEC --conference "Big Ten" --out conf.svg
  fightsongs chart --kind authorship --authorship contest --out contest.png`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addChartFlags(chartCmd)
}

// addChartFlags registers the chart command's flags.
func addChartFlags(c *cobra.Command) {
	c.Flags().String("kind", kindDecade, "Chart kind: "+strings.Join(viewKinds, ", "))
	c.Flags().String("out", "", "Image file to write (required)")
	c.Flags().String("format", "", "Image format: png or svg")
	addViewSelectionFlags(c)
}

// addViewSelectionFlags registers the flags that pick what a view shows.
func addViewSelectionFlags(c *cobra.Command) {
	c.Flags().Int("min-decade", 0, "First decade of the decade view (default from config)")
	c.Flags().StringArray("conference", nil, "Conference for the conference view (repeatable, default the two largest)")
	c.Flags().String("authorship", string(explore.ByStudent), "Authorship comparison: student or contest")
}

// runChart handles the chart command.
func runChart(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	out, _ := cmd.Flags().GetString("out")
	if strings.TrimSpace(out) == "" {
		return errors.WithSuggestion(errors.ErrQuery, "no output file",
			"Pass --out with a .png or .svg file name.")
	}

	e, done, err := setup(cmd)
	defer done()
	if err != nil {
		return err
	}

	opts := e.cfg.ChartOptions()
	opts.Format = render.FormatForPath(out, opts.Format)
	if cmd.Flags().Changed("format") {
		name, _ := cmd.Flags().GetString("format")
		f, err := render.ParseFormat(name)
		if err != nil {
			return err
		}
		opts.Format = f
	}

	v, err := computeView(cmd, e, kind)
	if err != nil {
		return err
	}

	err = render.WriteFile(out, func(w io.Writer) error {
		switch {
		case v.trend != nil:
			return render.Decade(w, *v.trend, opts)
		case v.profile != nil:
			return render.Conference(w, *v.profile, opts)
		default:
			return render.Authorship(w, *v.authorship, opts)
		}
	})
	if err != nil {
		return err
	}

	logging.Info("chart written", "kind", kind, "path", out, "format", string(opts.Format))
	cmd.Printf("Wrote %s chart to %s\n", kind, out)
	return nil
}

// view holds exactly one computed explorer view.
type view struct {
	trend      *explore.DecadeTrend
	profile    *explore.ConferenceProfile
	authorship *explore.Authorship
}

// computeView runs the view named kind with the selection flags of cmd.
func computeView(cmd *cobra.Command, e *env, kind string) (view, error) {
	pipeline := explore.NewPipeline(e.ds, logging.Global())
	ctx := context.Background()

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case kindDecade:
		minDecade := e.cfg.Explore.MinDecade
		if cmd.Flags().Changed("min-decade") {
			minDecade, _ = cmd.Flags().GetInt("min-decade")
			if minDecade != explore.ClampDecade(minDecade) {
				return view{}, errors.InvalidQuery("min-decade",
					fmt.Sprintf("%d is not a decade from %d to %d", minDecade, explore.FirstDecade, explore.LastDecade), nil)
			}
		}
		t := pipeline.DecadeTrends(ctx, minDecade, e.cfg.SeriesTropes())
		return view{trend: &t}, nil

	case kindConference:
		selected, _ := cmd.Flags().GetStringArray("conference")
		if len(selected) == 0 {
			selected = nil
			if len(e.cfg.Explore.Conferences) > 0 {
				selected = e.cfg.Explore.Conferences
			}
		}
		p, err := pipeline.ConferenceProfiles(ctx, selected, dataset.RadarTropes)
		if err != nil {
			return view{}, err
		}
		return view{profile: &p}, nil

	case kindAuthorship:
		name, _ := cmd.Flags().GetString("authorship")
		k, err := explore.ParseAuthorshipKind(name)
		if err != nil {
			return view{}, err
		}
		a := pipeline.AuthorshipComparison(ctx, k)
		return view{authorship: &a}, nil
	}

	return view{}, errors.InvalidQuery("kind", fmt.Sprintf("unknown view %q", kind), viewKinds)
}

// write prints v through r.
func (v view) write(r *report.Reporter) error {
	switch {
	case v.trend != nil:
		return r.DecadeTrend(*v.trend)
	case v.profile != nil:
		return r.ConferenceProfile(*v.profile)
	default:
		return r.Authorship(*v.authorship)
	}
}
