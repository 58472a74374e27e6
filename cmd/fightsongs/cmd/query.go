package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/config"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/explore"
	"github.com/dbmrq/fightsongs/internal/filter"
	"github.com/dbmrq/fightsongs/internal/logging"
	"github.com/dbmrq/fightsongs/internal/report"
)

// queryCmd represents the query command.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter the songs and summarize the result",
	Long: `Filter the songs and summarize the matching subset.

Filters combine with AND. Repeated --conference values combine with OR.
Songs with an unknown value never match a filter on that value.

Group by one of: decade, conference, student_writer, contest,
official_song or trope:<name>. The metric is count, proportion (of all
songs) or mean (of --attribute).

Examples:
  fightsongs query --group-by decade
  fightsongs query --conference "Big Ten" --group-by trope:victory --metric proportion
  fightsongs query --decade-min 1900 --decade-max 1930 --metric mean --attribute bpm
  fightsongs query --trope fight=true --student-writer --output json`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	addQueryFlags(queryCmd)
}

// addQueryFlags registers the query command's flags.
func addQueryFlags(c *cobra.Command) {
	c.Flags().Int("decade-min", 0, "Earliest decade to include (e.g. 1900)")
	c.Flags().Int("decade-max", 0, "Latest decade to include (e.g. 1950)")
	c.Flags().StringArray("conference", nil, "Conference to include (repeatable)")
	c.Flags().StringArray("trope", nil, "Trope constraint as name=true|false (repeatable)")
	c.Flags().Bool("student-writer", false, "Only songs written (or with =false, not written) by students")
	c.Flags().Bool("contest", false, "Only songs chosen (or with =false, not chosen) in a contest")
	c.Flags().Bool("official", false, "Only official (or with =false, unofficial) songs")
	c.Flags().String("school", "", "Case-insensitive part of the school name")
	c.Flags().String("group-by", "conference", "Dimension to group by")
	c.Flags().String("metric", "count", "Metric: count, proportion or mean")
	c.Flags().String("attribute", "", "Numeric attribute for the mean metric")
	c.Flags().StringP("output", "o", "", "Output format: text, json or yaml (default from config)")
}

// runQuery handles the query command.
func runQuery(cmd *cobra.Command, args []string) error {
	spec, err := specFromFlags(cmd)
	if err != nil {
		return err
	}

	groupBy, _ := cmd.Flags().GetString("group-by")
	metric, _ := cmd.Flags().GetString("metric")
	attribute, _ := cmd.Flags().GetString("attribute")
	req, err := aggregate.ParseRequest(groupBy, metric, attribute)
	if err != nil {
		return err
	}

	e, done, err := setup(cmd)
	defer done()
	if err != nil {
		return err
	}

	reporter, err := newReporter(cmd, e.cfg)
	if err != nil {
		return err
	}

	it, err := explore.NewPipeline(e.ds, logging.Global()).Run(context.Background(), spec, req)
	if err != nil {
		return err
	}
	return reporter.Interaction(it)
}

// newReporter builds a reporter writing to the command's output, taking
// the format from --output or the config.
func newReporter(cmd *cobra.Command, cfg *config.Config) (*report.Reporter, error) {
	format := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		name, _ := cmd.Flags().GetString("output")
		f, err := report.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		format = f
	}
	return report.New(report.Config{
		Format: format,
		Writer: cmd.OutOrStdout(),
		Locale: cfg.Output.Locale,
	}), nil
}

// specFromFlags builds a filter from the query flags. Only flags the user
// set constrain the result.
func specFromFlags(cmd *cobra.Command) (filter.Spec, error) {
	var spec filter.Spec
	flags := cmd.Flags()

	if flags.Changed("decade-min") {
		d, _ := flags.GetInt("decade-min")
		spec.MinDecade = filter.Ptr(d)
	}
	if flags.Changed("decade-max") {
		d, _ := flags.GetInt("decade-max")
		spec.MaxDecade = filter.Ptr(d)
	}

	spec.Conferences, _ = flags.GetStringArray("conference")

	tropes, _ := flags.GetStringArray("trope")
	for _, raw := range tropes {
		t, want, err := parseTropeConstraint(raw)
		if err != nil {
			return filter.Spec{}, err
		}
		if spec.Tropes == nil {
			spec.Tropes = make(map[dataset.Trope]bool)
		}
		if prev, seen := spec.Tropes[t]; seen && prev != want {
			return filter.Spec{}, errors.InvalidQuery("trope",
				fmt.Sprintf("%s is required to be both %t and %t", t.Key(), prev, want), nil)
		}
		spec.Tropes[t] = want
	}

	for name, field := range map[string]**bool{
		"student-writer": &spec.StudentWriter,
		"contest":        &spec.Contest,
		"official":       &spec.OfficialSong,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetBool(name)
			*field = filter.Ptr(v)
		}
	}

	spec.School, _ = flags.GetString("school")

	if err := spec.Validate(); err != nil {
		return filter.Spec{}, err
	}
	return spec, nil
}

// parseTropeConstraint parses "name=true|false". A bare name means true.
func parseTropeConstraint(raw string) (dataset.Trope, bool, error) {
	name, value, hasValue := strings.Cut(raw, "=")
	t, ok := dataset.ParseTrope(name)
	if !ok {
		return 0, false, errors.InvalidQuery("trope", fmt.Sprintf("unknown trope %q", name), dataset.TropeKeys())
	}
	if !hasValue {
		return t, true, nil
	}
	want, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return 0, false, errors.InvalidQuery("trope", fmt.Sprintf("%s: %q is not true or false", name, value), nil)
	}
	return t, want, nil
}
