package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/tui"
)

// exploreCmd represents the explore command.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Open the interactive explorer",
	Long: `Open the interactive explorer.

The explorer has four tabs: an overview of the dataset, trope trends by
decade, trope profiles of the largest conferences, and a comparison of
student-written and contest-selected songs. Press ? inside for keys.

Examples:
  fightsongs explore
  fightsongs explore --data ./fight-songs.csv`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// runExplore starts the TUI. It is also the root command's action.
func runExplore(cmd *cobra.Command, args []string) error {
	e, done, err := setup(cmd)
	defer done()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var conferences []string
	if len(e.cfg.Explore.Conferences) > 0 {
		conferences = e.cfg.Explore.Conferences
	}

	return tui.Run(ctx, tui.Options{
		Dataset:     e.ds,
		MinDecade:   e.cfg.Explore.MinDecade,
		Series:      e.cfg.SeriesTropes(),
		Conferences: conferences,
	})
}
