package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = &cobra.Command{
	Use:   "view <" + strings.Join(viewKinds, "|") + ">",
	Short: "Print the data behind an explorer chart",
	Long: `Print the data behind one of the explorer's charts as a table, or as
JSON or YAML with --output.

Examples:
  fightsongs view decade --min-decade 1920
  fightsongs view conference --conference SEC --conference ACC
  fightsongs view authorship --authorship contest --output yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: viewKinds,
	RunE:      runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addViewFlags(viewCmd)
}

// addViewFlags registers the view command's flags.
func addViewFlags(c *cobra.Command) {
	addViewSelectionFlags(c)
	c.Flags().StringP("output", "o", "", "Output format: text, json or yaml (default from config)")
}

// runView handles the view command.
func runView(cmd *cobra.Command, args []string) error {
	e, done, err := setup(cmd)
	defer done()
	if err != nil {
		return err
	}

	reporter, err := newReporter(cmd, e.cfg)
	if err != nil {
		return err
	}

	v, err := computeView(cmd, e, args[0])
	if err != nil {
		return err
	}
	return v.write(reporter)
}
