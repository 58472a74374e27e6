package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/report"
	"github.com/dbmrq/fightsongs/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for fightsongs.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  fightsongs version              # Show detailed version info
  fightsongs version --output json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addVersionFlags(versionCmd)
}

// addVersionFlags registers the version command's flags.
func addVersionFlags(c *cobra.Command) {
	c.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("output")
	format, err := report.ParseFormat(name)
	if err != nil {
		return err
	}

	info := version.NewInfo(Version, Commit, Date)
	return report.New(report.Config{Format: format, Writer: cmd.OutOrStdout()}).Version(info)
}
