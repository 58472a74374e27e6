// Package cmd provides the CLI commands for fightsongs.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fightsongs",
	Short: "Explore the tropes of college fight songs",
	Long: `fightsongs explores a dataset of college fight songs: how often they
mention fighting, winning or colors, when they were written, and how
conferences and songwriters differ.

With no subcommand it opens the interactive explorer (same as
"fightsongs explore"). The query and chart commands answer one question
and exit.`,
	RunE:          runExplore,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addGlobalFlags(rootCmd)
}

// addGlobalFlags registers the flags every command inherits.
func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Config file (default "+defaultConfigHint+")")
	c.PersistentFlags().String("data", "", "Fight songs CSV file (overrides dataset.path)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("fightsongs {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError writes err to stderr, with suggestions when it is an AppError.
func printError(err error) {
	if appErr, ok := errors.As(err); ok {
		fmt.Fprint(os.Stderr, appErr.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
