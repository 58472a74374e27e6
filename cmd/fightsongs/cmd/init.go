package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/config"
	"github.com/dbmrq/fightsongs/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file.

This command creates .fightsongs/config.yaml (or the file named by
--config) with every setting at its default value.

Use --force to overwrite an existing file.

Examples:
  fightsongs init          # Create .fightsongs/config.yaml
  fightsongs init --force  # Overwrite it with the defaults`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addInitFlags(initCmd)
}

// addInitFlags registers the init command's flags.
func addInitFlags(c *cobra.Command) {
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithSuggestion(errors.ErrConfig,
			"configuration already exists",
			"Edit the file, or run 'fightsongs init --force' to reset it to the defaults.").
			WithDetails("path", path)
	}

	cfg := config.NewConfig()
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Dataset.Path = data
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("")
	cmd.Println("Set dataset.path to your copy of fight-songs.csv, then run")
	cmd.Println("'fightsongs' to start exploring.")
	return nil
}
