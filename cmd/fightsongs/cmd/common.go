package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/config"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/logging"
)

const defaultConfigHint = config.DefaultConfigPath

// env is what every data command needs: the settings and the loaded dataset.
type env struct {
	cfg *config.Config
	ds  *dataset.Dataset
}

// loadSettings reads the config file. An explicit --config must exist;
// otherwise a missing default file yields the defaults. --data overrides
// the dataset path.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault("")
	}
	if err != nil {
		return nil, err
	}

	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Dataset.Path = data
	}
	return cfg, nil
}

// setup loads settings, starts the global logger and loads the dataset.
// The returned function closes the logger and must be called when the
// command finishes.
func setup(cmd *cobra.Command) (*env, func(), error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, func() {}, err
	}

	logConfig := cfg.LoggingConfig()
	logConfig.Console = false // Don't mix console output with TUI or reports
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logConfig.Level = logging.LevelDebug
	}

	done := func() {}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Logging is best effort; commands still run without a log file.
		cmd.PrintErrf("Warning: logging disabled: %v\n", err)
	} else {
		done = func() { _ = logging.CloseGlobal() }
	}

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		logging.Error("dataset load failed", "path", cfg.Dataset.Path, "error", err)
		return nil, done, err
	}
	logging.Debug("dataset loaded", "path", ds.Source(), "songs", ds.Len())

	return &env{cfg: cfg, ds: ds}, done, nil
}
