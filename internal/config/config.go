// Package config provides configuration data structures for fightsongs.
package config

import (
	"fmt"
	"strings"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/explore"
	"github.com/dbmrq/fightsongs/internal/logging"
	"github.com/dbmrq/fightsongs/internal/render"
	"github.com/dbmrq/fightsongs/internal/report"
)

// Config represents the complete fightsongs configuration loaded from
// .fightsongs/config.yaml.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" json:"dataset"`
	Explore ExploreConfig `yaml:"explore" json:"explore"`
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Chart   ChartConfig   `yaml:"chart"   json:"chart"`
	Log     LogConfig     `yaml:"log"     json:"log"`
}

// DatasetConfig locates the fight songs file.
type DatasetConfig struct {
	// Path is the CSV file in the FiveThirtyEight layout.
	Path string `yaml:"path" json:"path"`
}

// ExploreConfig sets the initial state of the interactive views.
type ExploreConfig struct {
	// MinDecade is the first decade shown by the decade view (default: 1890).
	MinDecade int `yaml:"min_decade" json:"min_decade"`
	// Series are the trope keys drawn by the decade view.
	Series []string `yaml:"series" json:"series"`
	// Conferences are the conferences selected when the conference view
	// opens. Empty means the two largest.
	Conferences []string `yaml:"conferences" json:"conferences"`
}

// OutputConfig configures non-interactive query output.
type OutputConfig struct {
	// Format is text, json or yaml (default: text).
	Format report.Format `yaml:"format" json:"format"`
	// Locale is a BCP 47 tag for number formatting (default: en-US).
	Locale string `yaml:"locale" json:"locale"`
}

// ChartConfig configures image export.
type ChartConfig struct {
	Width  int           `yaml:"width"  json:"width"`
	Height int           `yaml:"height" json:"height"`
	Format render.Format `yaml:"format" json:"format"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level logging.Level `yaml:"level" json:"level"`
	Dir   string        `yaml:"dir"   json:"dir"`
	JSON  bool          `yaml:"json"  json:"json"`
}

// Default values.
const (
	DefaultDatasetPath = "fight-songs.csv"
	DefaultLocale      = "en-US"
	DefaultLogDir      = ".fightsongs/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	chart := render.DefaultOptions()
	return &Config{
		Dataset: DatasetConfig{
			Path: DefaultDatasetPath,
		},
		Explore: ExploreConfig{
			MinDecade:   explore.FirstDecade,
			Series:      tropeKeys(dataset.DecadeSeries),
			Conferences: []string{},
		},
		Output: OutputConfig{
			Format: report.FormatText,
			Locale: DefaultLocale,
		},
		Chart: ChartConfig{
			Width:  chart.Width,
			Height: chart.Height,
			Format: chart.Format,
		},
		Log: LogConfig{
			Level: logging.LevelInfo,
			Dir:   DefaultLogDir,
		},
	}
}

func tropeKeys(tropes []dataset.Trope) []string {
	keys := make([]string, len(tropes))
	for i, t := range tropes {
		keys[i] = t.Key()
	}
	return keys
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Dataset.Path == "" {
		c.Dataset.Path = defaults.Dataset.Path
	}

	if c.Explore.MinDecade == 0 {
		c.Explore.MinDecade = defaults.Explore.MinDecade
	}
	if c.Explore.Series == nil {
		c.Explore.Series = defaults.Explore.Series
	}
	if c.Explore.Conferences == nil {
		c.Explore.Conferences = []string{}
	}

	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.Locale == "" {
		c.Output.Locale = defaults.Output.Locale
	}

	if c.Chart.Width == 0 {
		c.Chart.Width = defaults.Chart.Width
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = defaults.Chart.Height
	}
	if c.Chart.Format == "" {
		c.Chart.Format = defaults.Chart.Format
	}

	// Level's zero value is debug, so an unset level cannot be told apart;
	// the loader starts from NewConfig instead.
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
}

// SeriesTropes resolves Explore.Series, skipping unknown keys.
func (c *Config) SeriesTropes() []dataset.Trope {
	out := make([]dataset.Trope, 0, len(c.Explore.Series))
	for _, key := range c.Explore.Series {
		if t, ok := dataset.ParseTrope(key); ok {
			out = append(out, t)
		}
	}
	return out
}

// LoggingConfig converts the log section for logging.New.
func (c *Config) LoggingConfig() *logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Log.Level
	lc.LogDir = c.Log.Dir
	lc.JSONFormat = c.Log.JSON
	return lc
}

// ChartOptions converts the chart section for the render package.
func (c *Config) ChartOptions() render.Options {
	return render.Options{Width: c.Chart.Width, Height: c.Chart.Height, Format: c.Chart.Format}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Dataset.Path) == "" {
		errs = append(errs, &ValidationError{Field: "dataset.path", Message: "must not be empty"})
	}

	// Validate explore defaults
	if d := c.Explore.MinDecade; d < explore.FirstDecade || d > explore.LastDecade || d%explore.DecadeStep != 0 {
		msg := fmt.Sprintf("must be a decade from %d to %d", explore.FirstDecade, explore.LastDecade)
		errs = append(errs, &ValidationError{Field: "explore.min_decade", Message: msg})
	}
	for i, key := range c.Explore.Series {
		if _, ok := dataset.ParseTrope(key); !ok {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("explore.series[%d]", i),
				Message: fmt.Sprintf("unknown trope %q (valid: %s)", key, strings.Join(dataset.TropeKeys(), ", ")),
			})
		}
	}

	// Validate output
	if c.Output.Format != "" {
		if _, err := report.ParseFormat(string(c.Output.Format)); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "output.format",
				Message: "must be 'text', 'json', or 'yaml'",
			})
		}
	}

	// Validate chart
	if c.Chart.Width < 0 {
		errs = append(errs, &ValidationError{Field: "chart.width", Message: "must be non-negative"})
	}
	if c.Chart.Height < 0 {
		errs = append(errs, &ValidationError{Field: "chart.height", Message: "must be non-negative"})
	}
	if c.Chart.Format != "" {
		if _, err := render.ParseFormat(string(c.Chart.Format)); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "chart.format",
				Message: "must be 'png' or 'svg'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
