// Package config provides configuration loading and management for fightsongs.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/logging"
	"github.com/dbmrq/fightsongs/internal/render"
	"github.com/dbmrq/fightsongs/internal/report"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".fightsongs/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "FIGHTSONGS"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
// Errors are *errors.AppError values of kind errors.ErrConfig.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(path)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, errors.ConfigParseError(path, err)
	}

	// Start with defaults. Lists are cleared so a shorter list in the file
	// replaces the default instead of overwriting its head.
	cfg := NewConfig()
	cfg.Explore.Series = nil
	cfg.Explore.Conferences = nil

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, errors.ConfigParseError(path, err)
	}

	return l.finish(cfg, path)
}

// LoadOrDefault is LoadConfig, except that a missing file yields the
// defaults with environment overrides applied.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(NewConfig(), "")
	}
	return l.LoadConfig(path)
}

func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		var verrs ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			appErr := errors.ConfigValidationError(verrs[0].Field, fmt.Sprintf("%d invalid field(s)", len(verrs)), nil)
			if path != "" {
				appErr.WithDetails("path", path)
			}
			return nil, appErr.WithCause(err)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFromDir loads configuration from .fightsongs/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	return l.LoadConfig(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Unparseable values are ignored.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	env := func(key string) string {
		return os.Getenv(EnvPrefix + "_" + key)
	}

	if v := env("DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}

	if v := env("EXPLORE_MIN_DECADE"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			cfg.Explore.MinDecade = d
		}
	}
	if v := env("EXPLORE_SERIES"); v != "" {
		cfg.Explore.Series = splitList(v)
	}
	if v := env("EXPLORE_CONFERENCES"); v != "" {
		cfg.Explore.Conferences = splitList(v)
	}

	if v := env("OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = report.Format(strings.ToLower(v))
	}
	if v := env("OUTPUT_LOCALE"); v != "" {
		cfg.Output.Locale = v
	}

	if v := env("CHART_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.Width = n
		}
	}
	if v := env("CHART_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.Height = n
		}
	}
	if v := env("CHART_FORMAT"); v != "" {
		cfg.Chart.Format = render.Format(strings.ToLower(v))
	}

	if v := env("LOG_LEVEL"); v != "" {
		if lvl, err := logging.ParseLevel(v); err == nil {
			cfg.Log.Level = lvl
		}
	}
	if v := env("LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := env("LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook matches fields by their yaml tags and composes the
// standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToCustomTypeHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
// Format names are case-insensitive in the file.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(report.Format("")):
			return report.Format(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		case reflect.TypeOf(render.Format("")):
			return render.Format(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		}

		return data, nil
	}
}

// configHeader starts every file written by Save.
const configHeader = `# fightsongs configuration.
# Every key can be overridden with a FIGHTSONGS_<SECTION>_<KEY> variable,
# for example FIGHTSONGS_DATASET_PATH or FIGHTSONGS_LOG_LEVEL.

`

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, it uses DefaultConfigPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to encode configuration")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to encode configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to create config directory").
			WithDetails("path", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to write configuration").
			WithDetails("path", path)
	}
	return nil
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}
