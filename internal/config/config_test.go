package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/logging"
	"github.com/dbmrq/fightsongs/internal/render"
	"github.com/dbmrq/fightsongs/internal/report"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Dataset.Path != DefaultDatasetPath {
		t.Errorf("expected dataset.path %q, got %q", DefaultDatasetPath, cfg.Dataset.Path)
	}
	if cfg.Explore.MinDecade != 1890 {
		t.Errorf("expected explore.min_decade 1890, got %d", cfg.Explore.MinDecade)
	}
	if len(cfg.Explore.Series) != len(dataset.DecadeSeries) {
		t.Errorf("expected %d default series, got %v", len(dataset.DecadeSeries), cfg.Explore.Series)
	}
	if cfg.Explore.Conferences == nil {
		t.Error("expected Conferences to be initialized, got nil")
	}
	if cfg.Output.Format != report.FormatText {
		t.Errorf("expected output.format text, got %q", cfg.Output.Format)
	}
	if cfg.Output.Locale != DefaultLocale {
		t.Errorf("expected output.locale %q, got %q", DefaultLocale, cfg.Output.Locale)
	}
	if cfg.Chart.Width != 1200 || cfg.Chart.Height != 480 || cfg.Chart.Format != render.PNG {
		t.Errorf("unexpected chart defaults: %+v", cfg.Chart)
	}
	if cfg.Log.Level != logging.LevelInfo {
		t.Errorf("expected log.level info, got %v", cfg.Log.Level)
	}
	if cfg.Log.Dir != DefaultLogDir {
		t.Errorf("expected log.dir %q, got %q", DefaultLogDir, cfg.Log.Dir)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.ApplyDefaults()

	if cfg.Dataset.Path != DefaultDatasetPath {
		t.Errorf("expected dataset.path %q, got %q", DefaultDatasetPath, cfg.Dataset.Path)
	}
	if cfg.Explore.MinDecade != 1890 {
		t.Errorf("expected explore.min_decade 1890, got %d", cfg.Explore.MinDecade)
	}
	if cfg.Explore.Series == nil || cfg.Explore.Conferences == nil {
		t.Error("expected explore lists to be initialized")
	}
	if cfg.Output.Format != report.FormatText {
		t.Errorf("expected output.format text, got %q", cfg.Output.Format)
	}
	if cfg.Chart.Width == 0 || cfg.Chart.Height == 0 || cfg.Chart.Format == "" {
		t.Errorf("expected chart defaults, got %+v", cfg.Chart)
	}
	if cfg.Log.Dir != DefaultLogDir {
		t.Errorf("expected log.dir %q, got %q", DefaultLogDir, cfg.Log.Dir)
	}
}

func TestConfig_ApplyDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{
		Dataset: DatasetConfig{Path: "data/songs.csv"},
		Explore: ExploreConfig{MinDecade: 1920, Series: []string{}},
		Output:  OutputConfig{Format: report.FormatJSON, Locale: "de-DE"},
		Chart:   ChartConfig{Width: 640, Format: render.SVG},
	}

	cfg.ApplyDefaults()

	if cfg.Dataset.Path != "data/songs.csv" {
		t.Errorf("expected dataset.path to be preserved, got %q", cfg.Dataset.Path)
	}
	if cfg.Explore.MinDecade != 1920 {
		t.Errorf("expected min_decade to be preserved, got %d", cfg.Explore.MinDecade)
	}
	if len(cfg.Explore.Series) != 0 {
		t.Errorf("expected an explicitly empty series list to be preserved, got %v", cfg.Explore.Series)
	}
	if cfg.Output.Format != report.FormatJSON || cfg.Output.Locale != "de-DE" {
		t.Errorf("expected output to be preserved, got %+v", cfg.Output)
	}
	if cfg.Chart.Width != 640 || cfg.Chart.Height != 480 || cfg.Chart.Format != render.SVG {
		t.Errorf("expected width and format preserved and height defaulted, got %+v", cfg.Chart)
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := NewConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config to pass validation, got error: %v", err)
	}
}

func TestConfig_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"empty dataset path", func(c *Config) { c.Dataset.Path = " " }, "dataset.path"},
		{"decade too early", func(c *Config) { c.Explore.MinDecade = 1880 }, "explore.min_decade"},
		{"decade too late", func(c *Config) { c.Explore.MinDecade = 1970 }, "explore.min_decade"},
		{"not a decade", func(c *Config) { c.Explore.MinDecade = 1925 }, "explore.min_decade"},
		{"unknown series", func(c *Config) { c.Explore.Series = []string{"fight", "kazoo"} }, "explore.series[1]"},
		{"output format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"negative width", func(c *Config) { c.Chart.Width = -1 }, "chart.width"},
		{"negative height", func(c *Config) { c.Chart.Height = -1 }, "chart.height"},
		{"chart format", func(c *Config) { c.Chart.Format = "gif" }, "chart.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, errs[0].Field)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Explore.MinDecade = 1
	cfg.Chart.Format = "bmp"

	err := cfg.Validate()
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.HasPrefix(err.Error(), "multiple validation errors:") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("expected empty message, got %q", got)
	}

	single := ValidationErrors{{Field: "chart.width", Message: "must be non-negative"}}
	if got := single.Error(); got != "chart.width: must be non-negative" {
		t.Errorf("unexpected single message: %q", got)
	}
}

func TestConfig_SeriesTropes(t *testing.T) {
	cfg := NewConfig()
	cfg.Explore.Series = []string{"men", "nope", "Fight"}

	got := cfg.SeriesTropes()
	want := []dataset.Trope{dataset.Men, dataset.Fight}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SeriesTropes() = %v, want %v", got, want)
	}
}

func TestConfig_Conversions(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = logging.LevelWarn
	cfg.Log.JSON = true
	cfg.Chart.Format = render.SVG

	lc := cfg.LoggingConfig()
	if lc.Level != logging.LevelWarn || !lc.JSONFormat || lc.LogDir != DefaultLogDir {
		t.Errorf("LoggingConfig() = %+v", lc)
	}
	if lc.Console {
		t.Error("LoggingConfig() should never log to the console")
	}

	opts := cfg.ChartOptions()
	if opts.Width != 1200 || opts.Height != 480 || opts.Format != render.SVG {
		t.Errorf("ChartOptions() = %+v", opts)
	}
}
