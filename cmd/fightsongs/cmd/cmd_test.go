package cmd

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dbmrq/fightsongs/internal/config"
	"github.com/dbmrq/fightsongs/internal/errors"
)

const fixture = "../../../internal/dataset/testdata/fight-songs.csv"

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "fightsongs",
		Short:         "Explore the tropes of college fight songs",
		Long:          "fightsongs explores a dataset of college fight songs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = "test"
	root.SetVersionTemplate("fightsongs {{.Version}}\n")
	addGlobalFlags(root)

	query := &cobra.Command{Use: "query", Args: cobra.NoArgs, RunE: runQuery}
	addQueryFlags(query)
	root.AddCommand(query)

	chart := &cobra.Command{Use: "chart", Args: cobra.NoArgs, RunE: runChart}
	addChartFlags(chart)
	root.AddCommand(chart)

	view := &cobra.Command{Use: "view", Args: cobra.ExactArgs(1), RunE: runView}
	addViewFlags(view)
	root.AddCommand(view)

	initC := &cobra.Command{Use: "init", Args: cobra.NoArgs, RunE: runInit}
	addInitFlags(initC)
	root.AddCommand(initC)

	versionC := &cobra.Command{Use: "version", Args: cobra.NoArgs, RunE: runVersion}
	addVersionFlags(versionC)
	root.AddCommand(versionC)

	return root
}

// execute runs args against a fresh command tree with logs in a temp dir.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FIGHTSONGS_LOG_DIR", t.TempDir())

	buf := new(bytes.Buffer)
	cmd := newTestRoot()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantOutput: "Available Commands:",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantOutput: "fightsongs test",
		},
		{
			name:       "persistent flags listed",
			args:       []string{"query", "--help"},
			wantOutput: "--data",
		},
		{
			name:    "unknown command",
			args:    []string{"unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantOutput != "" && !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}

func TestRootRegistersCommands(t *testing.T) {
	want := map[string]bool{"explore": false, "query": false, "chart": false, "view": false, "init": false, "version": false}
	for _, c := range Root().Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}

func TestQueryCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput []string
	}{
		{
			name:       "group by conference",
			args:       []string{"query"},
			wantOutput: []string{"all songs", "14 of 14 songs", "Big Ten", "SEC"},
		},
		{
			name:       "conference and trope",
			args:       []string{"query", "--conference", "Big Ten", "--group-by", "trope:victory_win_won"},
			wantOutput: []string{"conference Big Ten", "5 of 14 songs", "Yes", "No"},
		},
		{
			name:       "by decade",
			args:       []string{"query", "--group-by", "decade"},
			wantOutput: []string{"1900s", "1920s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--data", fixture)...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out, want) {
					t.Errorf("Output = %q, want to contain %q", out, want)
				}
			}
		})
	}
}

func TestQueryCommandJSON(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		matched int
	}{
		{"fight songs", []string{"--trope", "fight=true"}, 9},
		{"bare trope means true", []string{"--trope", "fight"}, 9},
		{"student writers", []string{"--student-writer"}, 6},
		{"fight and student", []string{"--trope", "fight=true", "--student-writer"}, 3},
		{"repeated trope agrees", []string{"--trope", "fight=true", "--trope", "fight"}, 9},
		{"not by students", []string{"--student-writer=false"}, 6},
		{"school", []string{"--school", "ohio"}, 1},
		{"decade range", []string{"--decade-min", "1920", "--decade-max", "1920"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"query", "--data", fixture, "--output", "json"}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			var doc struct {
				Kind string `json:"kind"`
				Data struct {
					Matched int `json:"matched"`
					Total   int `json:"total"`
				} `json:"data"`
			}
			if err := json.Unmarshal([]byte(out), &doc); err != nil {
				t.Fatalf("invalid JSON %q: %v", out, err)
			}
			if doc.Kind != "query" {
				t.Errorf("kind = %q, want query", doc.Kind)
			}
			if doc.Data.Matched != tt.matched || doc.Data.Total != 14 {
				t.Errorf("matched = %d of %d, want %d of 14", doc.Data.Matched, doc.Data.Total, tt.matched)
			}
		})
	}
}

func TestQueryCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"inverted decades", []string{"--decade-min", "1950", "--decade-max", "1920"}, errors.ErrQuery},
		{"unknown dimension", []string{"--group-by", "mascot"}, errors.ErrQuery},
		{"unknown metric", []string{"--metric", "median"}, errors.ErrQuery},
		{"mean without attribute", []string{"--metric", "mean"}, errors.ErrQuery},
		{"unknown trope", []string{"--trope", "mascot=true"}, errors.ErrQuery},
		{"bad trope value", []string{"--trope", "fight=maybe"}, errors.ErrQuery},
		{"conflicting trope values", []string{"--trope", "fight=true", "--trope", "Fight=false"}, errors.ErrQuery},
		{"missing dataset", []string{"--data", filepath.Join("testdata", "missing.csv")}, errors.ErrDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"query", "--data", fixture}, tt.args...)
			_, err := execute(t, args...)
			if err == nil {
				t.Fatal("Execute() should fail")
			}
			if !stderrors.Is(err, tt.kind) {
				t.Errorf("error = %v, want kind %v", err, tt.kind)
			}
			if _, ok := errors.As(err); !ok {
				t.Errorf("error %T is not an AppError", err)
			}
		})
	}
}

func TestViewCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput []string
	}{
		{
			name:       "decade",
			args:       []string{"view", "decade", "--min-decade", "1920"},
			wantOutput: []string{"from the 1920s", "1920s"},
		},
		{
			name:       "conference defaults",
			args:       []string{"view", "conference"},
			wantOutput: []string{"Trope share by conference", "Big Ten", "Big 12"},
		},
		{
			name:       "authorship",
			args:       []string{"view", "authorship", "--authorship", "contest"},
			wantOutput: []string{"Trope Usage by Contest Selection"},
		},
		{
			name:       "yaml",
			args:       []string{"view", "authorship", "--output", "yaml"},
			wantOutput: []string{"kind: authorship"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--data", fixture)...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out, want) {
					t.Errorf("Output = %q, want to contain %q", out, want)
				}
			}
		})
	}
}

func TestViewCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"view", "mascots"}},
		{"bad decade", []string{"view", "decade", "--min-decade", "1925"}},
		{"bad authorship", []string{"view", "authorship", "--authorship", "band"}},
		{"no kind", []string{"view"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, append(tt.args, "--data", fixture)...); err == nil {
				t.Error("Execute() should fail")
			}
		})
	}
}

func TestChartCommand(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		file  string
		extra []string
	}{
		{"decade png", "decade", "decades.png", nil},
		{"single decade", "decade", "fifties.png", []string{"--min-decade", "1950"}},
		{"conference svg", "conference", "conferences.svg", nil},
		{"authorship png", "authorship", "authorship.png", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.file)
			args := append([]string{"chart", "--data", fixture, "--kind", tt.kind, "--out", out}, tt.extra...)
			stdout, err := execute(t, args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("chart file missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("chart file is empty")
			}
			if !strings.Contains(stdout, "Wrote "+tt.kind+" chart") {
				t.Errorf("Output = %q", stdout)
			}
		})
	}
}

func TestChartCommandErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing out", []string{"chart"}},
		{"unknown kind", []string{"chart", "--kind", "mascots", "--out", filepath.Join(dir, "x.png")}},
		{"bad format", []string{"chart", "--format", "gif", "--out", filepath.Join(dir, "x.gif")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, append(tt.args, "--data", fixture)...); err == nil {
				t.Error("Execute() should fail")
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "x.png")); !os.IsNotExist(err) {
		t.Error("a failed chart should not leave a file behind")
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fightsongs", "config.yaml")

	out, err := execute(t, "init", "--config", path, "--data", "songs.csv")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out, "Created "+path) {
		t.Errorf("Output = %q", out)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.Dataset.Path != "songs.csv" {
		t.Errorf("Dataset.Path = %q, want songs.csv", cfg.Dataset.Path)
	}

	_, err = execute(t, "init", "--config", path)
	if !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("second init error = %v, want a config error", err)
	}

	if _, err := execute(t, "init", "--config", path, "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.Dataset.Path != config.DefaultDatasetPath {
		t.Errorf("Dataset.Path = %q after --force, want %q", cfg.Dataset.Path, config.DefaultDatasetPath)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.NewConfig()
	cfg.Dataset.Path = fixture
	cfg.Output.Format = "yaml"
	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := execute(t, "query", "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "kind: query") {
		t.Errorf("Output = %q, want YAML from the config's output format", out)
	}

	_, err = execute(t, "query", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("missing --config error = %v, want a config error", err)
	}
}

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput string
		wantErr    bool
	}{
		{"text", []string{"version"}, "fightsongs dev", false},
		{"json", []string{"version", "--output", "json"}, `"kind": "version"`, false},
		{"yaml", []string{"version", "-o", "yaml"}, "go_version:", false},
		{"bad format", []string{"version", "-o", "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}
