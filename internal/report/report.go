// Package report writes explorer results for non-interactive use: a
// human-readable text table, or structured JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/version"
)

// Format defines the output format.
type Format string

const (
	// FormatText is the default human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces structured JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces structured YAML output.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", errors.InvalidQuery("output format", fmt.Sprintf("unknown format %q", s), names)
}

// Config configures a Reporter.
type Config struct {
	// Format is the output format.
	Format Format
	// Writer receives the output (defaults to stdout).
	Writer io.Writer
	// Locale selects number formatting for text output, e.g. "en-US".
	Locale string
}

// Reporter writes results in one format.
type Reporter struct {
	format  Format
	w       io.Writer
	printer *message.Printer
}

// New creates a reporter. An unparseable locale falls back to English.
func New(cfg Config) *Reporter {
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &Reporter{
		format:  cfg.Format,
		w:       cfg.Writer,
		printer: message.NewPrinter(parseLocale(cfg.Locale)),
	}
}

func parseLocale(locale string) language.Tag {
	if strings.TrimSpace(locale) == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// document is the envelope of structured output.
type document struct {
	Kind string `json:"kind" yaml:"kind"`
	Data any    `json:"data" yaml:"data"`
}

// write emits v in the structured formats, or calls text for FormatText.
func (r *Reporter) write(kind string, v any, text func() string) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(document{Kind: kind, Data: v}); err != nil {
			return errors.RenderFailed(kind+" as JSON", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(r.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(document{Kind: kind, Data: v}); err != nil {
			return errors.RenderFailed(kind+" as YAML", err)
		}
		if err := encoder.Close(); err != nil {
			return errors.RenderFailed(kind+" as YAML", err)
		}
		return nil
	default:
		if _, err := io.WriteString(r.w, text()); err != nil {
			return errors.RenderFailed(kind, err)
		}
		return nil
	}
}

// Version writes build information.
func (r *Reporter) Version(info *version.Info) error {
	return r.write("version", info, func() string {
		return info.FullString() + "\n"
	})
}

// percent formats a share in [0,1] as a percentage.
func (r *Reporter) percent(v float64) string {
	return r.printer.Sprintf("%.1f%%", v*100)
}

func (r *Reporter) number(v float64) string {
	return r.printer.Sprintf("%.2f", v)
}

func (r *Reporter) count(n int) string {
	return r.printer.Sprintf("%d", n)
}
