package errors

import (
	"fmt"
	"strings"
)

// DocLinkConfig points at the configuration section of the README.
const DocLinkConfig = "https://github.com/dbmrq/fightsongs#configuration"

// ConfigNotFound creates an error for missing configuration.
func ConfigNotFound(configPath string) *AppError {
	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a default configuration:
    fightsongs init

  Or point at an existing file:
    fightsongs --config path/to/config.yaml`,
		DocLink: DocLinkConfig,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *AppError {
	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Lists need a '- ' prefix`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *AppError {
	suggestion := fmt.Sprintf("Fix the %q field in .fightsongs/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
