package errors

import (
	"fmt"
	"strings"
)

// InvalidQuery creates an error for a filter or aggregation request that
// cannot be interpreted (unknown dimension, inverted range, bad flag value).
func InvalidQuery(field, message string, validOptions []string) *AppError {
	err := &AppError{
		Kind:    ErrQuery,
		Message: fmt.Sprintf("invalid %s: %s", field, message),
		Details: map[string]string{
			"field": field,
		},
	}
	if len(validOptions) > 0 {
		err.Suggestion = fmt.Sprintf("Valid options: %s", strings.Join(validOptions, ", "))
	}
	return err
}

// RenderFailed creates an error when a chart or report cannot be written.
func RenderFailed(target string, cause error) *AppError {
	return &AppError{
		Kind:    ErrRender,
		Message: fmt.Sprintf("failed to render %s", target),
		Cause:   cause,
		Details: map[string]string{
			"target": target,
		},
		Suggestion: "Check that the output directory exists and is writable.",
	}
}
