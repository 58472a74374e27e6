// Package errors provides error types with actionable suggestions for
// fightsongs. Errors carry enough context for an operator to fix a bad
// dataset, configuration or query without reading the source.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrDataset indicates the dataset could not be loaded.
	ErrDataset = errors.New("dataset error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrQuery indicates an invalid filter or aggregation request.
	ErrQuery = errors.New("query error")
	// ErrRender indicates a chart or report could not be produced.
	ErrRender = errors.New("render error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// AppError is the base error type for fightsongs errors.
// It wraps an underlying error and provides additional context.
type AppError struct {
	// Kind is the category of error (e.g., ErrDataset, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// DocLink is a URL to relevant documentation.
	DocLink string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, row number).
	Details map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions and doc links.
func (e *AppError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	if e.DocLink != "" {
		sb.WriteString("\n📚 Documentation: ")
		sb.WriteString(e.DocLink)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError with the given kind and message.
func New(kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As reports whether err is an *AppError and returns it.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
