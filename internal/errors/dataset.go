package errors

import (
	"fmt"
	"strings"
)

// Dataset-related error constructors. All of these are fatal at startup.

// DatasetNotFound creates an error when the source file does not exist.
func DatasetNotFound(path string) *AppError {
	return &AppError{
		Kind:    ErrDataset,
		Message: fmt.Sprintf("dataset file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Point fightsongs at the fight songs CSV:
    fightsongs --data path/to/fight-songs.csv

  Or set it once in .fightsongs/config.yaml:
    dataset:
      path: path/to/fight-songs.csv`,
	}
}

// DatasetUnreadable creates an error when the source cannot be read at all.
func DatasetUnreadable(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrDataset,
		Message: fmt.Sprintf("failed to read dataset: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the file is a readable comma-separated file with a header row.",
	}
}

// MissingColumns creates an error when required header columns are absent.
func MissingColumns(path string, columns []string) *AppError {
	return &AppError{
		Kind:    ErrDataset,
		Message: fmt.Sprintf("dataset is missing required columns: %s", strings.Join(columns, ", ")),
		Details: map[string]string{
			"path":    path,
			"missing": strings.Join(columns, ","),
		},
		Suggestion: "The header row must name every required column (school, conference, year, student_writer, contest and each trope column).",
	}
}

// MalformedRow creates an error for a row that cannot be parsed.
func MalformedRow(path string, line int, cause error) *AppError {
	return &AppError{
		Kind:    ErrDataset,
		Message: fmt.Sprintf("malformed row at line %d", line),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
			"line": fmt.Sprintf("%d", line),
		},
		Suggestion: "Check the row for unbalanced quotes or a wrong number of fields.",
	}
}

// DuplicateSchool creates an error when two rows share a school name.
func DuplicateSchool(path, school string, line int) *AppError {
	return &AppError{
		Kind:    ErrDataset,
		Message: fmt.Sprintf("duplicate school %q at line %d", school, line),
		Details: map[string]string{
			"path":   path,
			"school": school,
			"line":   fmt.Sprintf("%d", line),
		},
		Suggestion: "Each school must appear exactly once in the dataset.",
	}
}
