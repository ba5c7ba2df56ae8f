// Package errors provides sentinel errors and structured error details for
// the tauristart CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the offending input field, e.g. "package-name" (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewTargetNotEmptyError reports a non-empty target directory.
func NewTargetNotEmptyError(path string) error {
	return &DetailError{
		Type:     "target directory not empty",
		Message:  fmt.Sprintf("directory %s already contains files", path),
		Location: path,
		Hint:     "Choose an empty directory or pass --overwrite to clear it (a .git directory is kept).",
		Cause:    ErrTargetNotEmpty,
	}
}

// NewTemplateNotFoundError reports a missing template directory or archive.
// The result matches both ErrTemplateNotFound and ErrNotFound.
func NewTemplateNotFoundError(framework, location string) error {
	return &DetailError{
		Type:     "template not found",
		Message:  fmt.Sprintf("no template for framework %q", framework),
		Location: location,
		Hint:     "Check --templates-dir or reinstall tauristart.",
		Cause:    fmt.Errorf("%w: %w", ErrTemplateNotFound, ErrNotFound),
	}
}

// NewExtractionError wraps an archive extraction failure. The result matches
// ErrTemplateExtraction and the root cause.
func NewExtractionError(archive string, cause error) error {
	return &DetailError{
		Type:     "template extraction failed",
		Message:  cause.Error(),
		Location: archive,
		Hint:     "The target may be partially populated; rerun with --overwrite.",
		Cause:    fmt.Errorf("%w: %w", ErrTemplateExtraction, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
