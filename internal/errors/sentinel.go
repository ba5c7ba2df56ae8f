package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input: a project name, package name,
	// framework identifier or platform that cannot be accepted.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file, directory or template was not found.
	ErrNotFound = errors.New("not found")

	// ErrTargetNotEmpty indicates the target directory holds content and
	// overwriting was not allowed.
	ErrTargetNotEmpty = errors.New("target directory not empty")

	// ErrTemplateNotFound indicates the template directory or archive for a
	// framework does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateExtraction indicates a template archive could not be extracted.
	ErrTemplateExtraction = errors.New("template extraction failed")

	// ErrConfigWriteSkipped marks a configuration file that was not rewritten
	// because it does not exist. It is informational and never fatal.
	ErrConfigWriteSkipped = errors.New("config write skipped")
)
