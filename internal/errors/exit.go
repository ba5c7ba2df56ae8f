package errors

import "errors"

// Exit codes returned by the tauristart binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input (names, framework, platforms).
	ExitValidationError = 2

	// ExitNotFound indicates a file, template or config was not found.
	ExitNotFound = 5

	// ExitTargetNotEmpty indicates the target directory was not empty.
	ExitTargetNotEmpty = 7

	// ExitExtractionFailed indicates a template archive could not be extracted.
	ExitExtractionFailed = 8
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set once the command layer has shown the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrTargetNotEmpty):
		return ExitTargetNotEmpty
	case errors.Is(err, ErrTemplateExtraction):
		return ExitExtractionFailed
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitTargetNotEmpty:
		return "Target Not Empty"
	case ExitExtractionFailed:
		return "Extraction Failed"
	default:
		return "Unknown"
	}
}
