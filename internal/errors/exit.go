package errors

import "errors"

// Exit codes returned by the apollo binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid arguments, flags or config.
	ExitValidationError = 2

	// ExitTemplateError indicates a template was missing or failed to render.
	ExitTemplateError = 3

	// ExitWriteError indicates a generated file could not be written.
	ExitWriteError = 4

	// ExitExternalCommandError indicates a package manager or ORM command failed.
	ExitExternalCommandError = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has already logged the error.
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
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, ErrRender):
		return ExitTemplateError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteError
	case errors.Is(err, ErrExternalCommand):
		return ExitExternalCommandError
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
	case ExitTemplateError:
		return "Template Error"
	case ExitWriteError:
		return "Write Error"
	case ExitExternalCommandError:
		return "External Command Error"
	default:
		return "Unknown"
	}
}
