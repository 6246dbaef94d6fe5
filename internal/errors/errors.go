// Package errors provides sentinel errors, structured error details and exit
// codes for the apollo CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

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

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("\n  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
	}

	if e.Hint != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
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

// NewTemplateNotFoundError reports every location that was searched for ref.
func NewTemplateNotFoundError(ref string, attempted []string) error {
	return &DetailError{
		Type:     "template not found",
		Message:  fmt.Sprintf("template %q not found in any search root", ref),
		Location: strings.Join(attempted, ", "),
		Hint:     "Check --templates / templatePaths or reinstall apollo to restore the bundled templates.",
		Cause:    ErrTemplateNotFound,
	}
}

// NewExternalCommandError creates an error for a failed external process.
func NewExternalCommandError(command string, exitCode int, cause error) error {
	wrapped := ErrExternalCommand
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrExternalCommand, cause)
	}
	return &DetailError{
		Type:    "external command failed",
		Message: fmt.Sprintf("%s exited with code %d", command, exitCode),
		Context: map[string]string{"Command": command},
		Cause:   wrapped,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
