package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (names, flags, config values).
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or directory the command needs is missing.
	ErrNotFound = errors.New("not found")

	// ErrTemplateNotFound indicates no template search root contains the template.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRender indicates a template failed to parse or referenced a key
	// missing from the render context.
	ErrRender = errors.New("render error")

	// ErrWriteFailed indicates a generated file could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrExternalCommand indicates an external process exited non-zero or
	// could not be started.
	ErrExternalCommand = errors.New("external command failed")
)
