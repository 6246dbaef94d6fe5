//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrValidation,
		ErrNotFound,
		ErrTemplateNotFound,
		ErrRender,
		ErrWriteFailed,
		ErrExternalCommand,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/path/to/config.yaml",
		Context:  map[string]string{"Field": "packageManager"},
		Hint:     "Use npm, pnpm or yarn",
	}

	out := detail.Error()

	assert.Contains(t, out, "validation failed: invalid value")
	assert.Contains(t, out, "Location: /path/to/config.yaml")
	assert.Contains(t, out, "Field: packageManager")
	assert.Contains(t, out, "Hint: Use npm, pnpm or yarn")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewTemplateNotFoundError(t *testing.T) {
	err := NewTemplateNotFoundError("module/controller.ts.tmpl", []string{
		"/home/me/.apollo/templates/module/controller.ts.tmpl",
		"embedded:module/controller.ts.tmpl",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "module/controller.ts.tmpl")
	assert.Contains(t, err.Error(), "/home/me/.apollo/templates/module/controller.ts.tmpl")
	assert.Contains(t, err.Error(), "embedded:module/controller.ts.tmpl")
}

func TestNewExternalCommandError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := NewExternalCommandError("npm install", 1, cause)

	assert.ErrorIs(t, err, ErrExternalCommand)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "npm install exited with code 1")

	noCause := NewExternalCommandError("yarn", 2, nil)
	assert.ErrorIs(t, noCause, ErrExternalCommand)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "module name check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "module name check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", Wrap(ErrValidation, "bad name"), ExitValidationError},
		{"template not found", NewTemplateNotFoundError("x", nil), ExitTemplateError},
		{"render error", fmt.Errorf("rendering: %w", ErrRender), ExitTemplateError},
		{"write failed", fmt.Errorf("writing: %w", ErrWriteFailed), ExitWriteError},
		{"external command", NewExternalCommandError("npx tsc", 2, nil), ExitExternalCommandError},
		{"explicit exit error", NewExitError(errors.New("boom"), 7), 7},
		{"unknown error returns general error", errors.New("unknown"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 3, ExitTemplateError)
	assert.Equal(t, 4, ExitWriteError)
	assert.Equal(t, 5, ExitExternalCommandError)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Template Error", ExitCodeName(ExitTemplateError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
