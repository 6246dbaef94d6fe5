package templates

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/apollo-gears/cli/internal/errors"
)

// Writer writes generated files, creating parent directories as needed.
type Writer struct {
	// Base is the directory relative destinations are joined to and that
	// reported paths are relative to.
	Base string
}

// NewWriter creates a writer rooted at base.
func NewWriter(base string) *Writer {
	return &Writer{Base: base}
}

// Write writes content to dest, overwriting any existing file, and returns
// dest relative to Base.
func (w *Writer) Write(dest string, content []byte) (string, error) {
	target := dest
	if !filepath.IsAbs(target) {
		target = filepath.Join(w.Base, target)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", writeError(target, "creating directory", err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", writeError(target, "writing file", err)
	}

	return w.Rel(target), nil
}

// Rel returns target relative to Base, or target unchanged when no relative
// path exists.
func (w *Writer) Rel(target string) string {
	rel, err := filepath.Rel(w.Base, target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}

func writeError(target, step string, err error) error {
	return &oerrors.DetailError{
		Type:     "write failed",
		Message:  fmt.Sprintf("%s: %v", step, err),
		Location: target,
		Cause:    fmt.Errorf("%w: %w", oerrors.ErrWriteFailed, err),
	}
}
