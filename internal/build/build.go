// Package build compiles a generated project for production.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// DistDir is the compiler output directory.
const DistDir = "dist"

// StaticFiles are copied into dist/ after compilation when present.
var StaticFiles = []string{"package.json", "package-lock.json", ".env"}

// Result summarizes a build.
type Result struct {
	// DistDir is the absolute output directory.
	DistDir string

	// Cleaned is true when a previous dist/ was removed.
	Cleaned bool

	// Copied lists the static files copied, in StaticFiles order.
	Copied []string

	Duration time.Duration
}

// Builder runs the production build of a project.
type Builder struct {
	root string
	exec toolrunner.Executor
}

// New creates a builder for the project at root.
func New(root string, exec toolrunner.Executor) *Builder {
	return &Builder{root: root, exec: exec}
}

// Run removes dist/, compiles with `npx tsc` and copies the static files.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if _, err := os.Stat(filepath.Join(b.root, "package.json")); err != nil {
		return nil, oerrors.NewNotFoundError(
			"package.json not found", b.root,
			"Run apollo build from the project root or pass --project-root.")
	}

	result := &Result{DistDir: filepath.Join(b.root, DistDir)}

	if _, err := os.Stat(result.DistDir); err == nil {
		output.Info("cleaning dist folder", "path", result.DistDir)
		if err := os.RemoveAll(result.DistDir); err != nil {
			return nil, fmt.Errorf("removing %s: %w", result.DistDir, err)
		}
		result.Cleaned = true
	}

	output.Info("compiling TypeScript")
	if err := b.exec.Stream(ctx, toolrunner.NewCommand(b.root, "npx", "tsc")); err != nil {
		return nil, err
	}

	output.Info("copying static files")
	for _, name := range StaticFiles {
		copied, err := copyIfExists(filepath.Join(b.root, name), filepath.Join(result.DistDir, name))
		if err != nil {
			return nil, err
		}
		if copied {
			result.Copied = append(result.Copied, name)
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// copyIfExists copies src to dst, returning false when src does not exist.
func copyIfExists(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("%w: creating %s: %w", oerrors.ErrWriteFailed, filepath.Dir(dst), err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return false, fmt.Errorf("%w: creating %s: %w", oerrors.ErrWriteFailed, dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, fmt.Errorf("%w: copying %s: %w", oerrors.ErrWriteFailed, src, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("%w: closing %s: %w", oerrors.ErrWriteFailed, dst, err)
	}

	return true, nil
}
