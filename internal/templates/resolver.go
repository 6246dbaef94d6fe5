package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
)

// Ref names a template relative to a search root, using slash separators
// (e.g. "module/controller.ts.tmpl").
type Ref string

// Context maps placeholder names to their values.
type Context map[string]string

// Root is one place templates are looked up in.
type Root struct {
	// Name identifies the root in logs.
	Name string

	// FS serves the templates.
	FS fs.FS

	// Dir is the absolute directory backing FS. Empty for the bundled root.
	Dir string
}

// location describes where ref would live inside the root.
func (r Root) location(ref Ref) string {
	if r.Dir == "" {
		return EmbeddedLocationPrefix + string(ref)
	}
	return filepath.Join(r.Dir, filepath.FromSlash(string(ref)))
}

// DirRoot returns a root backed by a directory on disk.
func DirRoot(name, dir string) Root {
	return Root{Name: name, FS: os.DirFS(dir), Dir: dir}
}

// Source is a resolved template.
type Source struct {
	Ref Ref

	// Root is the name of the root the template was found in.
	Root string

	// Location is the absolute file path, or "embedded:<ref>".
	Location string

	Content []byte
}

// Resolver looks templates up in an ordered list of roots. The first root
// containing the template wins.
type Resolver struct {
	roots []Root
}

// NewResolver creates a resolver over the given roots, searched in order.
func NewResolver(roots ...Root) *Resolver {
	return &Resolver{roots: roots}
}

// Roots returns the search roots in lookup order.
func (r *Resolver) Roots() []Root {
	return r.roots
}

// Resolve returns the first template matching ref.
func (r *Resolver) Resolve(ref Ref) (*Source, error) {
	if ref == "" {
		return nil, oerrors.NewValidationError("template reference must not be empty", "", "")
	}
	name := string(ref)
	if !fs.ValidPath(name) || path.Clean(name) != name {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("invalid template reference %q", name), "",
			"Template references are slash-separated paths relative to a template root.")
	}

	attempted := make([]string, 0, len(r.roots))
	for _, root := range r.roots {
		loc := root.location(ref)
		content, err := fs.ReadFile(root.FS, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				attempted = append(attempted, loc)
				continue
			}
			return nil, fmt.Errorf("reading template %s: %w", loc, err)
		}

		output.Debug("resolved template", "ref", name, "root", root.Name, "location", loc)
		return &Source{
			Ref:      ref,
			Root:     root.Name,
			Location: loc,
			Content:  content,
		}, nil
	}

	return nil, oerrors.NewTemplateNotFoundError(name, attempted)
}

// SearchOptions configures the default search roots.
type SearchOptions struct {
	// TemplatePaths are user-configured directories, searched first.
	TemplatePaths []string

	// ProjectRoot enables <ProjectRoot>/.apollo/templates when set.
	ProjectRoot string

	// ExecutableDir enables <ExecutableDir>/templates when set.
	ExecutableDir string
}

// ProjectTemplatesDir is the project-local override directory.
const ProjectTemplatesDir = ".apollo/templates"

// DefaultRoots builds the search order: user paths, project-local
// overrides, templates next to the executable, then the bundled templates.
// Directories that do not exist are skipped.
func DefaultRoots(opts SearchOptions) []Root {
	var roots []Root

	addDir := func(name, dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			output.Debug("skipping template root", "name", name, "dir", abs)
			return
		}
		roots = append(roots, DirRoot(name, abs))
	}

	for _, p := range opts.TemplatePaths {
		addDir("user", p)
	}
	if opts.ProjectRoot != "" {
		addDir("project", filepath.Join(opts.ProjectRoot, filepath.FromSlash(ProjectTemplatesDir)))
	}
	if opts.ExecutableDir != "" {
		addDir("executable", filepath.Join(opts.ExecutableDir, "templates"))
	}

	return append(roots, EmbeddedRoot())
}

// ExecutableDir returns the directory of the running binary, or "" when it
// cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
