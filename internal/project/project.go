// Package project initializes new backend projects.
package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/generator"
	"github.com/apollo-gears/cli/internal/npm"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/pkgmanager"
	"github.com/apollo-gears/cli/internal/templates"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// DefaultName is used when no project name is given.
const DefaultName = "my-apollo-app"

// PrismaInitArgs are the npx arguments that initialize Prisma.
var PrismaInitArgs = []string{"prisma", "init", "--datasource-provider", "postgresql", "--output", "../generated/prisma"}

// Options configures Init.
type Options struct {
	// Name is the project (and directory) name.
	Name string

	// ParentDir is where the project directory is created.
	ParentDir string

	// PackageManager is the preferred manager; "" selects the first
	// installed one.
	PackageManager pkgmanager.Manager

	Install       bool
	PrismaInit    bool
	VersionLookup bool
}

// Result describes an initialized project.
type Result struct {
	Name string

	// Dir is the absolute project directory.
	Dir string

	// Files lists the generated files relative to Dir, in creation order.
	Files []string

	Versions *npm.Versions

	// PackageManager is the manager chosen for the project.
	PackageManager pkgmanager.Manager

	// Installer is the manager that ran the install. It differs from
	// PackageManager when the chosen one was missing and npm was used.
	Installer pkgmanager.Manager

	Installed bool

	// NextSteps are the commands the user runs to start the project.
	NextSteps []string
}

// Initializer creates projects.
type Initializer struct {
	exec     toolrunner.Executor
	resolver *templates.Resolver
	versions *npm.Resolver
	detector *pkgmanager.Detector
}

// NewInitializer creates an initializer that renders templates from
// resolver and runs tools through exec.
func NewInitializer(exec toolrunner.Executor, resolver *templates.Resolver) *Initializer {
	return &Initializer{
		exec:     exec,
		resolver: resolver,
		versions: npm.NewResolver(exec),
		detector: pkgmanager.NewDetector(exec),
	}
}

// ValidateName checks a project name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return oerrors.NewValidationError("project name is required", "", "")
	}
	if name != strings.TrimSpace(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("project name %q has leading or trailing whitespace", name), "", "")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return oerrors.NewValidationError(
			fmt.Sprintf("project name %q must be a single directory name", name), "",
			"Use --project-root to create the project somewhere else.")
	}
	return nil
}

// Init creates the project. Steps run in order and the first failure
// aborts; nothing already created is removed.
func (i *Initializer) Init(ctx context.Context, opts Options) (*Result, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(filepath.Join(opts.ParentDir, name))
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	if _, err := os.Stat(dir); err == nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("directory %q already exists", name), dir,
			"Choose another project name or remove the directory.")
	}

	log := output.ProjectLogger(name)
	log.Info("initializing project", "dir", dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %w", oerrors.ErrWriteFailed, dir, err)
	}

	result := &Result{Name: name, Dir: dir}
	writer := templates.NewWriter(dir)
	gen := generator.New(i.resolver, writer)

	versions, err := i.resolveVersions(ctx, opts.VersionLookup)
	if err != nil {
		return nil, err
	}
	result.Versions = versions

	rel, err := npm.NewManifest(name, versions).Write(writer)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, rel)

	files, err := gen.GenerateTSConfig(name)
	result.Files = append(result.Files, files...)
	if err != nil {
		return nil, err
	}

	log.Info("creating project structure")
	for _, d := range generator.ScaffoldDirs {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(d)), 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating %s: %w", oerrors.ErrWriteFailed, d, err)
		}
	}

	if opts.PrismaInit {
		log.Info("initializing Prisma")
		if err := i.exec.Stream(ctx, toolrunner.NewCommand(dir, "npx", PrismaInitArgs...)); err != nil {
			return nil, err
		}
	}

	files, err = gen.GenerateProjectFiles(name)
	result.Files = append(result.Files, files...)
	if err != nil {
		return nil, err
	}

	available := i.detector.Detect(ctx)
	result.PackageManager = pkgmanager.Select(opts.PackageManager, available)
	log.Debug("selected package manager", "manager", result.PackageManager, "available", available)

	if opts.Install {
		result.Installer = result.PackageManager
		if !pkgmanager.Contains(available, result.PackageManager) {
			log.Warn("package manager is not installed, falling back to npm",
				"manager", result.PackageManager,
				"hint", "npm install -g "+string(result.PackageManager))
			result.Installer = pkgmanager.NPM
		}

		log.Info("installing dependencies", "manager", result.Installer)
		if err := i.exec.Stream(ctx, result.Installer.InstallCommand(dir)); err != nil {
			return nil, err
		}
		result.Installed = true
		result.NextSteps = []string{"cd " + name, result.Installer.DevLine()}
	} else {
		pm := result.PackageManager
		result.NextSteps = []string{"cd " + name, pm.InstallLine() + " && " + pm.DevLine()}
	}

	return result, nil
}

func (i *Initializer) resolveVersions(ctx context.Context, lookup bool) (*npm.Versions, error) {
	if !lookup {
		output.Debug("version lookup disabled, pinning dependencies to " + npm.FallbackVersion)
		return npm.Offline(npm.DefaultDependencies, npm.DefaultDevDependencies), nil
	}

	var versions *npm.Versions
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		versions, err = i.versions.Resolve(ctx, npm.DefaultDependencies, npm.DefaultDevDependencies)
		return err
	}, output.WithTitle("Fetching latest package versions..."))
	if err != nil {
		return nil, err
	}
	return versions, nil
}
