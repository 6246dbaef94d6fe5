// Package npm looks up package versions and writes package.json manifests.
package npm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// FallbackVersion is used when a version lookup fails or is skipped.
const FallbackVersion = "latest"

// DefaultConcurrency bounds the number of concurrent `npm view` processes.
const DefaultConcurrency = 8

// DefaultDependencies are the runtime dependencies of a new project.
var DefaultDependencies = []string{
	"express",
	"cors",
	"dotenv",
	"http-status",
	"@prisma/client",
	"@prisma/adapter-pg",
	"pg",
	"zod",
	"bcrypt",
	"jsonwebtoken",
	"cookie-parser",
}

// DefaultDevDependencies are the development dependencies of a new project.
var DefaultDevDependencies = []string{
	"typescript",
	"ts-node-dev",
	"@types/node",
	"@types/express",
	"@types/cookie-parser",
	"@types/bcrypt",
	"@types/jsonwebtoken",
	"@types/pg",
	"@types/cors",
	"prisma",
	"eslint",
	"prettier",
}

var versionRegex = regexp.MustCompile(`^\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.-]+)?$`)

// Versions maps package names to version ranges.
type Versions struct {
	Dependencies    map[string]string
	DevDependencies map[string]string

	// Fallbacks lists the packages pinned to FallbackVersion because their
	// lookup failed, in input order.
	Fallbacks []string
}

// Offline returns every package pinned to FallbackVersion without looking
// anything up.
func Offline(deps, devDeps []string) *Versions {
	v := &Versions{
		Dependencies:    make(map[string]string, len(deps)),
		DevDependencies: make(map[string]string, len(devDeps)),
	}
	for _, p := range deps {
		v.Dependencies[p] = FallbackVersion
	}
	for _, p := range devDeps {
		v.DevDependencies[p] = FallbackVersion
	}
	return v
}

// Resolver queries the npm registry through the npm binary.
type Resolver struct {
	exec  toolrunner.Executor
	limit int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConcurrency bounds concurrent lookups. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.limit = n
		}
	}
}

// NewResolver creates a version resolver.
func NewResolver(exec toolrunner.Executor, opts ...Option) *Resolver {
	r := &Resolver{exec: exec, limit: DefaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Latest returns the latest published version of pkg (e.g. "4.21.2").
func (r *Resolver) Latest(ctx context.Context, pkg string) (string, error) {
	res, err := r.exec.Run(ctx, toolrunner.NewCommand("", "npm", "view", pkg, "version"))
	if err != nil {
		return "", err
	}

	version := strings.TrimSpace(res.Stdout)
	if !versionRegex.MatchString(version) {
		return "", fmt.Errorf("unexpected version %q for %s", version, pkg)
	}
	return version, nil
}

type lookup struct {
	version string
	err     error
}

// Resolve looks up every package concurrently. A package whose lookup
// fails is pinned to FallbackVersion with a warning; the batch itself only
// fails when ctx is cancelled.
func (r *Resolver) Resolve(ctx context.Context, deps, devDeps []string) (*Versions, error) {
	all := make([]string, 0, len(deps)+len(devDeps))
	all = append(all, deps...)
	all = append(all, devDeps...)

	// Each goroutine owns one slot.
	results := make([]lookup, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i, pkg := range all {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			version, err := r.Latest(gctx, pkg)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				results[i] = lookup{version: FallbackVersion, err: err}
				return nil
			}
			results[i] = lookup{version: "^" + version}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving package versions: %w", err)
	}

	v := &Versions{
		Dependencies:    make(map[string]string, len(deps)),
		DevDependencies: make(map[string]string, len(devDeps)),
	}
	for i, pkg := range all {
		res := results[i]
		if res.err != nil {
			output.Warn("could not fetch latest version, using fallback",
				"package", pkg, "fallback", FallbackVersion, "err", res.err)
			v.Fallbacks = append(v.Fallbacks, pkg)
		}
		if i < len(deps) {
			v.Dependencies[pkg] = res.version
		} else {
			v.DevDependencies[pkg] = res.version
		}
	}

	return v, nil
}
