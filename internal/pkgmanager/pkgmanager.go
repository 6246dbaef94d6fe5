// Package pkgmanager detects and drives Node.js package managers.
package pkgmanager

import (
	"context"
	"fmt"
	"strings"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// Manager is a package manager binary name.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
)

// All lists the supported package managers in preference order.
var All = []Manager{NPM, PNPM, Yarn}

// Names returns the supported package manager names.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, m := range All {
		names = append(names, string(m))
	}
	return names
}

// Parse validates a package manager name. The empty string parses to "".
func Parse(s string) (Manager, error) {
	if s == "" {
		return "", nil
	}
	for _, m := range All {
		if string(m) == s {
			return m, nil
		}
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("unknown package manager %q", s), "",
		fmt.Sprintf("Valid package managers: %s", strings.Join(Names(), ", ")))
}

// InstallArgs returns the install invocation. Yarn installs with no
// subcommand.
func (m Manager) InstallArgs() []string {
	if m == Yarn {
		return nil
	}
	return []string{"install"}
}

// InstallCommand returns the install command run in dir.
func (m Manager) InstallCommand(dir string) toolrunner.Command {
	return toolrunner.NewCommand(dir, string(m), m.InstallArgs()...)
}

// InstallLine is the install command as typed by a user.
func (m Manager) InstallLine() string {
	return m.InstallCommand("").String()
}

// DevLine is the command that starts the dev server.
func (m Manager) DevLine() string {
	if m == NPM {
		return "npm run dev"
	}
	return string(m) + " dev"
}

// Detector finds installed package managers.
type Detector struct {
	exec toolrunner.Executor
}

// NewDetector creates a detector.
func NewDetector(exec toolrunner.Executor) *Detector {
	return &Detector{exec: exec}
}

// IsInstalled reports whether `<m> --version` succeeds.
func (d *Detector) IsInstalled(ctx context.Context, m Manager) bool {
	res, err := d.exec.Run(ctx, toolrunner.NewCommand("", string(m), "--version"))
	if err != nil {
		output.Debug("package manager not available", "manager", m, "err", err)
		return false
	}
	output.Debug("package manager available", "manager", m, "version", strings.TrimSpace(res.Stdout))
	return true
}

// Detect returns the installed package managers in preference order.
func (d *Detector) Detect(ctx context.Context) []Manager {
	var available []Manager
	for _, m := range All {
		if d.IsInstalled(ctx, m) {
			available = append(available, m)
		}
	}
	return available
}

// Select picks the package manager: the explicit preference if any, else
// the first available one, else npm.
func Select(preferred Manager, available []Manager) Manager {
	if preferred != "" {
		return preferred
	}
	if len(available) > 0 {
		return available[0]
	}
	return NPM
}

// Contains reports whether m is in list.
func Contains(list []Manager, m Manager) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}
