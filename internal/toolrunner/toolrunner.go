// Package toolrunner executes external tools such as npm, npx and yarn.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
)

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// NewCommand creates a command run in dir.
func NewCommand(dir, name string, args ...string) Command {
	return Command{Name: name, Args: args, Dir: dir}
}

// String returns the command line as a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandResult is the outcome of a captured command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Executor runs external commands. A non-zero exit is reported as an error
// wrapping errors.ErrExternalCommand.
type Executor interface {
	// Run executes cmd and captures its output.
	Run(ctx context.Context, cmd Command) (*CommandResult, error)

	// Stream executes cmd with the executor's stdio attached, so the user
	// sees the tool's own progress output.
	Stream(ctx context.Context, cmd Command) error

	// LookPath reports whether name is on PATH.
	LookPath(name string) (string, error)
}

// Runner is the Executor backed by os/exec.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ Executor = (*Runner)(nil)

// NewRunner creates a runner that streams to the process's stdio.
func NewRunner() *Runner {
	return &Runner{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// WithOutput returns a copy of the runner streaming to the given writers.
func (r *Runner) WithOutput(stdout, stderr io.Writer) *Runner {
	return &Runner{stdin: r.stdin, stdout: stdout, stderr: stderr}
}

// Run implements Executor.
func (r *Runner) Run(ctx context.Context, c Command) (*CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	output.Debug("running command", "cmd", c.String(), "dir", c.Dir)
	err := cmd.Run()

	result := &CommandResult{
		ExitCode: exitCode(cmd, err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	output.Debug("command finished", "cmd", c.String(), "exit", result.ExitCode, "duration", result.Duration)

	if err != nil {
		return result, oerrors.NewExternalCommandError(c.String(), result.ExitCode, commandCause(err, result.Stderr))
	}
	return result, nil
}

// Stream implements Executor.
func (r *Runner) Stream(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	output.Debug("running command", "cmd", c.String(), "dir", c.Dir, "stdio", "inherit")
	if err := cmd.Run(); err != nil {
		return oerrors.NewExternalCommandError(c.String(), exitCode(cmd, err), err)
	}
	return nil
}

// LookPath implements Executor.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// exitCode returns the process exit code, or -1 when the process never ran.
func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

func commandCause(err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return errors.New(msg)
		}
	}
	return err
}
