package testutil

import (
	"context"
	"os/exec"
	"sync"
	"time"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// FakeResponse is the canned outcome of a captured command.
type FakeResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// FakeExecutor is a toolrunner.Executor that never starts a process.
// Commands are matched by their String() form. It is safe for concurrent use.
type FakeExecutor struct {
	// Responses answers Run calls. A command without a response fails as if
	// the binary were missing.
	Responses map[string]FakeResponse

	// StreamExitCodes makes Stream fail for the listed commands.
	StreamExitCodes map[string]int

	// OnStream runs for every streamed command, after it is recorded.
	OnStream func(cmd toolrunner.Command) error

	// Installed lists the binaries LookPath finds.
	Installed map[string]bool

	mu       sync.Mutex
	ran      []toolrunner.Command
	streamed []toolrunner.Command
}

var _ toolrunner.Executor = (*FakeExecutor)(nil)

// NewFakeExecutor creates an empty fake.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		Responses:       map[string]FakeResponse{},
		StreamExitCodes: map[string]int{},
		Installed:       map[string]bool{},
	}
}

// Respond registers stdout for a successful command.
func (f *FakeExecutor) Respond(cmdline, stdout string) *FakeExecutor {
	f.Responses[cmdline] = FakeResponse{Stdout: stdout}
	return f
}

// Install marks binaries as present on PATH.
func (f *FakeExecutor) Install(names ...string) *FakeExecutor {
	for _, n := range names {
		f.Installed[n] = true
	}
	return f
}

// Run implements toolrunner.Executor.
func (f *FakeExecutor) Run(_ context.Context, cmd toolrunner.Command) (*toolrunner.CommandResult, error) {
	f.mu.Lock()
	f.ran = append(f.ran, cmd)
	resp, ok := f.Responses[cmd.String()]
	f.mu.Unlock()

	if !ok {
		return &toolrunner.CommandResult{ExitCode: -1}, oerrors.NewExternalCommandError(cmd.String(), -1, exec.ErrNotFound)
	}

	result := &toolrunner.CommandResult{
		ExitCode: resp.ExitCode,
		Stdout:   resp.Stdout,
		Stderr:   resp.Stderr,
		Duration: time.Millisecond,
	}
	if resp.ExitCode != 0 {
		return result, oerrors.NewExternalCommandError(cmd.String(), resp.ExitCode, nil)
	}
	return result, nil
}

// Stream implements toolrunner.Executor.
func (f *FakeExecutor) Stream(_ context.Context, cmd toolrunner.Command) error {
	f.mu.Lock()
	f.streamed = append(f.streamed, cmd)
	code, fail := f.StreamExitCodes[cmd.String()]
	hook := f.OnStream
	f.mu.Unlock()

	if hook != nil {
		if err := hook(cmd); err != nil {
			return err
		}
	}
	if fail {
		return oerrors.NewExternalCommandError(cmd.String(), code, nil)
	}
	return nil
}

// LookPath implements toolrunner.Executor.
func (f *FakeExecutor) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Installed[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Ran returns the captured commands in call order.
func (f *FakeExecutor) Ran() []toolrunner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]toolrunner.Command(nil), f.ran...)
}

// Streamed returns the streamed commands in call order.
func (f *FakeExecutor) Streamed() []toolrunner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]toolrunner.Command(nil), f.streamed...)
}

// StreamedLines returns the streamed commands as command lines.
func (f *FakeExecutor) StreamedLines() []string {
	var lines []string
	for _, c := range f.Streamed() {
		lines = append(lines, c.String())
	}
	return lines
}
