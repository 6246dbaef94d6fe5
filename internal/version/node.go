package version

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/apollo-gears/cli/internal/toolrunner"
)

// MinNodeMajor is the oldest Node.js major version generated projects
// support.
const MinNodeMajor = 18

// nodeVersionRegex matches `node --version` output like "v22.11.0".
var nodeVersionRegex = regexp.MustCompile(`v?(\d+)\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// NodeInfo describes the Node.js binary on PATH.
type NodeInfo struct {
	Version string `json:"version"`
	Path    string `json:"path"`

	// Supported is true when the major version is at least MinNodeMajor.
	Supported bool `json:"supported"`

	Found bool `json:"found"`

	Message string `json:"message,omitempty"`
}

// DetectNode finds the node binary and checks its version.
func DetectNode(ctx context.Context, exec toolrunner.Executor) NodeInfo {
	path, err := exec.LookPath("node")
	if err != nil {
		return NodeInfo{Message: "node binary not found in PATH"}
	}

	res, err := exec.Run(ctx, toolrunner.NewCommand("", path, "--version"))
	if err != nil {
		return NodeInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get node version: " + err.Error(),
		}
	}

	version, major, err := extractVersion(res.Stdout)
	if err != nil {
		return NodeInfo{Path: path, Found: true, Message: err.Error()}
	}

	info := NodeInfo{
		Version:   version,
		Path:      path,
		Found:     true,
		Supported: major >= MinNodeMajor,
	}
	if !info.Supported {
		info.Message = fmt.Sprintf("unsupported - requires v%d or newer", MinNodeMajor)
	}
	return info
}

// extractVersion returns the "v"-prefixed version and its major component.
func extractVersion(output string) (string, int, error) {
	m := nodeVersionRegex.FindStringSubmatch(strings.TrimSpace(output))
	if m == nil {
		return "", 0, fmt.Errorf("failed to parse node version from output: %q", output)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return "", 0, fmt.Errorf("parsing major version %q: %w", m[1], err)
	}

	version := m[0]
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version, major, nil
}

// String returns a human-readable node info string.
func (n NodeInfo) String() string {
	if !n.Found {
		return "  Version: not found\n  Path:    -"
	}

	status := "supported"
	if !n.Supported {
		status = n.Message
	}

	return fmt.Sprintf("  Version: %s (%s)\n  Path:    %s", n.Version, status, n.Path)
}
