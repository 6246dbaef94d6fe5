package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show apollo CLI version information.

Displays:
  - apollo CLI version, commit, and build date
  - Node.js binary found on PATH and whether generated projects support it`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			node := version.DetectNode(c.Context(), newExecutor())
			output.Println(version.FullVersionString(version.Get(), node))
			if node.Found && !node.Supported {
				output.Warn("Node.js version is too old for generated projects", "version", node.Version)
			}
			return nil
		},
	}
}
