package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/build"
	"github.com/apollo-gears/cli/internal/config"
	"github.com/apollo-gears/cli/internal/output"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(gc *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the project for production",
		Long: `Build the project for production.

Removes dist/, compiles the sources with "npx tsc" and copies package.json,
package-lock.json and .env into dist/ when they exist.

Examples:
  # Build the project in the current directory
  apollo build

  # Build another project
  apollo build --project-root ../shop`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			result, err := build.New(gc.ProjectRoot, newExecutor()).Run(c.Context())
			if err != nil {
				return fail(err)
			}

			output.Debug("build finished", "cleaned", result.Cleaned)
			if len(result.Copied) > 0 {
				output.Println(output.RenderSimpleTree(build.DistDir, result.Copied))
			}
			output.Println(output.FormatCheckmark(fmt.Sprintf("Build complete in %s (%s)",
				result.Duration.Round(time.Millisecond), output.StyleNoun.Render(result.DistDir))))
			return nil
		},
	}
}
