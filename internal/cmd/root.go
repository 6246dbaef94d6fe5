// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// rootFlags binds the global flags. Commands read them back through
// resolveOptions.
type rootFlags struct {
	projectRoot string
	templates   []string
	config      string
	verbose     bool
	timestamps  bool
}

// newExecutor returns the process runner used by commands that shell out.
// Tests replace it with a fake.
var newExecutor = func() toolrunner.Executor {
	return toolrunner.NewRunner()
}

// NewRootCmd creates the root command for the apollo CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	gc := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "apollo",
		Short: "Backend project scaffolding CLI",
		Long: `apollo scaffolds TypeScript backend projects and the modules inside them.

It creates new projects wired for Express and Prisma, generates feature
modules from templates, and wraps the common build and database tasks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return initializeGlobals(c, gc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.projectRoot, "project-root", "",
		"Project root directory (default: current directory)")
	rootCmd.PersistentFlags().StringArrayVar(&flags.templates, "templates", nil,
		"Additional template directory searched first (can be repeated, env: APOLLO_TEMPLATE_PATHS)")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "",
		"Path to config file (env: APOLLO_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true,
		"Show timestamps in log output (env: APOLLO_LOG_TIMESTAMPS)")

	rootCmd.AddCommand(NewGenerateCmd(gc))
	rootCmd.AddCommand(NewInitCmd(gc))
	rootCmd.AddCommand(NewPrismaCmd(gc))
	rootCmd.AddCommand(NewBuildCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// resolveOptions reads the global flags of c's root command.
func resolveOptions(c *cobra.Command) config.ResolveOptions {
	flags := c.Root().PersistentFlags()

	opts := config.ResolveOptions{}
	opts.ConfigFlag, _ = flags.GetString("config")
	opts.ProjectRootFlag, _ = flags.GetString("project-root")
	opts.TemplatesFlag, _ = flags.GetStringArray("templates")
	opts.Verbose, _ = flags.GetBool("verbose")
	if flags.Changed("timestamps") {
		ts, _ := flags.GetBool("timestamps")
		opts.TimestampsFlag = output.BoolPtr(ts)
	}
	return opts
}

// initializeGlobals resolves configuration and sets up logging. The result
// is copied into gc, which every sub-command holds.
func initializeGlobals(c *cobra.Command, gc *config.GlobalConfig) error {
	opts := resolveOptions(c)

	resolved, err := config.Resolve(opts)
	if err != nil {
		output.SetupLogging(output.LogConfig{Verbose: opts.Verbose})
		return fail(err)
	}
	applyGlobals(resolved, gc)
	return nil
}

// applyGlobals stores resolved in gc and configures logging from it.
func applyGlobals(resolved, gc *config.GlobalConfig) {
	*gc = *resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    gc.Verbose,
		Timestamps: gc.Config.Log.Timestamps,
	})
	config.LogResolvedValues(gc.Resolved)
	output.Debug("initializing CLI",
		"config", gc.ConfigPath,
		"project-root", gc.ProjectRoot,
		"templates", gc.TemplatePaths,
	)
}

// fail logs err once and wraps it with its exit code so main does not
// print it again.
func fail(err error) error {
	if err == nil {
		return nil
	}
	output.Error(err.Error())
	return &oerrors.ExitError{
		Err:     err,
		Code:    oerrors.ExitCodeFromError(err),
		Printed: true,
	}
}
