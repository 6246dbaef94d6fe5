package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	"github.com/apollo-gears/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Configuration management for the apollo CLI.

The config file is resolved using precedence:
  --config flag > APOLLO_CONFIG env > ~/.apollo/config.yaml`,
		// A broken config file must not stop init or vet from running.
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return initializeConfigGlobals(c, gc)
		},
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}

// initializeConfigGlobals is the lenient variant of initializeGlobals: when
// the config cannot be loaded only its path is resolved.
func initializeConfigGlobals(c *cobra.Command, gc *config.GlobalConfig) error {
	opts := resolveOptions(c)

	resolved, err := config.Resolve(opts)
	if err == nil {
		applyGlobals(resolved, gc)
		return nil
	}

	output.SetupLogging(output.LogConfig{Verbose: opts.Verbose})
	output.Debug("config load error", "error", err)

	path, err := config.ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return fail(err)
	}
	gc.ConfigPath = path.Value.(string)
	gc.Verbose = opts.Verbose
	gc.Resolved = []config.ResolvedValue{path}
	return nil
}
