package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/apollo-gears/cli/internal/config"
	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
)

// configHeader is written above the generated defaults.
const configHeader = `# apollo CLI configuration.
#
# templatePaths:  directories searched for templates before the bundled ones
# packageManager: npm, pnpm or yarn (empty: first one installed)
# install:        install dependencies after init
# prismaInit:     run "prisma init" during init
# versionLookup:  resolve dependency versions from the npm registry
#
# Validate with: apollo config vet

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default apollo configuration file.

The file is created at the resolved config path (~/.apollo/config.yaml
unless --config or APOLLO_CONFIG says otherwise) with owner-only
permissions.

Examples:
  # Initialize configuration
  apollo config init

  # Overwrite existing configuration
  apollo config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(gc *config.GlobalConfig, force bool) error {
	path, err := configPath(gc)
	if err != nil {
		return fail(err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fail(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fail(fmt.Errorf("%w: creating %s: %w", oerrors.ErrWriteFailed, filepath.Dir(path), err))
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fail(fmt.Errorf("%w: writing %s: %w", oerrors.ErrWriteFailed, path, err))
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + output.StyleNoun.Render(path)))
	output.Println("Validate with: apollo config vet")
	return nil
}

// defaultConfigYAML renders the default configuration with its header.
func defaultConfigYAML() ([]byte, error) {
	cfg := config.DefaultConfig()
	cfg.Log.Timestamps = output.BoolPtr(true)

	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	return buf.Bytes(), nil
}

// configPath returns the expanded config file path for gc.
func configPath(gc *config.GlobalConfig) (string, error) {
	path := gc.ConfigPath
	if path == "" {
		resolved, err := config.ResolveConfigPath("")
		if err != nil {
			return "", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		path = resolved.Value.(string)
	}
	return config.ExpandPath(path)
}
