package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the apollo configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Every field matches the configuration schema
  4. Values that need the environment (package manager names, template
     paths) are usable

On success the resolved value of each setting and its source is printed.

Examples:
  # Validate default configuration
  apollo config vet

  # Validate a custom config path
  apollo config vet --config ./apollo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet(gc)
		},
	}
}

func runConfigVet(gc *config.GlobalConfig) error {
	path, err := configPath(gc)
	if err != nil {
		return fail(err)
	}
	output.Debug("validating config", "path", path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fail(oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'apollo config init' to create default configuration."))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fail(err)
	}
	if err := validator.ValidateFile(path); err != nil {
		return fail(vetError(path, err))
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return fail(vetError(path, err))
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return fail(vetError(path, err))
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + output.StyleNoun.Render(path)))
	if len(gc.Resolved) > 0 {
		output.Println(resolvedTable(gc.Resolved))
	}
	return nil
}

// vetError reports a validation failure against the config file.
func vetError(path string, err error) error {
	return &oerrors.DetailError{
		Type:     "validation failed",
		Message:  err.Error(),
		Location: path,
		Hint:     "Fix the listed fields or regenerate the file with 'apollo config init --force'.",
		Cause:    oerrors.ErrValidation,
	}
}

// resolvedTable renders each resolved value with its source.
func resolvedTable(values []config.ResolvedValue) string {
	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range values {
		tbl.Row(v.Key, fmt.Sprint(v.Value), string(v.Source))
	}
	return tbl.String()
}
