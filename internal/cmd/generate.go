package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/generator"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/templates"
)

// generateTypes lists the artifact types generate understands.
var generateTypes = []string{"module"}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(gc *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "generate <type> <name>",
		Aliases: []string{"g"},
		Short:   "Generate a module from templates",
		Long: `Generate source files for a new feature module.

A module is six TypeScript files written to
src/modules/<Name>/<name>.{controller,service,route,interface,validation,constant}.ts
under the project root. The name is capitalized for the directory and
camel-cased for the file names.

Templates are looked up in --templates directories, then
<project-root>/.apollo/templates, then templates/ next to the apollo
binary, and finally in the set bundled with apollo.

Examples:
  # Generate a user module in the current project
  apollo generate module user

  # Same, using the short alias
  apollo g module product

  # Generate into another project with custom templates
  apollo g module order --project-root ../shop --templates ./my-templates`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(args, gc)
		},
	}
}

func runGenerate(args []string, gc *config.GlobalConfig) error {
	kind, name := args[0], args[1]
	if kind != "module" {
		return fail(oerrors.NewValidationError(
			fmt.Sprintf("unknown generate type %q", kind), "",
			fmt.Sprintf("Valid types: %v", generateTypes)))
	}

	gen := generator.New(newTemplateResolver(gc), templates.NewWriter(gc.ProjectRoot))
	names, written, err := gen.GenerateModule(name)
	for _, path := range written {
		output.Println(output.FormatFileLine(path, output.StatusCreated))
	}
	if err != nil {
		return fail(err)
	}

	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Module %s generated", output.StyleNoun.Render(names.Pascal))))
	return nil
}

// newTemplateResolver builds the template search path for the resolved
// global configuration.
func newTemplateResolver(gc *config.GlobalConfig) *templates.Resolver {
	roots := templates.DefaultRoots(templates.SearchOptions{
		TemplatePaths: gc.TemplatePaths,
		ProjectRoot:   gc.ProjectRoot,
		ExecutableDir: templates.ExecutableDir(),
	})
	for _, r := range roots {
		output.Debug("template root", "name", r.Name, "dir", r.Dir)
	}
	return templates.NewResolver(roots...)
}
