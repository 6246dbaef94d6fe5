package generator

import (
	"path"
	"strings"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/templates"
)

// ModuleKinds are the files of a module, in generation order.
var ModuleKinds = []string{
	"controller",
	"service",
	"route",
	"interface",
	"validation",
	"constant",
}

// ModulesDir is where modules live inside a project.
const ModulesDir = "src/modules"

// ModuleNames holds the derived spellings of a module name.
type ModuleNames struct {
	// Pascal names the directory and the exported symbols ("User").
	Pascal string

	// Camel prefixes the file names ("user").
	Camel string
}

// NewModuleNames derives the module spellings from raw user input.
func NewModuleNames(raw string) (ModuleNames, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ModuleNames{}, oerrors.NewValidationError(
			"module name is required", "",
			"Usage: apollo generate module <name>")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return ModuleNames{}, oerrors.NewValidationError(
			"module name must not contain path separators", name, "")
	}

	return ModuleNames{
		Pascal: Capitalize(name),
		Camel:  Camelize(name),
	}, nil
}

// Context returns the render context shared by the module's templates.
func (n ModuleNames) Context() templates.Context {
	return templates.Context{
		"moduleName":      n.Pascal,
		"camelModuleName": n.Camel,
	}
}

// Dir returns the module directory relative to the project root.
func (n ModuleNames) Dir() string {
	return path.Join(ModulesDir, n.Pascal)
}

// ModuleTasks returns the six tasks of a module, in order.
func ModuleTasks(n ModuleNames) []Task {
	tasks := make([]Task, 0, len(ModuleKinds))
	for _, kind := range ModuleKinds {
		tasks = append(tasks, Task{
			Template: templates.Ref("module/" + kind + ".ts.tmpl"),
			Dest:     path.Join(n.Dir(), n.Camel+"."+kind+".ts"),
		})
	}
	return tasks
}

// GenerateModule writes the module files for raw under the writer's base.
func (g *Generator) GenerateModule(raw string) (ModuleNames, []string, error) {
	names, err := NewModuleNames(raw)
	if err != nil {
		return ModuleNames{}, nil, err
	}

	written, err := g.Run(ModuleTasks(names), names.Context())
	return names, written, err
}
