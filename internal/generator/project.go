package generator

import (
	"github.com/apollo-gears/cli/internal/templates"
)

// TSConfigTask renders tsconfig.json.
var TSConfigTask = Task{Template: "project/tsconfig.json.tmpl", Dest: "tsconfig.json"}

// ProjectTasks are the source files of a new project, in generation order.
var ProjectTasks = []Task{
	{Template: "project/server.ts.tmpl", Dest: "src/server.ts"},
	{Template: "project/app.ts.tmpl", Dest: "src/app.ts"},
	{Template: "project/config.ts.tmpl", Dest: "src/config/index.ts"},
	{Template: "project/env.tmpl", Dest: ".env"},
	{Template: "project/schema.prisma.tmpl", Dest: "prisma/schema.prisma"},
	{Template: "project/gitignore.tmpl", Dest: ".gitignore"},
	{Template: "project/prisma.ts.tmpl", Dest: "src/lib/prisma.ts"},
}

// ScaffoldDirs are created empty in every new project.
var ScaffoldDirs = []string{
	"src/modules",
	"src/middlewares",
	"src/routes",
	"src/utils",
	"src/errors",
	"src/config",
	"src/lib",
}

// ProjectContext returns the render context for project templates.
func ProjectContext(projectName string) templates.Context {
	return templates.Context{"projectName": projectName}
}

// GenerateTSConfig writes tsconfig.json.
func (g *Generator) GenerateTSConfig(projectName string) ([]string, error) {
	return g.Run([]Task{TSConfigTask}, ProjectContext(projectName))
}

// GenerateProjectFiles writes the project source files.
func (g *Generator) GenerateProjectFiles(projectName string) ([]string, error) {
	return g.Run(ProjectTasks, ProjectContext(projectName))
}
