// Package generator turns template tasks into files on disk.
package generator

import (
	"fmt"

	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/templates"
)

// Task renders one template to one destination.
type Task struct {
	Template templates.Ref

	// Dest is relative to the writer's base unless absolute.
	Dest string
}

// Generator runs tasks against a resolver and a writer.
type Generator struct {
	resolver *templates.Resolver
	writer   *templates.Writer
}

// New creates a generator.
func New(resolver *templates.Resolver, writer *templates.Writer) *Generator {
	return &Generator{resolver: resolver, writer: writer}
}

// Writer returns the writer files are written through.
func (g *Generator) Writer() *templates.Writer {
	return g.writer
}

// Run executes tasks in order with a shared context and stops at the first
// failure. Files written before the failure are kept. The returned paths are
// relative to the writer's base, including on error.
func (g *Generator) Run(tasks []Task, ctx templates.Context) ([]string, error) {
	written := make([]string, 0, len(tasks))

	for _, task := range tasks {
		rel, err := g.runTask(task, ctx)
		if err != nil {
			return written, err
		}
		written = append(written, rel)
	}

	return written, nil
}

func (g *Generator) runTask(task Task, ctx templates.Context) (string, error) {
	src, err := g.resolver.Resolve(task.Template)
	if err != nil {
		return "", err
	}

	// Rendered fully before the destination is touched.
	content, err := templates.RenderSource(src, ctx)
	if err != nil {
		return "", err
	}

	rel, err := g.writer.Write(task.Dest, []byte(content))
	if err != nil {
		return "", fmt.Errorf("generating %s: %w", task.Dest, err)
	}

	output.Debug("generated file", "template", src.Location, "path", rel)
	return rel, nil
}
