package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/pkgmanager"
	"github.com/apollo-gears/cli/internal/project"
)

// initOptions holds the flags for the init command.
type initOptions struct {
	packageManager string
	skipInstall    bool
	skipPrisma     bool
	offline        bool
}

// fileDescriptions annotates the generated project tree.
var fileDescriptions = map[string]string{
	"package.json":         "Dependencies and scripts",
	"tsconfig.json":        "TypeScript compiler options",
	"src/server.ts":        "HTTP server entry point",
	"src/app.ts":           "Express application",
	"src/config/index.ts":  "Environment configuration",
	"src/lib/prisma.ts":    "Prisma client",
	".env":                 "Local environment variables",
	"prisma/schema.prisma": "Database schema",
	".gitignore":           "Git ignore rules",
}

// NewInitCmd creates the init command.
func NewInitCmd(gc *config.GlobalConfig) *cobra.Command {
	opts := &initOptions{}

	c := &cobra.Command{
		Use:   "init [project-name]",
		Short: "Create a new backend project",
		Long: fmt.Sprintf(`Create a new TypeScript backend project.

The project directory is created under the project root (default: the
current directory). init then:
  1. Looks up the latest version of every dependency on the npm registry
  2. Writes package.json and tsconfig.json
  3. Creates the src/ folder layout
  4. Runs "npx prisma init" for a PostgreSQL datasource
  5. Renders the server, app, config and Prisma client sources
  6. Installs dependencies with the selected package manager

The package manager is chosen from --package-manager, then the
packageManager config value, then the first one installed (%s), then npm.

Examples:
  # Create my-apollo-app in the current directory
  apollo init

  # Create "shop" using pnpm
  apollo init shop -p pnpm

  # Only write files, without network access or installs
  apollo init shop --offline --skip-prisma --skip-install`, strings.Join(pkgmanager.Names(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := project.DefaultName
			if len(args) == 1 {
				name = args[0]
			}
			return runInit(c, name, opts, gc)
		},
	}

	c.Flags().StringVarP(&opts.packageManager, "package-manager", "p", "",
		fmt.Sprintf("Package manager to use (%s, env: APOLLO_PACKAGE_MANAGER)", strings.Join(pkgmanager.Names(), ", ")))
	c.Flags().BoolVar(&opts.skipInstall, "skip-install", false,
		"Do not install dependencies")
	c.Flags().BoolVar(&opts.skipPrisma, "skip-prisma", false,
		"Do not run prisma init")
	c.Flags().BoolVar(&opts.offline, "offline", false,
		"Skip registry version lookups and pin every dependency to latest")

	return c
}

func runInit(c *cobra.Command, name string, opts *initOptions, gc *config.GlobalConfig) error {
	cfg := gc.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	pmValue := gc.PackageManager
	if opts.packageManager != "" {
		pmValue = opts.packageManager
	}
	pm, err := pkgmanager.Parse(pmValue)
	if err != nil {
		return fail(err)
	}

	initializer := project.NewInitializer(newExecutor(), newTemplateResolver(gc))
	result, err := initializer.Init(c.Context(), project.Options{
		Name:           name,
		ParentDir:      gc.ProjectRoot,
		PackageManager: pm,
		Install:        cfg.Install && !opts.skipInstall,
		PrismaInit:     cfg.PrismaInit && !opts.skipPrisma,
		VersionLookup:  cfg.VersionLookup && !opts.offline,
	})
	if err != nil {
		return fail(err)
	}

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = fileDescriptions[f]
	}
	output.Println(output.RenderFileTree(result.Name, files))
	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Project %s created", output.StyleNoun.Render(result.Name))))
	output.Println("")
	output.Print(output.FormatNextSteps(result.NextSteps...))

	return nil
}
