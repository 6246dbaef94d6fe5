package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apollo-gears/cli/internal/config"
	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/output"
	"github.com/apollo-gears/cli/internal/toolrunner"
)

// prismaActions maps each action to the npx arguments it runs.
var prismaActions = map[string][]string{
	"generate": {"prisma", "generate"},
	"migrate":  {"prisma", "migrate", "dev"},
}

// PrismaActions returns the valid prisma actions, sorted.
func PrismaActions() []string {
	actions := make([]string, 0, len(prismaActions))
	for a := range prismaActions {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}

// NewPrismaCmd creates the prisma command.
func NewPrismaCmd(gc *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "prisma <action>",
		Short: "Run Prisma tasks in the project",
		Long: `Run Prisma tasks in the project root.

Actions:
  generate  Generate the Prisma client (npx prisma generate)
  migrate   Create and apply a development migration (npx prisma migrate dev)

Examples:
  # Regenerate the client after editing prisma/schema.prisma
  apollo prisma generate

  # Apply schema changes to the development database
  apollo prisma migrate`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: PrismaActions(),
		RunE: func(c *cobra.Command, args []string) error {
			return runPrisma(c, args[0], gc)
		},
	}
}

func runPrisma(c *cobra.Command, action string, gc *config.GlobalConfig) error {
	npxArgs, ok := prismaActions[action]
	if !ok {
		return fail(oerrors.NewValidationError(
			fmt.Sprintf("unknown prisma action %q", action), "",
			"Valid actions: "+strings.Join(PrismaActions(), ", ")))
	}

	command := toolrunner.NewCommand(gc.ProjectRoot, "npx", npxArgs...)
	output.Info("running " + command.String())
	if err := newExecutor().Stream(c.Context(), command); err != nil {
		return fail(err)
	}

	output.Println(output.FormatCheckmark("prisma " + action + " complete"))
	return nil
}
