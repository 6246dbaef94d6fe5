package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/testutil"
)

func TestNewPrismaCmd(t *testing.T) {
	c := NewPrismaCmd(nil)

	assert.Equal(t, "prisma <action>", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.Equal(t, []string{"generate", "migrate"}, c.ValidArgs)
}

func TestPrisma_Actions(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"generate", "npx prisma generate"},
		{"migrate", "npx prisma migrate dev"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			home := isolateEnv(t)
			root := t.TempDir()
			fake := testutil.NewFakeExecutor()
			useExecutor(t, fake)

			out, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
				"--project-root", root, "prisma", tt.action)
			require.NoError(t, err)

			require.Len(t, fake.Streamed(), 1)
			assert.Equal(t, tt.want, fake.Streamed()[0].String())
			assert.Equal(t, root, fake.Streamed()[0].Dir)
			assert.Contains(t, out, "prisma "+tt.action+" complete")
		})
	}
}

func TestPrisma_UnknownAction(t *testing.T) {
	home := isolateEnv(t)
	fake := testutil.NewFakeExecutor()
	useExecutor(t, fake)

	_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
		"--project-root", t.TempDir(), "prisma", "studio")
	requireExitCode(t, err, oerrors.ExitValidationError)
	assert.Contains(t, err.Error(), "generate, migrate")
	assert.Empty(t, fake.Streamed())
}

func TestPrisma_CommandFails(t *testing.T) {
	home := isolateEnv(t)
	fake := testutil.NewFakeExecutor()
	fake.StreamExitCodes["npx prisma migrate dev"] = 1
	useExecutor(t, fake)

	_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
		"--project-root", t.TempDir(), "prisma", "migrate")
	requireExitCode(t, err, oerrors.ExitExternalCommandError)
}
