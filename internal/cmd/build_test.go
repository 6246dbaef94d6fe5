package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/testutil"
)

func TestBuild_CompilesAndCopies(t *testing.T) {
	home := isolateEnv(t)
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{"name":"shop"}`)
	testutil.WriteFile(t, root, ".env", "PORT=3000\n")
	testutil.WriteFile(t, root, "dist/stale.js", "old")
	fake := testutil.NewFakeExecutor()
	useExecutor(t, fake)

	out, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"), "--project-root", root, "build")
	require.NoError(t, err)

	assert.Equal(t, []string{"npx tsc"}, fake.StreamedLines())
	assert.False(t, testutil.Exists(root, "dist/stale.js"))
	assert.Equal(t, `{"name":"shop"}`, testutil.ReadFile(t, root, "dist/package.json"))
	assert.True(t, testutil.Exists(root, "dist/.env"))
	assert.False(t, testutil.Exists(root, "dist/package-lock.json"))
	assert.Contains(t, out, "Build complete")
}

func TestBuild_Errors(t *testing.T) {
	t.Run("no package.json", func(t *testing.T) {
		home := isolateEnv(t)
		fake := testutil.NewFakeExecutor()
		useExecutor(t, fake)

		_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"), "--project-root", t.TempDir(), "build")
		requireExitCode(t, err, oerrors.ExitGeneralError)
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
		assert.Empty(t, fake.Streamed())
	})

	t.Run("tsc fails", func(t *testing.T) {
		home := isolateEnv(t)
		root := t.TempDir()
		testutil.WriteFile(t, root, "package.json", "{}")
		fake := testutil.NewFakeExecutor()
		fake.StreamExitCodes["npx tsc"] = 2
		useExecutor(t, fake)

		_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"), "--project-root", root, "build")
		requireExitCode(t, err, oerrors.ExitExternalCommandError)
		assert.False(t, testutil.Exists(root, "dist/package.json"))
	})
}
