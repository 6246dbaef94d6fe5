package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apollo-gears/cli/internal/errors"
)

func TestWriter_Write(t *testing.T) {
	t.Run("creates missing parents", func(t *testing.T) {
		base := t.TempDir()
		w := NewWriter(base)

		rel, err := w.Write("src/modules/User/user.controller.ts", []byte("content"))
		require.NoError(t, err)
		assert.Equal(t, "src/modules/User/user.controller.ts", rel)

		data, err := os.ReadFile(filepath.Join(base, "src", "modules", "User", "user.controller.ts"))
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("absolute destination overwrites", func(t *testing.T) {
		base := t.TempDir()
		w := NewWriter(base)
		dest := filepath.Join(base, "a.txt")

		_, err := w.Write(dest, []byte("old"))
		require.NoError(t, err)
		rel, err := w.Write(dest, []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, "a.txt", rel)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("parent is a file", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "blocker"), []byte("x"), 0o644))

		_, err := NewWriter(base).Write("blocker/child.ts", []byte("content"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrWriteFailed)
	})
}

func TestWriter_Rel(t *testing.T) {
	w := NewWriter("/work/project")
	assert.Equal(t, "src/app.ts", w.Rel("/work/project/src/app.ts"))
	assert.Equal(t, "../other/x.ts", w.Rel("/work/other/x.ts"))
}
