package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/testutil"
)

func TestNewGenerateCmd(t *testing.T) {
	c := NewGenerateCmd(nil)

	assert.Equal(t, "generate <type> <name>", c.Use)
	assert.Equal(t, []string{"g"}, c.Aliases)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
}

func TestGenerate_Module(t *testing.T) {
	home := isolateEnv(t)
	root := t.TempDir()

	out, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
		"--project-root", root, "generate", "module", "user")
	require.NoError(t, err)

	for _, kind := range []string{"controller", "service", "route", "interface", "validation", "constant"} {
		rel := "src/modules/User/user." + kind + ".ts"
		assert.True(t, testutil.Exists(root, rel), "missing %s", rel)
		assert.Contains(t, out, rel)
	}
	assert.Contains(t, testutil.ReadFile(t, root, "src/modules/User/user.controller.ts"), "User")
	assert.Contains(t, out, "Module User generated")
}

func TestGenerate_Alias(t *testing.T) {
	home := isolateEnv(t)
	root := t.TempDir()

	_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
		"--project-root", root, "g", "module", "Product")
	require.NoError(t, err)

	assert.True(t, testutil.Exists(root, "src/modules/Product/product.service.ts"))
}

func TestGenerate_UserTemplatesWin(t *testing.T) {
	home := isolateEnv(t)
	root := t.TempDir()
	tplDir := t.TempDir()
	testutil.WriteFile(t, tplDir, "module/controller.ts.tmpl", "// custom {{ .moduleName }} {{ .camelModuleName }}\n")

	_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
		"--project-root", root, "--templates", tplDir, "g", "module", "order")
	require.NoError(t, err)

	assert.Equal(t, "// custom Order order\n", testutil.ReadFile(t, root, "src/modules/Order/order.controller.ts"))
	// Kinds the user root lacks still come from the bundled set.
	assert.True(t, testutil.Exists(root, "src/modules/Order/order.route.ts"))
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown type", []string{"g", "service", "user"}, oerrors.ExitValidationError},
		{"blank name", []string{"g", "module", "  "}, oerrors.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolateEnv(t)
			root := t.TempDir()

			args := append([]string{"--config", filepath.Join(home, "none.yaml"), "--project-root", root}, tt.args...)
			_, err := executeRoot(t, args...)
			requireExitCode(t, err, tt.code)
			assert.False(t, testutil.Exists(root, "src"))
		})
	}
}

func TestGenerate_BrokenTemplate(t *testing.T) {
	home := isolateEnv(t)
	root := t.TempDir()
	// A broken project-local template fails rendering before anything is written.
	testutil.WriteFile(t, root, ".apollo/templates/module/controller.ts.tmpl", "{{ .unknownKey }}")

	_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"),
		"--project-root", root, "g", "module", "user")
	requireExitCode(t, err, oerrors.ExitTemplateError)
	assert.False(t, testutil.Exists(root, "src/modules/User/user.controller.ts"))
}

func TestGenerate_WrongArgCount(t *testing.T) {
	home := isolateEnv(t)

	_, err := executeRoot(t, "--config", filepath.Join(home, "none.yaml"), "g", "module")
	assert.Error(t, err)
}
