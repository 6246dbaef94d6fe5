package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my-app", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("my-app", map[string]string{
		"package.json":        "Package manifest",
		"src/server.ts":       "Server bootstrap",
		"src/config/index.ts": "Environment config",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "my-app/", lines[0])
	assert.Equal(t, "├── src/", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "│   ├── config/"))
	assert.True(t, strings.HasPrefix(lines[3], "│   │   └── index.ts"))
	assert.Contains(t, lines[3], "Environment config")
	assert.True(t, strings.HasPrefix(lines[4], "│   └── server.ts"))
	assert.True(t, strings.HasPrefix(lines[5], "└── package.json"))
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("User", []string{"user.service.ts", "user.controller.ts"})

	assert.Equal(t, "User/\n├── user.controller.ts\n└── user.service.ts\n", out)
}
