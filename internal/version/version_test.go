package version

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apollo-gears/cli/internal/testutil"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.Platform, "Platform should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
		Platform:  "linux/amd64",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "linux/amd64")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		want      string
		wantMajor int
		wantErr   bool
	}{
		{name: "standard", output: "v22.11.0\n", want: "v22.11.0", wantMajor: 22},
		{name: "no prefix", output: "20.1.0", want: "v20.1.0", wantMajor: 20},
		{name: "prerelease", output: "v23.0.0-nightly2024", want: "v23.0.0-nightly2024", wantMajor: 23},
		{name: "garbage", output: "command not found", wantErr: true},
		{name: "empty", output: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, major, err := extractVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMajor, major)
		})
	}
}

func TestDetectNode(t *testing.T) {
	t.Run("not installed", func(t *testing.T) {
		info := DetectNode(context.Background(), testutil.NewFakeExecutor())
		assert.False(t, info.Found)
		assert.Contains(t, info.String(), "not found")
	})

	t.Run("supported", func(t *testing.T) {
		fake := testutil.NewFakeExecutor().
			Install("node").
			Respond("/usr/local/bin/node --version", "v22.11.0\n")

		info := DetectNode(context.Background(), fake)
		assert.True(t, info.Found)
		assert.True(t, info.Supported)
		assert.Equal(t, "v22.11.0", info.Version)
		assert.Equal(t, "/usr/local/bin/node", info.Path)
		assert.Contains(t, info.String(), "supported")
	})

	t.Run("too old", func(t *testing.T) {
		fake := testutil.NewFakeExecutor().
			Install("node").
			Respond("/usr/local/bin/node --version", "v16.20.2\n")

		info := DetectNode(context.Background(), fake)
		assert.True(t, info.Found)
		assert.False(t, info.Supported)
		assert.Contains(t, info.String(), "requires v18")
	})

	t.Run("version fails", func(t *testing.T) {
		fake := testutil.NewFakeExecutor().Install("node")

		info := DetectNode(context.Background(), fake)
		assert.True(t, info.Found)
		assert.False(t, info.Supported)
		assert.Contains(t, info.Message, "failed to get node version")
	})
}

func TestFullVersionString(t *testing.T) {
	s := FullVersionString(Get(), NodeInfo{Found: true, Supported: true, Version: "v22.0.0", Path: "/bin/node"})
	assert.Contains(t, s, "apollo CLI:")
	assert.Contains(t, s, "Node.js:")
	assert.Contains(t, s, "v22.0.0")
}
