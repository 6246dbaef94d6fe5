package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)

	assert.True(t, cfg.Install)
	assert.True(t, cfg.PrismaInit)
	assert.True(t, cfg.VersionLookup)

	// Auto-detect by default
	assert.Empty(t, cfg.PackageManager)
	assert.Empty(t, cfg.TemplatePaths)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "defaults",
			cfg:  *DefaultConfig(),
		},
		{
			name: "known package manager",
			cfg:  Config{PackageManager: "pnpm"},
		},
		{
			name:    "unknown package manager",
			cfg:     Config{PackageManager: "bun"},
			wantErr: "packageManager",
		},
		{
			name:    "blank template path",
			cfg:     Config{TemplatePaths: []string{"/ok", "  "}},
			wantErr: "templatePaths[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
