package pkgmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Manager
		wantErr bool
	}{
		{in: "npm", want: NPM},
		{in: "pnpm", want: PNPM},
		{in: "yarn", want: Yarn},
		{in: "", want: ""},
		{in: "bun", wantErr: true},
		{in: "NPM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManager_Commands(t *testing.T) {
	tests := []struct {
		m       Manager
		install string
		dev     string
	}{
		{NPM, "npm install", "npm run dev"},
		{PNPM, "pnpm install", "pnpm dev"},
		{Yarn, "yarn", "yarn dev"},
	}

	for _, tt := range tests {
		t.Run(string(tt.m), func(t *testing.T) {
			assert.Equal(t, tt.install, tt.m.InstallLine())
			assert.Equal(t, tt.dev, tt.m.DevLine())

			cmd := tt.m.InstallCommand("/work/app")
			assert.Equal(t, "/work/app", cmd.Dir)
			assert.Equal(t, string(tt.m), cmd.Name)
		})
	}
}

func TestDetector_Detect(t *testing.T) {
	fake := testutil.NewFakeExecutor().
		Respond("npm --version", "10.9.2\n").
		Respond("yarn --version", "1.22.22\n")

	d := NewDetector(fake)

	assert.Equal(t, []Manager{NPM, Yarn}, d.Detect(context.Background()))
	assert.True(t, d.IsInstalled(context.Background(), Yarn))
	assert.False(t, d.IsInstalled(context.Background(), PNPM))
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		preferred Manager
		available []Manager
		want      Manager
	}{
		{"preference wins", Yarn, []Manager{NPM, PNPM}, Yarn},
		{"first available", "", []Manager{PNPM, Yarn}, PNPM},
		{"nothing installed", "", nil, NPM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.preferred, tt.available))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]Manager{NPM, Yarn}, Yarn))
	assert.False(t, Contains([]Manager{NPM}, PNPM))
	assert.False(t, Contains(nil, NPM))
}
