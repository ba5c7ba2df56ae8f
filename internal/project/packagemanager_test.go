package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tauristart/cli/internal/errors"
)

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		input   string
		want    PackageManager
		wantErr bool
	}{
		{"", NPM, false},
		{"npm", NPM, false},
		{"Yarn", Yarn, false},
		{" pnpm ", PNPM, false},
		{"bun", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePackageManager(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectPackageManager(t *testing.T) {
	tests := []struct {
		agent string
		want  PackageManager
	}{
		{"pnpm/8.6.0 npm/? node/v18.16.0 linux x64", PNPM},
		{"yarn/1.22.19 npm/? node/v18.16.0 darwin arm64", Yarn},
		{"npm/9.5.1 node/v18.16.0 linux x64 workspaces/false", NPM},
		{"bun/1.0.0", NPM},
		{"", NPM},
	}

	for _, tt := range tests {
		t.Run(tt.agent, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPackageManager(tt.agent))
		})
	}
}

func TestPackageManagerCommands(t *testing.T) {
	assert.Equal(t, "npm install", NPM.InstallCommand())
	assert.Equal(t, "yarn", Yarn.InstallCommand())
	assert.Equal(t, "pnpm install", PNPM.InstallCommand())

	assert.Equal(t, "npm run tauri dev", NPM.RunCommand("tauri dev"))
	assert.Equal(t, "yarn tauri dev", Yarn.RunCommand("tauri dev"))
	assert.Equal(t, "pnpm tauri dev", PNPM.RunCommand("tauri dev"))
}
