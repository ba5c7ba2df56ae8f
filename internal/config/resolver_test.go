package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		config     string
		def        string
		wantValue  string
		wantSource ConfigSource
		wantShadow []ConfigSource
	}{
		{"flag wins", "vue", "sveltekit", "nextjs", "react", "vue", SourceFlag, []ConfigSource{SourceEnv, SourceConfig, SourceDefault}},
		{"env over config", "", "sveltekit", "nextjs", "react", "sveltekit", SourceEnv, []ConfigSource{SourceConfig, SourceDefault}},
		{"config over default", "", "", "nextjs", "react", "nextjs", SourceConfig, []ConfigSource{SourceDefault}},
		{"default", "", "", "", "react", "react", SourceDefault, nil},
		{"nothing set", "", "", "", "", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFramework, tt.env)

			got := Resolve("framework", tt.flag, EnvFramework, tt.config, tt.def)

			assert.Equal(t, "framework", got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Len(t, got.Shadowed, len(tt.wantShadow))
			for _, s := range tt.wantShadow {
				assert.Contains(t, got.Shadowed, s)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		got, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".tauristart", "config.yaml"), got.ConfigPath)
		assert.Equal(t, SourceDefault, got.Source)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		got, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", got.ConfigPath)
		assert.Equal(t, SourceEnv, got.Source)
	})

	t.Run("flag shadows env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		got, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", got.ConfigPath)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
	})
}

func TestResolveSettings(t *testing.T) {
	t.Setenv(EnvPackageManager, "")
	t.Setenv(EnvFramework, "")
	t.Setenv(EnvReleaseOS, "linux")
	t.Setenv(EnvTemplatesDir, "")

	cfg := &Config{
		PackageManager: "yarn",
		Framework:      "vue",
		ReleaseOS:      []string{"macos"},
	}
	settings := ResolveSettings(Flags{Framework: "sveltekit"}, cfg, "pnpm")

	assert.Equal(t, "yarn", settings.PackageManager.Value)
	assert.Equal(t, SourceConfig, settings.PackageManager.Source)
	assert.Equal(t, "sveltekit", settings.Framework.Value)
	assert.Equal(t, SourceFlag, settings.Framework.Source)
	assert.Equal(t, []string{"linux"}, settings.Platforms())
	assert.Equal(t, SourceEnv, settings.ReleaseOS.Source)
	assert.Empty(t, settings.TemplatesDir.Value)
	assert.Len(t, settings.Values(), 4)
}

func TestResolveSettings_Defaults(t *testing.T) {
	t.Setenv(EnvPackageManager, "")
	t.Setenv(EnvFramework, "")
	t.Setenv(EnvReleaseOS, "")
	t.Setenv(EnvTemplatesDir, "")

	settings := ResolveSettings(Flags{}, nil, "npm")

	assert.Equal(t, "npm", settings.PackageManager.Value)
	assert.Equal(t, "react", settings.Framework.Value)
	assert.Equal(t, []string{"windows", "macos", "linux"}, settings.Platforms())
	assert.Equal(t, SourceDefault, settings.ReleaseOS.Source)
}

func TestResolveSettings_FlagPlatformsJoined(t *testing.T) {
	t.Setenv(EnvReleaseOS, "")

	settings := ResolveSettings(Flags{Platforms: []string{"linux", "windows"}}, nil, "npm")

	assert.Equal(t, "linux,windows", settings.ReleaseOS.Value)
	assert.Equal(t, []string{"linux", "windows"}, settings.Platforms())
}

func TestResolveTimestamps(t *testing.T) {
	off := false
	cfg := &Config{Log: LogConfig{Timestamps: &off}}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvLogTimestamps, "false")
		got := ResolveTimestamps(true, true, cfg)
		require.NotNil(t, got)
		assert.True(t, *got)
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv(EnvLogTimestamps, "true")
		got := ResolveTimestamps(false, false, cfg)
		require.NotNil(t, got)
		assert.True(t, *got)
	})

	t.Run("invalid env falls through to config", func(t *testing.T) {
		t.Setenv(EnvLogTimestamps, "sometimes")
		got := ResolveTimestamps(false, false, cfg)
		require.NotNil(t, got)
		assert.False(t, *got)
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvLogTimestamps, "")
		assert.Nil(t, ResolveTimestamps(false, false, nil))
	})
}
