package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		valid       bool
		wantPath    string
		wantKeyword string
	}{
		{"empty document", "", true, "", ""},
		{"full config", "packageManager: yarn\nframework: nextjs\nreleaseOS: [linux, macos-latest]\nlog:\n  timestamps: false\n", true, "", ""},
		{"unknown framework", "framework: angular\n", false, "/framework", "enum"},
		{"unknown package manager", "packageManager: bun\n", false, "/packageManager", "enum"},
		{"unknown platform", "releaseOS: [linux, beos]\n", false, "/releaseOS/1", "enum"},
		{"empty platform list", "releaseOS: []\n", false, "/releaseOS", "minItems"},
		{"duplicate platforms", "releaseOS: [linux, linux]\n", false, "/releaseOS", "uniqueItems"},
		{"unknown key", "registry: example.com\n", false, "", "additionalProperties"},
		{"wrong type", "log:\n  timestamps: yes please\n", false, "/log/timestamps", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "issues: %v", result.Issues)
			if tt.valid {
				assert.NoError(t, result.Err())
				return
			}
			require.NotEmpty(t, result.Issues)
			assert.Equal(t, tt.wantPath, result.Issues[0].Path)
			assert.Equal(t, tt.wantKeyword, result.Issues[0].Keyword)
			assert.NotEmpty(t, result.Issues[0].Message)
			assert.Contains(t, result.Err().Error(), "config validation failed")
		})
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	_, err := Validate([]byte("framework: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("framework: vue\n"), 0o600))

	result, err := ValidateFile(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	_, err = ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(DefaultConfig()))
	assert.NoError(t, ValidateConfig(&Config{}))

	err := ValidateConfig(&Config{
		PackageManager: "bun",
		Framework:      "angular",
		ReleaseOS:      []string{"linux", "beos"},
	})
	require.Error(t, err)

	var issues ValidationErrors
	require.ErrorAs(t, err, &issues)
	require.Len(t, issues, 3)
	assert.Equal(t, "/packageManager", issues[0].Path)
	assert.Equal(t, "/framework", issues[1].Path)
	assert.Equal(t, "/releaseOS/1", issues[2].Path)
}
