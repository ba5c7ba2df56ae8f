package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tauristart/cli/internal/errors"
)

func TestLookupPlatform(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"by id", "linux", "linux", true},
		{"by runner", "ubuntu-latest", "linux", true},
		{"case insensitive", "MacOS", "macos", true},
		{"padded", " windows ", "windows", true},
		{"unknown", "freebsd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupPlatform(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestParsePlatforms(t *testing.T) {
	ps, err := ParsePlatforms([]string{"linux,windows", "linux", "macos-latest"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ubuntu-latest", "windows-latest", "macos-latest"}, Runners(ps))
}

func TestParsePlatforms_Empty(t *testing.T) {
	ps, err := ParsePlatforms([]string{"", " , "})
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestParsePlatforms_Unknown(t *testing.T) {
	_, err := ParsePlatforms([]string{"linux,amiga"})
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "amiga")
}

func TestExcludedPlatforms(t *testing.T) {
	selected, err := ParsePlatforms([]string{"windows", "linux"})
	require.NoError(t, err)

	excluded := ExcludedPlatforms(selected)
	require.Len(t, excluded, 1)
	assert.Equal(t, "macos-latest", excluded[0].Runner)

	assert.Empty(t, ExcludedPlatforms(Platforms()))
}

func TestPlatforms_ReturnsCopy(t *testing.T) {
	ps := Platforms()
	ps[0].ID = "changed"
	assert.Equal(t, "windows", Platforms()[0].ID)
}
