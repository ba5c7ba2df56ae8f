package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tauristart/cli/internal/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMode Mode
		overlay  bool
		wantErr  bool
	}{
		{"react", "react", ModeDirectory, true, false},
		{"vue", "vue", ModeDirectory, true, false},
		{"sveltekit has no overlay", "sveltekit", ModeDirectory, false, false},
		{"nextjs is an archive", "nextjs", ModeArchive, false, false},
		{"case sensitive", "React", 0, false, true},
		{"unknown", "angular", 0, false, true},
		{"empty", "", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw, err := Get(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				assert.False(t, IsValid(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, fw.Name)
			assert.Equal(t, tt.wantMode, fw.Mode)
			assert.Equal(t, tt.overlay, fw.UseOverlay)
			assert.True(t, IsValid(tt.input))
		})
	}
}

func TestGet_UnknownListsValidNames(t *testing.T) {
	_, err := Get("angular")
	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "framework", detail.Field)
	assert.Contains(t, detail.Hint, "react, vue, sveltekit, nextjs")
}

func TestGetDefault(t *testing.T) {
	fw := GetDefault()
	assert.Equal(t, DefaultFrameworkName, fw.Name)
	assert.True(t, fw.Default)

	defaults := 0
	for _, f := range List() {
		if f.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"react", "vue", "sveltekit", "nextjs"}, Names())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "directory", ModeDirectory.String())
	assert.Equal(t, "archive", ModeArchive.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
