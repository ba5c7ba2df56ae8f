package project

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tauristart/cli/internal/errors"
)

func TestIsValidPackageName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "demo-app", true},
		{"digits", "123", true},
		{"tilde start", "~tilde", true},
		{"dots and underscores inside", "my.app_name", true},
		{"scoped", "@acme/demo", true},
		{"scope with star", "@*scope/pkg", true},
		{"scope with dot inside", "@my.org/x", true},
		{"uppercase", "MyApp", false},
		{"leading dot", ".hidden", false},
		{"leading underscore", "_private", false},
		{"space", "my app", false},
		{"empty", "", false},
		{"scope without name", "@acme/", false},
		{"scope leading dot", "@.acme/demo", false},
		{"bang", "app!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPackageName(tt.input))
		})
	}
}

func TestIsValidPackageName_AcceptedNamesAreLowercase(t *testing.T) {
	grammarChars := regexp.MustCompile(`^[a-z0-9\-._~@/*]+$`)
	for _, name := range []string{"demo-app", "@acme/demo", "a.b_c~d", "x"} {
		require.True(t, IsValidPackageName(name))
		assert.Equal(t, name, strings.ToLower(name))
		assert.Regexp(t, grammarChars, name)
	}
}

func TestToValidPackageName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Awesome App!!", "my-awesome-app-"},
		{"  Hello   World  ", "hello-world"},
		{".dotfile", "dotfile"},
		{"_under", "under"},
		{"Café Menu", "caf--menu"},
		{"a@b#c", "a-b-c"},
		{"tab\tsep", "tab-sep"},
		{"keep~tilde", "keep~tilde"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToValidPackageName(tt.input))
		})
	}
}

func TestToValidPackageName_Idempotent(t *testing.T) {
	inputs := []string{"My Awesome App!!", "..double", "__x", " @scope/Name ", "ÄÖÜ", "a  b\n c", "~~"}
	for _, in := range inputs {
		once := ToValidPackageName(in)
		assert.Equal(t, once, ToValidPackageName(once), "input %q", in)
	}
}

func TestToValidPackageName_ProducesValidName(t *testing.T) {
	got := ToValidPackageName("My Awesome App!!")
	assert.True(t, IsValidPackageName(got), "got %q", got)
}

func TestFormatTargetDirectory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  my-app/// ", "my-app"},
		{"a/b/", "a/b"},
		{"   ", ""},
		{"", ""},
		{`win\dir\`, `win\dir`},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTargetDirectory(tt.input))
		})
	}
}

func TestValidatePackageName(t *testing.T) {
	assert.NoError(t, ValidatePackageName("demo-app"))

	err := ValidatePackageName("")
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	err = ValidatePackageName("My App")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "package-name", detail.Field)
	assert.Contains(t, detail.Hint, `"my-app"`)
}

func TestValidateProjectName(t *testing.T) {
	assert.NoError(t, ValidateProjectName("Demo"))
	assert.ErrorIs(t, ValidateProjectName("   "), oerrors.ErrValidation)
}
