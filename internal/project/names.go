package project

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
)

// packageNameRegex is the npm package name grammar: an optional @scope/
// prefix followed by a lowercase name that does not start with "." or "_".
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z0-9\-*~][a-z0-9\-*._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

var (
	whitespaceRun          = regexp.MustCompile(`\s+`)
	leadingDotOrUnderscore = regexp.MustCompile(`^[._]`)
	invalidRun             = regexp.MustCompile(`[^a-z0-9\-~]+`)
)

// IsValidPackageName reports whether name is a valid package name.
func IsValidPackageName(name string) bool {
	return packageNameRegex.MatchString(name)
}

// ToValidPackageName normalizes a display name into a candidate package name.
// The result is not guaranteed to be valid; check it with IsValidPackageName.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrUnderscore.ReplaceAllString(s, "")
	return invalidRun.ReplaceAllString(s, "-")
}

// FormatTargetDirectory trims whitespace and trailing path separators.
// An empty result tells the caller to substitute a default.
func FormatTargetDirectory(path string) string {
	return strings.TrimRight(strings.TrimSpace(path), `/\`)
}

// ValidateProjectName checks that a project name is present.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return oerrors.NewValidationError("project name cannot be empty", "project-name",
			"Pass a project name, e.g. 'tauristart create my-app'.")
	}
	return nil
}

// ValidatePackageName checks a package name against the package grammar.
func ValidatePackageName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("package name cannot be empty", "package-name",
			"Pass --package-name or use a project name containing letters or digits.")
	}
	if !IsValidPackageName(name) {
		hint := "Use lowercase letters, digits, '-', '.', '_' or '~'; it must not start with '.' or '_'."
		if suggestion := ToValidPackageName(name); suggestion != name && IsValidPackageName(suggestion) {
			hint = fmt.Sprintf("Try %q.", suggestion)
		}
		return oerrors.NewValidationError(fmt.Sprintf("invalid package name %q", name), "package-name", hint)
	}
	return nil
}
