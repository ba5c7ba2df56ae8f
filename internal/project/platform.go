package project

import (
	"fmt"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
)

// Platform is a release target operating system.
type Platform struct {
	// ID is the identifier used on the command line and in config files.
	ID string

	// Label is the display name.
	Label string

	// Runner is the CI runner label that builds for this platform.
	Runner string
}

// platforms is the static platform registry, in CI matrix order.
var platforms = []Platform{
	{ID: "windows", Label: "Windows", Runner: "windows-latest"},
	{ID: "macos", Label: "macOS", Runner: "macos-latest"},
	{ID: "linux", Label: "Linux", Runner: "ubuntu-latest"},
}

// Platforms returns every known platform.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// PlatformIDs returns the identifiers of every known platform.
func PlatformIDs() []string {
	ids := make([]string, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	return ids
}

// LookupPlatform finds a platform by identifier or runner label.
// Matching is case-insensitive.
func LookupPlatform(name string) (Platform, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range platforms {
		if p.ID == name || p.Runner == name {
			return p, true
		}
	}
	return Platform{}, false
}

// ParsePlatforms resolves platform names, dropping duplicates while keeping
// the first-seen order. Each value may itself be a comma separated list.
func ParsePlatforms(values []string) ([]Platform, error) {
	var out []Platform
	seen := make(map[string]bool)
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			p, ok := LookupPlatform(name)
			if !ok {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("unknown platform %q", strings.TrimSpace(name)),
					"platforms",
					fmt.Sprintf("Valid platforms: %s", strings.Join(PlatformIDs(), ", ")),
				)
			}
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// Runners returns the runner labels of ps, in order.
func Runners(ps []Platform) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Runner
	}
	return out
}

// ExcludedPlatforms returns the known platforms missing from selected,
// in registry order.
func ExcludedPlatforms(selected []Platform) []Platform {
	chosen := make(map[string]bool, len(selected))
	for _, p := range selected {
		chosen[p.ID] = true
	}
	var out []Platform
	for _, p := range platforms {
		if !chosen[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
