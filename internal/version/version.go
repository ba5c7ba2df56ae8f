// Package version provides version information for the tauristart CLI.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// Platform is the GOOS/GOARCH pair the binary runs on.
	Platform string `json:"platform"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Semver parses Version. A leading "v" is accepted.
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", i.Version, err)
	}
	return v, nil
}

// IsDevBuild reports whether the binary is a development or pre-release
// build. Versions that do not parse count as development builds.
func (i Info) IsDevBuild() bool {
	v, err := i.Semver()
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}

// Satisfies reports whether the version meets a constraint such as ">= 1.2".
func (i Info) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := i.Semver()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

// String returns a human-readable version string.
func (i Info) String() string {
	s := fmt.Sprintf("tauristart:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s (%s)",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.Platform)
	if i.IsDevBuild() {
		s += "\n  Channel:  development"
	}
	return s
}
