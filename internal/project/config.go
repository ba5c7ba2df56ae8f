// Package project defines the project configuration threaded through the
// scaffolding pipeline together with its name, platform and package manager
// rules.
package project

import (
	"path/filepath"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
)

// Config describes one project to create.
type Config struct {
	// ProjectName is the human-entered display and directory name.
	ProjectName string

	// PackageName is the machine name written to the manifests.
	// Derived from ProjectName when empty.
	PackageName string

	// Framework is the registered framework identifier.
	Framework string

	// ReleaseOS lists the platforms the CI workflow builds for.
	ReleaseOS []Platform

	// Overwrite allows clearing a non-empty target directory.
	Overwrite bool

	// TargetDirectory is where the project is created. Relative paths are
	// resolved against the working directory during preparation.
	TargetDirectory string

	// PackageManager selects the commands shown after creation.
	PackageManager PackageManager
}

// WithDefaults returns a copy of c with derived fields filled in: the package
// name from the project name, the target directory from the project name and
// the default package manager. Explicit values are kept. Repeated release
// platforms collapse to their first occurrence.
func (c Config) WithDefaults() Config {
	c.ProjectName = strings.TrimSpace(c.ProjectName)
	c.ReleaseOS = uniquePlatforms(c.ReleaseOS)
	if c.PackageName == "" {
		c.PackageName = ToValidPackageName(c.ProjectName)
	}
	c.TargetDirectory = FormatTargetDirectory(c.TargetDirectory)
	if c.TargetDirectory == "" {
		c.TargetDirectory = c.ProjectName
	}
	if c.PackageManager == "" {
		c.PackageManager = DefaultPackageManager
	}
	return c
}

// Validate checks the fields that must hold before anything touches the
// filesystem. Framework membership is checked by the template registry.
func (c Config) Validate() error {
	if err := ValidateProjectName(c.ProjectName); err != nil {
		return err
	}
	if err := ValidatePackageName(c.PackageName); err != nil {
		return err
	}
	if len(c.ReleaseOS) == 0 {
		return oerrors.NewValidationError("no release platforms selected", "platforms",
			"Select at least one of: "+strings.Join(PlatformIDs(), ", "))
	}
	for _, p := range c.ReleaseOS {
		if _, ok := LookupPlatform(p.ID); !ok {
			return oerrors.NewValidationError("unknown platform "+p.ID, "platforms",
				"Select at least one of: "+strings.Join(PlatformIDs(), ", "))
		}
	}
	if _, err := ParsePackageManager(string(c.PackageManager)); err != nil {
		return err
	}
	return nil
}

func uniquePlatforms(ps []Platform) []Platform {
	if ps == nil {
		return nil
	}
	out := make([]Platform, 0, len(ps))
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

// NextSteps returns the commands a user runs after creation. The cd step is
// relative to cwd when possible and omitted when the project is cwd.
func NextSteps(c Config, cwd string) []string {
	var steps []string

	dir := c.TargetDirectory
	if cwd != "" && filepath.IsAbs(dir) {
		if rel, err := filepath.Rel(cwd, dir); err == nil && !strings.HasPrefix(rel, "..") {
			dir = rel
		}
	}
	if dir != "." && dir != "" {
		if strings.ContainsAny(dir, " \t") {
			dir = `"` + dir + `"`
		}
		steps = append(steps, "cd "+dir)
	}

	pm := c.PackageManager
	if pm == "" {
		pm = DefaultPackageManager
	}
	steps = append(steps, pm.InstallCommand(), pm.RunCommand("tauri dev"))
	return steps
}
