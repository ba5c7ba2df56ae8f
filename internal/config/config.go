// Package config provides configuration loading and management.
package config

import (
	"github.com/tauristart/cli/internal/project"
	"github.com/tauristart/cli/internal/templates"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the tauristart configuration file.
// Loaded from ~/.tauristart/config.yaml.
type Config struct {
	// PackageManager is used for next-step commands.
	// Env: TAURISTART_PACKAGE_MANAGER, Default: detected from the npm user agent, then npm
	PackageManager string `json:"packageManager,omitempty" yaml:"packageManager,omitempty" mapstructure:"packageManager"`

	// Framework is the framework used when --framework is not given.
	// Env: TAURISTART_FRAMEWORK, Default: react
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty" mapstructure:"framework"`

	// ReleaseOS lists the platforms the release workflow builds for.
	// Env: TAURISTART_RELEASE_OS (comma separated), Default: all platforms
	ReleaseOS []string `json:"releaseOS,omitempty" yaml:"releaseOS,omitempty" mapstructure:"releaseOS"`

	// TemplatesDir replaces the embedded templates with a directory on disk.
	// Env: TAURISTART_TEMPLATES_DIR
	TemplatesDir string `json:"templatesDir,omitempty" yaml:"templatesDir,omitempty" mapstructure:"templatesDir"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `tauristart config init` to generate initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		PackageManager: string(project.DefaultPackageManager),
		Framework:      templates.DefaultFrameworkName,
		ReleaseOS:      project.PlatformIDs(),
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
