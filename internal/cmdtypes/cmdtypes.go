// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/tauristart/cli/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file. Never nil after PersistentPreRunE;
	// empty when no file exists.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ConfigSource records where ConfigPath came from.
	ConfigSource config.ConfigSource

	// Verbose is the --verbose flag.
	Verbose bool
}
