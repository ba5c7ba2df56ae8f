// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the tauristart CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path, or the default location when
// the command runs without the root command's PersistentPreRunE.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return cfg.ConfigPath, nil
	}
	result, err := config.ResolveConfigPath("")
	if err != nil {
		return "", err
	}
	return result.ConfigPath, nil
}
