package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/cmdutil"
	"github.com/tauristart/cli/internal/config"
	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a tauristart configuration file with default values.

The file is created at ~/.tauristart/config.yaml unless --config or
TAURISTART_CONFIG points elsewhere. It sets:
  - packageManager  package manager used in next-step commands
  - framework       framework used when --framework is not given
  - releaseOS       platforms the release workflow builds for
  - log.timestamps  timestamps in log output

Examples:
  # Initialize configuration
  tauristart config init

  # Overwrite existing configuration
  tauristart config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.ExitWithError("cannot initialize configuration",
			oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"))
	}
	path, err = config.ExpandPath(path)
	if err != nil {
		return cmdutil.ExitWithError("cannot initialize configuration", err)
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return cmdutil.ExitWithError("cannot initialize configuration", err)
	}
	if exists && !force {
		return cmdutil.ExitWithError("cannot initialize configuration", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return cmdutil.ExitWithError("cannot initialize configuration", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.ExitWithError("cannot initialize configuration",
			fmt.Errorf("creating config directory: %w", err))
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return cmdutil.ExitWithError("cannot initialize configuration",
			fmt.Errorf("writing config file: %w", err))
	}

	output.Debug("configuration written", "path", path, "bytes", len(data))
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(c.OutOrStdout(), "Validate with: tauristart config vet")
	return nil
}
