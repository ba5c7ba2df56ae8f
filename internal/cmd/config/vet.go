package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/cmdutil"
	"github.com/tauristart/cli/internal/config"
	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the tauristart configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Config matches the configuration schema (known keys, frameworks,
     package managers and platforms)

The config path is resolved using precedence:
  --config flag > TAURISTART_CONFIG env > ~/.tauristart/config.yaml

Examples:
  # Validate default configuration
  tauristart config vet

  # Validate custom config path
  tauristart config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.ExitWithError("cannot validate configuration",
			oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path"))
	}
	path, err = config.ExpandPath(path)
	if err != nil {
		return cmdutil.ExitWithError("cannot validate configuration", err)
	}

	output.Debug("validating config", "path", path)

	exists, err := config.FileExists(path)
	if err != nil {
		return cmdutil.ExitWithError("cannot validate configuration", err)
	}
	if !exists {
		return cmdutil.ExitWithError("cannot validate configuration",
			oerrors.NewNotFoundError("configuration file not found", path,
				"Run 'tauristart config init' to create default configuration"))
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		return cmdutil.ExitWithError("cannot validate configuration", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		})
	}
	if !result.Valid {
		output.Error("config validation failed", "path", path)
		for _, issue := range result.Issues {
			output.Details(issue.String())
		}
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     result.Err(),
			Printed: true,
		}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}
