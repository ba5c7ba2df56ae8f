// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/tauristart/cli/internal/cmd/config"
	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/config"
	"github.com/tauristart/cli/internal/output"
)

// rootFlags holds the persistent flags of one root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the tauristart CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	globals := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "tauristart",
		Short: "Scaffold desktop apps from a web frontend and a native shell",
		Long: `tauristart creates a new desktop application project from a bundled
framework template, renames it, and configures its release workflow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, &flags, globals)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: TAURISTART_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd(globals))
	rootCmd.AddCommand(NewTemplatesCmd(globals))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(globals))
	rootCmd.AddCommand(NewVersionCmd(globals))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, globals *cmdtypes.GlobalConfig) error {
	pathResult, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(pathResult.ConfigPath)
	if err != nil {
		// Commands that do not need config still work; config vet reports it.
		output.Warn("ignoring unreadable config file", "path", pathResult.ConfigPath, "error", err)
		cfg = &config.Config{}
	}
	if err := config.ValidateConfig(cfg); err != nil {
		output.Warn("config file has invalid values", "path", pathResult.ConfigPath)
		output.Details(err.Error())
	}

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: config.ResolveTimestamps(cmd.Flags().Changed("timestamps"), flags.timestamps, cfg),
	})

	globals.Config = cfg
	globals.ConfigPath = pathResult.ConfigPath
	globals.ConfigSource = pathResult.Source
	globals.Verbose = flags.verbose

	output.Debug("initializing CLI",
		"config", pathResult.ConfigPath,
		"source", pathResult.Source,
		"command", cmd.CommandPath(),
	)
	return nil
}
