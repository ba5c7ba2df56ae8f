package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show tauristart version information.

Displays:
  - tauristart version, commit, and build date
  - Go version and platform the binary was built for`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.Get()
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "tauristart version %s\n", info.Version)
	fmt.Fprintf(w, "  Commit:    %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)
	fmt.Fprintf(w, "  Platform:  %s\n", info.Platform)
	if info.IsDevBuild() {
		fmt.Fprintln(w, "  Channel:   development")
	}

	return nil
}
