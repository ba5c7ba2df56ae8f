// Package cmdutil provides shared command utilities: flag groups, template
// source resolution and result/error printing.
package cmdutil

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/project"
)

// ProjectFlags holds the flags that describe the project to create.
type ProjectFlags struct {
	Framework      string
	PackageName    string
	Dir            string
	Platforms      []string
	Overwrite      bool
	PackageManager string
	TemplatesDir   string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Framework, "framework", "f", "",
		"Frontend framework (default: from config, then react)")
	cmd.Flags().StringVar(&f.PackageName, "package-name", "",
		"Package name (default: derived from the project name)")
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", "",
		"Target directory (default: the project name)")
	cmd.Flags().StringSliceVarP(&f.Platforms, "platforms", "p", nil,
		"Release platforms: windows, macos, linux (can be repeated)")
	cmd.Flags().BoolVar(&f.Overwrite, "overwrite", false,
		"Remove existing content in the target directory")
	cmd.Flags().StringVarP(&f.PackageManager, "package-manager", "m", "",
		"Package manager for next steps: npm, yarn, pnpm (default: detected)")
	cmd.Flags().StringVar(&f.TemplatesDir, "templates-dir", "",
		"Read templates from this directory instead of the built-in set")
}

// OutputFlags holds the --output flag of listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
}

// ResolveProjectName returns the project name from command args, falling
// back to the last element of dir.
func ResolveProjectName(args []string, dir string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	dir = project.FormatTargetDirectory(dir)
	if dir == "" {
		return ""
	}
	base := filepath.Base(dir)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}
