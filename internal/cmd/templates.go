package cmd

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/cmdutil"
	"github.com/tauristart/cli/internal/config"
	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/templates"
)

// frameworkInfo is the json/yaml shape of one listed framework.
type frameworkInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Label   string   `json:"label" yaml:"label"`
	Mode    string   `json:"mode" yaml:"mode"`
	Path    string   `json:"path" yaml:"path"`
	Overlay bool     `json:"overlay" yaml:"overlay"`
	Default bool     `json:"default" yaml:"default"`
	Files   []string `json:"files,omitempty" yaml:"files,omitempty"`
}

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(globals *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		outputFlags  cmdutil.OutputFlags
		filesFlag    string
		templatesDir string
	)

	c := &cobra.Command{
		Use:   "templates",
		Short: "List available framework templates",
		Long: `List the frameworks the create command can scaffold.

With --files, print the files a framework produces instead.

Examples:
  # List frameworks
  tauristart templates

  # Show the files of the Vue template
  tauristart templates --files vue

  # Machine-readable listing
  tauristart templates -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(outputFlags.Format)
			if err != nil {
				return cmdutil.ExitWithError("cannot list templates", err)
			}

			var fileDir string
			if globals != nil && globals.Config != nil {
				fileDir = globals.Config.TemplatesDir
			}
			dir := config.Resolve("templatesDir", templatesDir, config.EnvTemplatesDir, fileDir, "")
			src, err := cmdutil.TemplateSource(dir.Value)
			if err != nil {
				return cmdutil.ExitWithError("cannot list templates", err)
			}

			if filesFlag != "" {
				return runTemplateFiles(c, src, filesFlag, format)
			}
			return runTemplateList(c, format)
		},
	}

	outputFlags.AddTo(c)
	c.Flags().StringVar(&filesFlag, "files", "", "Show the files produced by this framework")
	c.Flags().StringVar(&templatesDir, "templates-dir", "", "Read templates from this directory instead of the built-in set")

	return c
}

func runTemplateList(c *cobra.Command, format output.Format) error {
	frameworks := templates.List()

	if format != output.FormatTable {
		infos := make([]frameworkInfo, 0, len(frameworks))
		for _, fw := range frameworks {
			infos = append(infos, toFrameworkInfo(fw, nil))
		}
		return output.WriteData(c.OutOrStdout(), infos, format)
	}

	tbl := output.NewTable("NAME", "LABEL", "MODE", "OVERLAY", "DEFAULT")
	for _, fw := range frameworks {
		def := ""
		if fw.Default {
			def = "*"
		}
		tbl.Row(fw.Name, fw.Label, fw.Mode.String(), strconv.FormatBool(fw.UseOverlay), def)
	}
	fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return nil
}

func runTemplateFiles(c *cobra.Command, src fs.FS, name string, format output.Format) error {
	fw, err := templates.Get(name)
	if err != nil {
		return cmdutil.ExitWithError("cannot list template files", err)
	}
	files, err := templates.ListTemplateFiles(src, fw)
	if err != nil {
		return cmdutil.ExitWithError("cannot list template files", err)
	}

	if format != output.FormatTable {
		return output.WriteData(c.OutOrStdout(), toFrameworkInfo(fw, files), format)
	}

	entries := make([]output.TreeEntry, len(files))
	for i, f := range files {
		entries[i] = output.TreeEntry{Path: f}
	}
	fmt.Fprint(c.OutOrStdout(), output.RenderFileTree(fw.Name, entries))
	return nil
}

func toFrameworkInfo(fw templates.Framework, files []string) frameworkInfo {
	return frameworkInfo{
		Name:    fw.Name,
		Label:   fw.Label,
		Mode:    fw.Mode.String(),
		Path:    fw.Path,
		Overlay: fw.UseOverlay,
		Default: fw.Default,
		Files:   files,
	}
}
