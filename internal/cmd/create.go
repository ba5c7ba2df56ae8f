package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tauristart/cli/internal/cmdtypes"
	"github.com/tauristart/cli/internal/cmdutil"
	"github.com/tauristart/cli/internal/config"
	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/project"
	"github.com/tauristart/cli/internal/scaffold"
	"github.com/tauristart/cli/internal/templates"
)

// userAgentEnv is set by npm, yarn and pnpm when they launch a binary.
const userAgentEnv = "npm_config_user_agent"

// NewCreateCmd creates the create command.
func NewCreateCmd(globals *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.ProjectFlags

	c := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new project",
		Long: `Create a new desktop application project.

The project is materialized from the selected framework template, then
package.json, src-tauri/tauri.conf.json, src-tauri/Cargo.toml and
.github/workflows/release.yml are rewritten for the project name and the
selected release platforms.

Frameworks: ` + strings.Join(templates.Names(), ", ") + `
Platforms:  ` + strings.Join(project.PlatformIDs(), ", ") + `

Values are resolved in order: flag, TAURISTART_* environment variable,
config file, default.

Examples:
  # Create a React project in ./my-app
  tauristart create my-app

  # Create a SvelteKit project that only releases for Linux and macOS
  tauristart create my-app -f sveltekit -p linux,macos

  # Recreate an existing project directory
  tauristart create my-app --overwrite`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, globals, &flags)
		},
	}

	flags.AddTo(c)
	return c
}

func runCreate(c *cobra.Command, args []string, globals *cmdtypes.GlobalConfig, flags *cmdutil.ProjectFlags) error {
	name := cmdutil.ResolveProjectName(args, flags.Dir)
	if name == "" {
		return cmdutil.ExitWithError("cannot create project", oerrors.NewValidationError(
			"project name is required", "project-name",
			"Pass a name, for example: tauristart create my-app",
		))
	}

	cfg, templatesDir, err := buildProjectConfig(name, flags, globals)
	if err != nil {
		return cmdutil.ExitWithError("cannot create project", err)
	}

	src, err := cmdutil.TemplateSource(templatesDir)
	if err != nil {
		return cmdutil.ExitWithError("cannot create project", err)
	}

	var result *scaffold.Result
	err = output.RunWithSpinner(c.Context(), "Creating "+name, func() error {
		var runErr error
		result, runErr = scaffold.Run(c.Context(), scaffold.Options{
			Config:    cfg,
			Templates: src,
		})
		return runErr
	})
	if err != nil {
		return cmdutil.ExitWithError("create failed", err)
	}

	verbose := globals != nil && globals.Verbose
	cmdutil.PrintCreateResult(c.OutOrStdout(), result, verbose)
	return nil
}

// buildProjectConfig resolves every create setting and parses it into a
// project.Config plus the templates directory. An empty platform selection
// is backfilled with all platforms.
func buildProjectConfig(name string, flags *cmdutil.ProjectFlags, globals *cmdtypes.GlobalConfig) (project.Config, string, error) {
	var fileCfg *config.Config
	if globals != nil {
		fileCfg = globals.Config
	}

	detected := project.DetectPackageManager(os.Getenv(userAgentEnv))
	settings := config.ResolveSettings(config.Flags{
		PackageManager: flags.PackageManager,
		Framework:      flags.Framework,
		Platforms:      flags.Platforms,
		TemplatesDir:   flags.TemplatesDir,
	}, fileCfg, string(detected))
	config.LogResolvedValues(settings.Values())

	pm, err := project.ParsePackageManager(settings.PackageManager.Value)
	if err != nil {
		return project.Config{}, "", err
	}
	platforms, err := project.ParsePlatforms(settings.Platforms())
	if err != nil {
		return project.Config{}, "", err
	}
	if len(platforms) == 0 {
		output.Debug("no release platforms selected, using all")
		platforms = project.Platforms()
	}

	return project.Config{
		ProjectName:     name,
		PackageName:     flags.PackageName,
		Framework:       settings.Framework.Value,
		ReleaseOS:       platforms,
		Overwrite:       flags.Overwrite,
		TargetDirectory: flags.Dir,
		PackageManager:  pm,
	}, settings.TemplatesDir.Value, nil
}
