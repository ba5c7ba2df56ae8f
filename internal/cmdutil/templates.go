package cmdutil

import (
	"io/fs"
	"os"

	"github.com/tauristart/cli/internal/config"
	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/templates"
)

// TemplateSource returns the templates root for dir. An empty dir selects
// the built-in templates; otherwise dir must be an existing directory.
func TemplateSource(dir string) (fs.FS, error) {
	if dir == "" {
		return templates.Embedded(), nil
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(expanded)
	if err != nil || !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			"templates directory not found",
			expanded,
			"Point --templates-dir at a directory with one folder per framework",
		)
	}

	output.Debug("using templates directory", "path", expanded)
	return templates.Source(expanded), nil
}
