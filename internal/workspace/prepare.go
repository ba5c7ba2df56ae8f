// Package workspace prepares the directory a project is created in.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
)

// vcsDir is the only entry that survives an overwrite and does not count
// toward a directory's contents.
const vcsDir = ".git"

// IsDirectoryEmpty reports whether dir has no entries, or only a .git entry.
func IsDirectoryEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	switch len(entries) {
	case 0:
		return true, nil
	case 1:
		return entries[0].Name() == vcsDir, nil
	default:
		return false, nil
	}
}

// Prepare makes dir ready for materialization and returns its absolute path.
//
// A missing directory is created with its parents. An existing directory that
// is not empty fails with a target-not-empty error unless overwrite is set,
// in which case everything except .git is removed.
func Prepare(dir string, overwrite bool) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		output.Debug("creating target directory", "path", abs)
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", abs, err)
		}
		return abs, nil
	case err != nil:
		return "", fmt.Errorf("checking %s: %w", abs, err)
	case !info.IsDir():
		return "", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "target exists and is not a directory",
			Location: abs,
			Field:    "dir",
			Hint:     "Choose another --dir or remove the file.",
			Cause:    oerrors.ErrValidation,
		}
	}

	empty, err := IsDirectoryEmpty(abs)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", abs, err)
	}
	if empty {
		output.Debug("target directory is empty", "path", abs)
		return abs, nil
	}
	if !overwrite {
		return "", oerrors.NewTargetNotEmptyError(abs)
	}

	output.Debug("clearing target directory", "path", abs)
	if err := Clear(abs); err != nil {
		return "", err
	}
	return abs, nil
}

// Clear removes every entry of dir except .git. The directory itself stays.
func Clear(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.Name() == vcsDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", e.Name(), err)
		}
	}
	return nil
}
