package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
)

// renames maps template file names to the names written to the target.
// Ignore files are stored without their dot so packaging tools keep them.
var renames = map[string]string{
	"gitignore": ".gitignore",
}

// deferredNames are config files the rewriter produces instead of a copy.
var deferredNames = map[string]bool{
	"package.json":    true,
	"tauri.conf.json": true,
	"Cargo.toml":      true,
}

// RenamedPath applies the rename table to the last element of a slash
// separated path.
func RenamedPath(p string) string {
	dir, base := path.Split(p)
	if to, ok := renames[base]; ok {
		return dir + to
	}
	return p
}

// Materialize writes the framework's template into targetDir, which must
// already exist. src is rooted at the templates root.
func Materialize(src fs.FS, fw Framework, targetDir string) (*Result, error) {
	if fw.Mode == ModeArchive {
		return extractArchive(src, fw, targetDir)
	}

	if err := requireDir(src, fw.Path, fw.Name); err != nil {
		return nil, err
	}

	result := &Result{Deferred: make(map[string]string)}

	output.Debug("copying framework template", "framework", fw.Name, "source", fw.Path)
	if err := copyTree(src, fw.Path, targetDir, result, true); err != nil {
		return nil, err
	}

	if fw.UseOverlay {
		if err := requireDir(src, OverlayDir, fw.Name); err != nil {
			return nil, err
		}
		output.Debug("copying shared overlay", "source", OverlayDir)
		if err := copyTree(src, OverlayDir, targetDir, result, false); err != nil {
			return nil, err
		}
	}

	result.Files = sortedUnique(result.Files)
	return result, nil
}

// ListTemplateFiles returns the target-relative files a framework produces,
// sorted. Deferred config files are included.
func ListTemplateFiles(src fs.FS, fw Framework) ([]string, error) {
	if fw.Mode == ModeArchive {
		return listArchive(src, fw)
	}

	if err := requireDir(src, fw.Path, fw.Name); err != nil {
		return nil, err
	}
	files, err := walkFiles(src, fw.Path)
	if err != nil {
		return nil, err
	}
	for i, f := range files {
		files[i] = RenamedPath(f)
	}

	if fw.UseOverlay {
		if err := requireDir(src, OverlayDir, fw.Name); err != nil {
			return nil, err
		}
		overlay, err := walkFiles(src, OverlayDir)
		if err != nil {
			return nil, err
		}
		files = append(files, overlay...)
	}
	return sortedUnique(files), nil
}

// copyTree copies root into targetDir. For the framework tree, deferred
// config files are recorded in result instead of copied and the rename table
// is applied. The overlay is copied verbatim.
func copyTree(src fs.FS, root, targetDir string, result *Result, frameworkTree bool) error {
	return fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := relTo(root, p)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(targetDir, filepath.FromSlash(rel)), 0o755)
		}

		if frameworkTree {
			if deferredNames[d.Name()] {
				output.Debug("deferring config file", "path", rel)
				result.Deferred[rel] = p
				return nil
			}
			rel = RenamedPath(rel)
		}
		if err := copyFile(src, p, filepath.Join(targetDir, filepath.FromSlash(rel))); err != nil {
			return err
		}
		result.Files = append(result.Files, rel)
		return nil
	})
}

func copyFile(src fs.FS, from, to string) error {
	content, err := fs.ReadFile(src, from)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", from, err)
	}
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", to, err)
	}
	if err := os.WriteFile(to, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", to, err)
	}
	return nil
}

// walkFiles returns the files under root, relative to root.
func walkFiles(src fs.FS, root string) ([]string, error) {
	var files []string
	err := fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, relTo(root, p))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	return files, nil
}

// requireDir returns a template-not-found error unless dir is a directory
// in src.
func requireDir(src fs.FS, dir, framework string) error {
	info, err := fs.Stat(src, dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return oerrors.NewTemplateNotFoundError(framework, dir)
	}
	if err != nil {
		return fmt.Errorf("checking template %s: %w", dir, err)
	}
	return nil
}

// relTo returns p relative to root. Both are slash separated fs.FS paths.
func relTo(root, p string) string {
	if p == root {
		return "."
	}
	return p[len(root)+1:]
}

func sortedUnique(in []string) []string {
	slices.Sort(in)
	return slices.Compact(in)
}
