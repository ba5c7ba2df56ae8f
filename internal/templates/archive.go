package templates

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
)

// openArchive reads the framework archive from src.
func openArchive(src fs.FS, fw Framework) (*zip.Reader, error) {
	data, err := fs.ReadFile(src, fw.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewTemplateNotFoundError(fw.Name, fw.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", fw.Path, err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, oerrors.NewExtractionError(fw.Path, err)
	}
	return zr, nil
}

// extractArchive unpacks the framework archive into targetDir, overwriting
// existing files, then applies the rename table to the extracted tree.
// A failure may leave targetDir partially populated.
func extractArchive(src fs.FS, fw Framework, targetDir string) (*Result, error) {
	zr, err := openArchive(src, fw)
	if err != nil {
		return nil, err
	}

	output.Debug("extracting framework archive", "framework", fw.Name, "archive", fw.Path, "entries", len(zr.File))

	var files []string
	for _, f := range zr.File {
		name, err := entryName(f)
		if err != nil {
			return nil, oerrors.NewExtractionError(fw.Path, err)
		}
		if name == "" {
			continue
		}
		if err := extractEntry(f, filepath.Join(targetDir, filepath.FromSlash(name))); err != nil {
			return nil, oerrors.NewExtractionError(fw.Path, err)
		}
		if !f.FileInfo().IsDir() {
			files = append(files, name)
		}
	}

	if err := renameExtracted(targetDir); err != nil {
		return nil, err
	}

	for i, name := range files {
		files[i] = RenamedPath(name)
	}

	return &Result{
		Files:    sortedUnique(files),
		Deferred: map[string]string{},
	}, nil
}

// listArchive returns the target-relative files the archive produces.
func listArchive(src fs.FS, fw Framework) ([]string, error) {
	zr, err := openArchive(src, fw)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, f := range zr.File {
		name, err := entryName(f)
		if err != nil {
			return nil, oerrors.NewExtractionError(fw.Path, err)
		}
		if name == "" || f.FileInfo().IsDir() {
			continue
		}
		files = append(files, RenamedPath(name))
	}
	return sortedUnique(files), nil
}

// entryName returns the cleaned slash separated path of a zip entry, or an
// error when the entry would land outside the extraction root. The archive
// root itself yields "".
func entryName(f *zip.File) (string, error) {
	name := strings.TrimSuffix(path.Clean(strings.ReplaceAll(f.Name, `\`, "/")), "/")
	if name == "." {
		return "", nil
	}
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", fmt.Errorf("entry %q escapes the target directory", f.Name)
	}
	if f.Mode()&fs.ModeSymlink != 0 {
		return "", fmt.Errorf("entry %q is a symlink", f.Name)
	}
	return name, nil
}

func extractEntry(f *zip.File, dest string) error {
	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("writing %s: %w", f.Name, err)
	}
	return out.Close()
}

// renameExtracted walks targetDir and renames every file matching the rename
// table in place. The .git directory is not searched.
func renameExtracted(targetDir string) error {
	return filepath.WalkDir(targetDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" && p != targetDir {
				return filepath.SkipDir
			}
			return nil
		}
		to, ok := renames[d.Name()]
		if !ok {
			return nil
		}
		dest := filepath.Join(filepath.Dir(p), to)
		output.Debug("renaming extracted file", "from", p, "to", dest)
		if err := os.Rename(p, dest); err != nil {
			return fmt.Errorf("renaming %s: %w", p, err)
		}
		return nil
	})
}
