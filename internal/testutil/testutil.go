// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolatedEnv lists the variables that change CLI behavior.
var isolatedEnv = []string{
	"TAURISTART_CONFIG",
	"TAURISTART_PACKAGE_MANAGER",
	"TAURISTART_FRAMEWORK",
	"TAURISTART_RELEASE_OS",
	"TAURISTART_TEMPLATES_DIR",
	"TAURISTART_LOG_TIMESTAMPS",
	"npm_config_user_agent",
}

// IsolateEnv points HOME at a fresh temporary directory and clears every
// variable the CLI reads. It returns the new home directory.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range isolatedEnv {
		t.Setenv(key, "")
	}
	return home
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of the slash separated path rel under dir.
func ReadFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Snapshot returns every file under dir keyed by slash separated path.
// Entries under .git are skipped.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", dir, err)
	}
	return files
}

// CopyFS copies every file of fsys into a new temporary directory and
// returns its path. Paths with a prefix in skip are left out.
func CopyFS(t *testing.T, fsys fs.FS, skip ...string) string {
	t.Helper()
	dst := t.TempDir()

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		for _, prefix := range skip {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dstPath, 0o755)
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		return os.WriteFile(dstPath, data, 0o644)
	})
	if err != nil {
		t.Fatalf("failed to copy templates: %v", err)
	}
	return dst
}
