package templates

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tauristart/cli/internal/errors"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"react/package.json":                  file(`{"name":"tauri-app"}`),
		"react/gitignore":                     file("node_modules\n"),
		"react/src/main.tsx":                  file("main"),
		"react/src/nested/gitignore":          file("nested\n"),
		"react/src-tauri/tauri.conf.json":     file(`{"productName":"x"}`),
		".base/src-tauri/Cargo.toml":          file("[package]\nname = \"tauri-app\"\n"),
		".base/src-tauri/src/main.rs":         file("fn main() {}\n"),
		".base/.github/workflows/release.yml": file("platform: [macos-latest, ubuntu-latest, windows-latest]\n"),
		"solo/package.json":                   file(`{}`),
		"solo/index.html":                     file("<html>"),
		"solo/src-tauri/Cargo.toml":           file("[package]\nname = \"solo\"\n"),
		"overlay-missing/README.md":           file("x"),
		"plain-file.txt":                      file("plain file"),
	}
}

func readTarget(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestMaterialize_DirectoryModeWithOverlay(t *testing.T) {
	target := t.TempDir()
	fw := Framework{Name: "react", Mode: ModeDirectory, Path: "react", UseOverlay: true}

	result, err := Materialize(testTemplates(), fw, target)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".github/workflows/release.yml",
		".gitignore",
		"src-tauri/Cargo.toml",
		"src-tauri/src/main.rs",
		"src/main.tsx",
		"src/nested/.gitignore",
	}, result.Files)

	assert.Equal(t, map[string]string{
		"package.json":              "react/package.json",
		"src-tauri/tauri.conf.json": "react/src-tauri/tauri.conf.json",
	}, result.Deferred)

	assert.Equal(t, "node_modules\n", readTarget(t, target, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(target, "gitignore"))
	assert.NoFileExists(t, filepath.Join(target, "package.json"))
	assert.NoFileExists(t, filepath.Join(target, "src-tauri", "tauri.conf.json"))
	assert.Contains(t, readTarget(t, target, "src-tauri/Cargo.toml"), `name = "tauri-app"`)
}

func TestMaterialize_DirectoryModeWithoutOverlay(t *testing.T) {
	target := t.TempDir()
	fw := Framework{Name: "solo", Mode: ModeDirectory, Path: "solo"}

	result, err := Materialize(testTemplates(), fw, target)
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html"}, result.Files)
	assert.Equal(t, "solo/src-tauri/Cargo.toml", result.Deferred["src-tauri/Cargo.toml"])
	assert.NoDirExists(t, filepath.Join(target, ".github"))
	assert.DirExists(t, filepath.Join(target, "src-tauri"), "directories are still created")
}

func TestMaterialize_OverwritesExistingFiles(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "index.html"), []byte("stale"), 0o644))

	_, err := Materialize(testTemplates(), Framework{Name: "solo", Path: "solo"}, target)
	require.NoError(t, err)
	assert.Equal(t, "<html>", readTarget(t, target, "index.html"))
}

func TestMaterialize_TemplateNotFound(t *testing.T) {
	tests := []struct {
		name string
		fw   Framework
	}{
		{"missing directory", Framework{Name: "angular", Path: "angular"}},
		{"path is a file", Framework{Name: "odd", Path: "plain-file.txt"}},
		{"missing overlay", Framework{Name: "x", Path: "overlay-missing", UseOverlay: true}},
		{"missing archive", Framework{Name: "nextjs", Mode: ModeArchive, Path: "nextjs.zip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := testTemplates()
			delete(src, ".base/src-tauri/Cargo.toml")
			delete(src, ".base/src-tauri/src/main.rs")
			delete(src, ".base/.github/workflows/release.yml")

			_, err := Materialize(src, tt.fw, t.TempDir())
			assert.ErrorIs(t, err, oerrors.ErrTemplateNotFound)
			assert.ErrorIs(t, err, oerrors.ErrNotFound)
		})
	}
}

func TestListTemplateFiles(t *testing.T) {
	files, err := ListTemplateFiles(testTemplates(), Framework{Name: "react", Path: "react", UseOverlay: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		".github/workflows/release.yml",
		".gitignore",
		"package.json",
		"src-tauri/Cargo.toml",
		"src-tauri/src/main.rs",
		"src-tauri/tauri.conf.json",
		"src/main.tsx",
		"src/nested/.gitignore",
	}, files)
}

func TestRenamedPath(t *testing.T) {
	assert.Equal(t, ".gitignore", RenamedPath("gitignore"))
	assert.Equal(t, "a/b/.gitignore", RenamedPath("a/b/gitignore"))
	assert.Equal(t, "a/gitignore.bak", RenamedPath("a/gitignore.bak"))
	assert.Equal(t, "gitignore/x", RenamedPath("gitignore/x"))
}

func TestMaterialize_EmbeddedTemplates(t *testing.T) {
	for _, fw := range List() {
		t.Run(fw.Name, func(t *testing.T) {
			target := t.TempDir()
			result, err := Materialize(Embedded(), fw, target)
			require.NoError(t, err)

			assert.FileExists(t, filepath.Join(target, ".gitignore"))
			assert.FileExists(t, filepath.Join(target, ".github", "workflows", "release.yml"))
			for rel := range result.Deferred {
				assert.NoFileExists(t, filepath.Join(target, filepath.FromSlash(rel)))
			}
		})
	}
}
