package cmdutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tauristart/cli/internal/errors"
)

func TestTemplateSource_Embedded(t *testing.T) {
	src, err := TemplateSource("")
	require.NoError(t, err)

	_, err = fs.Stat(src, "react/package.json")
	assert.NoError(t, err)
}

func TestTemplateSource_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "react"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "react", "index.html"), []byte("<html></html>"), 0o644))

	src, err := TemplateSource(dir)
	require.NoError(t, err)

	data, err := fs.ReadFile(src, "react/index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestTemplateSource_Missing(t *testing.T) {
	_, err := TemplateSource(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = TemplateSource(file)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}
