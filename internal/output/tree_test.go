package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("demo", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("demo", []TreeEntry{
		{Path: "package.json", Description: "Package manifest"},
		{Path: "src-tauri/Cargo.toml"},
		{Path: "src-tauri/tauri.conf.json"},
		{Path: ".gitignore"},
		{Path: "src/main.tsx"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "demo/")
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, lines[2], "main.tsx")
	assert.Contains(t, lines[3], "src-tauri/")
	assert.Contains(t, lines[4], "Cargo.toml")
	assert.Contains(t, lines[5], "tauri.conf.json")
	assert.Contains(t, lines[6], ".gitignore")
	assert.Contains(t, lines[7], "package.json")
	assert.Contains(t, lines[7], "Package manifest")
	assert.True(t, strings.HasPrefix(lines[7], treeLast))
}

func TestRenderFileTree_NestedPrefixes(t *testing.T) {
	out := RenderFileTree("demo", []TreeEntry{
		{Path: "a/b/c.txt"},
		{Path: "z.txt"},
	})

	assert.Contains(t, out, treeEdge+"a/")
	assert.Contains(t, out, treeVert+treeLast+"b/")
	assert.Contains(t, out, treeVert+treeSpace+treeLast+"c.txt")
	assert.Contains(t, out, treeLast+"z.txt")
}
