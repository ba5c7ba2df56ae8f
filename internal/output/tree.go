package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 36
)

// TreeEntry is a file to show in a rendered tree.
type TreeEntry struct {
	// Path is slash separated and relative to the tree root.
	Path string

	// Description is shown dimmed after the file name (optional).
	Description string
}

type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name, isDir: isDir}
	n.children = append(n.children, c)
	return c
}

// RenderFileTree renders entries as a tree below rootName. Directories are
// listed before files, each group alphabetically.
func RenderFileTree(rootName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}
	for _, e := range entries {
		parts := strings.Split(path.Clean(e.Path), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last)
			if last {
				current.description = e.Description
			}
		}
	}
	sortTree(root)

	var sb strings.Builder
	styles := GetStyles()
	sb.WriteString(styles.Bold.Render(root.name + "/"))
	sb.WriteString("\n")
	for i, c := range root.children {
		renderNode(&sb, styles, c, "", i == len(root.children)-1)
	}
	return sb.String()
}

func sortTree(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		a, b := node.children[i], node.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})
	for _, c := range node.children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, styles *Styles, node *treeNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	name := node.name
	if node.isDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.description != "" {
		// Box drawing characters are multi-byte; pad by rune count.
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + styles.Muted.Render(node.description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range node.children {
		renderNode(sb, styles, c, childPrefix, i == len(node.children)-1)
	}
}
