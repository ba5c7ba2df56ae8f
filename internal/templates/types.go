// Package templates provides the framework template registry and
// materializes template trees into a project directory.
package templates

// Mode selects how a framework's template is stored.
type Mode int

const (
	// ModeDirectory copies a directory tree, optionally followed by the
	// shared overlay.
	ModeDirectory Mode = iota

	// ModeArchive extracts a single zip archive.
	ModeArchive
)

// String returns the mode name shown in listings.
func (m Mode) String() string {
	switch m {
	case ModeDirectory:
		return "directory"
	case ModeArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Framework is a frontend stack offered by the create command.
type Framework struct {
	// Name is the identifier used on the command line (react, vue, ...).
	Name string

	// Label is the display name.
	Label string

	// Mode is the template storage shape.
	Mode Mode

	// Path is the template directory or archive, relative to the
	// templates root.
	Path string

	// UseOverlay copies the shared overlay after the framework tree.
	// Only meaningful in directory mode.
	UseOverlay bool

	// Default marks the framework used when none is given.
	Default bool
}

// Result describes what a materialization wrote.
type Result struct {
	// Files lists the files written under the target, relative and slash
	// separated, sorted.
	Files []string

	// Deferred maps target-relative paths of config files that were not
	// copied to their source path in the template filesystem. The config
	// rewriter reads these from the source and writes them to the target.
	Deferred map[string]string
}
