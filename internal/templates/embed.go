package templates

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:assets
var assetsFS embed.FS

// Embedded returns the templates compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// assets is a literal embed root
		panic(err)
	}
	return sub
}

// Source returns the templates root: dir on disk when set, otherwise the
// embedded templates.
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}
