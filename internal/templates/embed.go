// Package templates resolves, renders and writes scaffolding templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed files
var bundledFS embed.FS

// EmbeddedLocationPrefix prefixes the Location of templates served from the
// binary.
const EmbeddedLocationPrefix = "embedded:"

// Bundled returns the templates compiled into the binary, rooted so that
// refs such as "module/controller.ts.tmpl" resolve directly.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundledFS, "files")
	if err != nil {
		// "files" is a valid, embedded path
		panic(err)
	}
	return sub
}

// EmbeddedRoot returns the search root for the bundled templates.
func EmbeddedRoot() Root {
	return Root{Name: "embedded", FS: Bundled()}
}
