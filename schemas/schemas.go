// Package schemas holds the JSON Schema documents for the service's responses. They are
// the default contents of the schema store; a directory with the same file names can be
// used instead.
package schemas

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var files embed.FS

// FS returns the embedded schema documents.
func FS() fs.FS {
	return files
}
