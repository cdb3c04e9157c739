// Package assets embeds the files served or rendered by the apps.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static all:templates
var files embed.FS

// Static returns the public assets mounted under /static.
func Static() fs.FS {
	sub, _ := fs.Sub(files, "static")
	return sub
}

// EmailTemplates returns the email templates.
func EmailTemplates() fs.FS {
	sub, _ := fs.Sub(files, "templates/email")
	return sub
}
