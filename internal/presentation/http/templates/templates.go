// Package templates holds the embedded HTML screens of the console.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Must parses every embedded screen template. A malformed template is a
// programming error, so this panics instead of returning one.
func Must() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.tmpl"))
}
