package v1

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates. Pages share the "header", "footer"
// and "field" blocks of layout.html.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
