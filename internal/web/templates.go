package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData fills the page template
type pageData struct {
	Year      int
	Policy    string
	WordOfDay template.HTML
}
