// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page and partial with the shared helpers.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.tmpl")
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"inr":       INR,
		"shortDate": ShortDate,
		"longDate":  LongDate,
		"dayMonth":  DayMonth,
		"isoDate":   ISODate,
	}
}
