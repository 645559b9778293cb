// Package views renders the HTML surface. No list or auth rules live here;
// controllers hand it fully prepared data.
package views

import (
	"embed"
	"html/template"
	"net/http"

	"listkeeper/global"
)

//go:embed templates/*.html
var files embed.FS

type Renderer struct{ tmpl *template.Template }

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (v *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.tmpl.ExecuteTemplate(w, name, data); err != nil {
		global.Logger.Error().Err(err).Str("template", name).Msg("render")
	}
}

// Error shows a message page. Validation failures are a normal outcome of a
// form submission, so the status stays 200.
func (v *Renderer) Error(w http.ResponseWriter, message string) {
	v.Render(w, "error.html", map[string]any{"Message": message})
}
