package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer renders page view models to html.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		// Palette values are constants from this package, safe to put into a style block.
		"css": func(s string) template.CSS {
			return template.CSS(s)
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{t: t}, nil
}

// Render writes page html to w.
// Page is rendered to a buffer first, so nothing is written if the template fails.
func (r *Renderer) Render(w io.Writer, l Layout) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "page.html", l); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}
