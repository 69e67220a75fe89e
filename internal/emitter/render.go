// Package emitter turns a table schema (and optionally generated rows) into
// target-language source text. Each emitter builds a structured payload and
// hands it to a Renderer collaborator; the default renderer uses embedded
// text templates.
package emitter

import (
	"embed"
	"strings"
	"text/template"

	"github.com/tableforge/tableforge/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer turns a named structured payload into final source text. Callers
// may supply their own rendering service; TemplateRenderer is the default.
type Renderer interface {
	Render(name string, data interface{}) (string, error)
}

// TemplateRenderer renders payloads through the embedded text templates.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates. Template parse failures
// are programming errors, so this panics rather than returning an error.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.tmpl")),
	}
}

// Render executes the named template.
func (r *TemplateRenderer) Render(name string, data interface{}) (string, error) {
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", model.ParseError(err, "render template %q", name)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}
