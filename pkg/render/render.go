package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/faturango/fatura-api/internal/domain/enum"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer turns resolved page documents into HTML. The three template
// variants share the PageDocument contract and differ only in arrangement.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded variant templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage renders a single page document with its variant's template.
// Unknown variants fall back to classic, mirroring the variant enum.
func (r *Renderer) RenderPage(doc PageDocument) (string, error) {
	name := string(doc.Variant)
	if !doc.Variant.Valid() {
		name = string(enum.TemplateClassic)
	}

	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, name, doc); err != nil {
		return "", fmt.Errorf("render: template %s: %w", name, err)
	}
	return sb.String(), nil
}
