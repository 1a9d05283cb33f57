package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const PageTemplate = "page.html"

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named template with data.
func (that *Renderer) Render(w io.Writer, name string, data any) error {
	if err := that.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}

func (that *Renderer) RenderPage(w io.Writer, page PageView) error {
	return that.Render(w, PageTemplate, page)
}

// Static returns the embedded stylesheet tree rooted at static/.
func Static() fs.FS {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Errorf("embedded static files missing: %w", err))
	}
	return static
}
