package web

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer implements echo.Renderer over html/template
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the built-in page templates
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.New("pages").Parse(pageTemplates)),
	}
}

// Render renders a named template into the response
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
