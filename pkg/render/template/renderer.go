package template

import (
	"io"
)

// TemplateRenderer is the engine seam renderers rely on. Implementations
// resolve names against their configured loaders, execute the template with
// the supplied data, and return the rendered string (optionally teeing it
// into the provided writers).
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
