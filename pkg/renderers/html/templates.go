package html

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS returns the embedded default template bundle rooted at the
// template names themselves (html.tpl, html_style.tpl, html_table.tpl).
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// DefaultTemplate returns the source of one of the embedded templates.
func DefaultTemplate(name string) (string, error) {
	data, err := fs.ReadFile(TemplatesFS(), name)
	if err != nil {
		return "", fmt.Errorf("html: read default template %q: %w", name, err)
	}
	return string(data), nil
}
