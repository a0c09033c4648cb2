package html

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-styler/pkg/render"
	rendertemplate "github.com/goliatone/go-styler/pkg/render/template"
	"github.com/goliatone/go-styler/pkg/render/template/pongo"
	"github.com/goliatone/go-styler/pkg/style"
)

const (
	defaultEnvelopeTemplate = "html.tpl"
	defaultStyleTemplate    = "html_style.tpl"
	defaultTableTemplate    = "html_table.tpl"
)

type Option func(*config)

type config struct {
	templatesDir     string
	templatesFS      fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	envelopeTemplate string
	styleTemplate    string
	tableTemplate    string
}

// WithTemplatesDir points the renderer at a directory of custom templates.
// The embedded defaults stay resolvable, so a custom template can
// {% extends "html_table.tpl" %} and override individual blocks.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = path
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templatesFS = files
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithEnvelopeTemplate overrides the top-level document template name.
func WithEnvelopeTemplate(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.envelopeTemplate = name
		}
	}
}

// WithStyleTemplate overrides the stylesheet fragment template name.
func WithStyleTemplate(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.styleTemplate = name
		}
	}
}

// WithTableTemplate overrides the table fragment template name.
func WithTableTemplate(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.tableTemplate = name
		}
	}
}

// Renderer turns a render.Document into HTML. The style and table fragments
// render first and feed the envelope template, so custom fragment templates
// participate in block inheritance without include scoping surprises.
type Renderer struct {
	templates        rendertemplate.TemplateRenderer
	envelopeTemplate string
	styleTemplate    string
	tableTemplate    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		envelopeTemplate: defaultEnvelopeTemplate,
		styleTemplate:    defaultStyleTemplate,
		tableTemplate:    defaultTableTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templatesFS == nil {
		cfg.templatesFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		opts := []pongo.Option{pongo.WithFS(cfg.templatesFS)}
		if cfg.templatesDir != "" {
			opts = append(opts, pongo.WithBaseDir(cfg.templatesDir))
		}
		engine, err := pongo.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("html: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:        templates,
		envelopeTemplate: cfg.envelopeTemplate,
		styleTemplate:    cfg.styleTemplate,
		tableTemplate:    cfg.tableTemplate,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the style, table, and envelope templates over the
// document. The stylesheet fragment is omitted when the document carries no
// rules or the options exclude styles.
func (r *Renderer) Render(_ context.Context, doc render.Document, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html: template renderer is nil")
	}

	styleFragment := ""
	if !options.ExcludeStyles && doc.HasStyles() {
		rendered, err := r.templates.RenderTemplate(r.styleTemplate, styleContext(doc))
		if err != nil {
			return nil, fmt.Errorf("html: render style template: %w", err)
		}
		styleFragment = rendered
	}

	tableFragment, err := r.templates.RenderTemplate(r.tableTemplate, tableContext(doc))
	if err != nil {
		return nil, fmt.Errorf("html: render table template: %w", err)
	}

	out, err := r.templates.RenderTemplate(r.envelopeTemplate, map[string]any{
		"doctype_html": options.DoctypeHTML,
		"encoding":     doc.Encoding,
		"style":        styleFragment,
		"table":        tableFragment,
	})
	if err != nil {
		return nil, fmt.Errorf("html: render document template: %w", err)
	}
	return []byte(out), nil
}

func styleContext(doc render.Document) map[string]any {
	return map[string]any{
		"uuid":         doc.UUID,
		"table_styles": styleEntries(doc.TableStyles),
		"cellstyle":    styleEntries(doc.CellStyles),
	}
}

func tableContext(doc render.Document) map[string]any {
	return map[string]any{
		"uuid":             doc.UUID,
		"table_id":         doc.TableID,
		"table_attributes": doc.TableAttributes,
		"caption":          doc.Caption,
		"head":             cellRows(doc.Head),
		"body":             cellRows(doc.Body),
	}
}

func styleEntries(entries []style.Entry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		props := make([]map[string]any, 0, len(entry.Declarations))
		for _, decl := range entry.Declarations {
			props = append(props, map[string]any{
				"property": decl.Property,
				"value":    decl.Value,
			})
		}
		ctx := map[string]any{
			"props":     props,
			"selectors": entry.Selectors,
		}
		if len(entry.Selectors) == 1 {
			ctx["selector"] = entry.Selectors[0]
		}
		out = append(out, ctx)
	}
	return out
}

func cellRows(rows [][]render.Cell) [][]map[string]any {
	out := make([][]map[string]any, 0, len(rows))
	for _, row := range rows {
		cells := make([]map[string]any, 0, len(row))
		for _, cell := range row {
			cells = append(cells, map[string]any{
				"type":       cell.Type,
				"id":         cell.ID,
				"class":      cell.Class,
				"attrs":      cell.Attrs,
				"display":    cell.Display,
				"is_visible": cell.Visible,
			})
		}
		out = append(out, cells)
	}
	return out
}
