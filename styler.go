package styler

import (
	"context"
	"fmt"

	gotheme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-styler/pkg/render"
	"github.com/goliatone/go-styler/pkg/renderers/html"
	"github.com/goliatone/go-styler/pkg/sanitize"
	"github.com/goliatone/go-styler/pkg/style"
	"github.com/goliatone/go-styler/pkg/table"
	"github.com/goliatone/go-styler/pkg/theme"
)

type cellKey struct {
	row, col int
}

// Option configures a Styler at construction time.
type Option func(*Styler)

// WithUUID fixes the document-unique prefix instead of generating a random
// one. Multiple tables on one page need distinct prefixes to keep their
// generated ids collision free.
func WithUUID(prefix string) Option {
	return func(s *Styler) {
		s.uuid = prefix
		s.uuidSet = true
	}
}

// WithoutCellIDs suppresses ids on data cells. Cells that carry
// cell-specific style rules keep their id regardless, since the rule
// selector needs it.
func WithoutCellIDs() Option {
	return func(s *Styler) {
		s.cellIDs = false
	}
}

// WithRenderer swaps the renderer used by ToHTML. The default is the html
// renderer with the embedded template bundle.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Styler) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithSanitizer runs every caption, label, and display value through the
// given bluemonday policy. Use sanitize.Display for a sensible inline-markup
// policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(s *Styler) {
		s.sanitizer = policy
	}
}

// Styler is the rendering object produced from a table and its style rules.
// Setters return the receiver so configuration chains; the table itself is
// read-only during rendering.
type Styler struct {
	table table.Table

	uuid    string
	uuidSet bool
	cellIDs bool

	caption         string
	tableAttributes string
	tableStyles     []style.Rule
	cellProps       map[cellKey]string
	cellClasses     map[cellKey][]string
	applied         []func(row, col int, value any) string

	formatVerb string
	colFormats map[int]string
	formatFn   Formatter

	sanitizer *bluemonday.Policy
	renderer  render.Renderer
}

// New builds a Styler over the given table.
func New(t table.Table, opts ...Option) *Styler {
	s := &Styler{
		table:       t,
		cellIDs:     true,
		cellProps:   make(map[cellKey]string),
		cellClasses: make(map[cellKey][]string),
		colFormats:  make(map[int]string),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// SetUUID fixes the unique prefix after construction.
func (s *Styler) SetUUID(prefix string) *Styler {
	s.uuid = prefix
	s.uuidSet = true
	return s
}

// SetCaption sets the table caption. An empty caption renders nothing.
func (s *Styler) SetCaption(caption string) *Styler {
	s.caption = caption
	return s
}

// SetTableAttributes sets raw attribute text appended to the table open
// tag, e.g. `class="wide" style="width:100%;"`.
func (s *Styler) SetTableAttributes(attrs string) *Styler {
	s.tableAttributes = attrs
	return s
}

// SetTableStyles replaces the table-wide style rules.
func (s *Styler) SetTableStyles(rules ...style.Rule) *Styler {
	s.tableStyles = append([]style.Rule(nil), rules...)
	return s
}

// AddTableStyles appends table-wide style rules.
func (s *Styler) AddTableStyles(rules ...style.Rule) *Styler {
	s.tableStyles = append(s.tableStyles, rules...)
	return s
}

// Apply registers a function computing per-cell property text. The function
// runs once per data cell at render time; an empty result adds no rule.
func (s *Styler) Apply(fn func(row, col int, value any) string) *Styler {
	if fn != nil {
		s.applied = append(s.applied, fn)
	}
	return s
}

// SetCellProps attaches property text to a single data cell.
func (s *Styler) SetCellProps(row, col int, props string) *Styler {
	s.cellProps[cellKey{row, col}] = props
	return s
}

// AddCellClasses appends CSS class names to a single data cell.
func (s *Styler) AddCellClasses(row, col int, classes ...string) *Styler {
	key := cellKey{row, col}
	s.cellClasses[key] = append(s.cellClasses[key], classes...)
	return s
}

// Format sets the global format verb applied to every value, e.g. "%.1f".
func (s *Styler) Format(verb string) *Styler {
	s.formatVerb = verb
	return s
}

// FormatColumn sets a format verb for one column, overriding the global
// verb.
func (s *Styler) FormatColumn(col int, verb string) *Styler {
	s.colFormats[col] = verb
	return s
}

// FormatFunc installs a custom formatter, overriding verb-based formatting
// entirely.
func (s *Styler) FormatFunc(fn Formatter) *Styler {
	s.formatFn = fn
	return s
}

// ApplyTheme appends the style rules derived from a go-theme selection.
func (s *Styler) ApplyTheme(selection *gotheme.Selection) *Styler {
	s.tableStyles = append(s.tableStyles, theme.Rules(selection)...)
	return s
}

// UseTheme applies one of the built-in themes by name.
func (s *Styler) UseTheme(name string) error {
	selection, err := theme.Builtin(name)
	if err != nil {
		return err
	}
	s.ApplyTheme(selection)
	return nil
}

// UUID returns the unique prefix, generating a random one on first use so
// repeated renders of the same Styler stay byte-identical.
func (s *Styler) UUID() string {
	if !s.uuidSet {
		s.uuid = randomUUID()
		s.uuidSet = true
	}
	return s.uuid
}

// ToHTML translates the table and renders it with the configured renderer.
func (s *Styler) ToHTML(ctx context.Context, options render.Options) (string, error) {
	doc, err := s.translate(options)
	if err != nil {
		return "", err
	}

	renderer := s.renderer
	if renderer == nil {
		renderer, err = html.New()
		if err != nil {
			return "", fmt.Errorf("styler: build default renderer: %w", err)
		}
		s.renderer = renderer
	}

	out, err := renderer.Render(ctx, doc, options)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Render is ToHTML with default options: a styled fragment without the
// document envelope.
func (s *Styler) Render(ctx context.Context) (string, error) {
	return s.ToHTML(ctx, render.Options{})
}

func (s *Styler) clean(raw string) string {
	return sanitize.Clean(s.sanitizer, raw)
}

// DefaultRegistry returns a renderer registry with the built-in html
// renderer registered under its name.
func DefaultRegistry() (*render.Registry, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("styler: build html renderer: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// Factory produces Stylers bound to a renderer configured with custom
// templates.
type Factory struct {
	renderer render.Renderer
}

// FromCustomTemplate builds a Factory whose renderer loads templates from
// dir. tableTpl and styleTpl name templates inside dir that extend the
// defaults ("html_table.tpl" and "html_style.tpl"); pass "" to keep a
// default. Malformed templates surface as engine parse/render errors on
// first render.
func FromCustomTemplate(dir, tableTpl, styleTpl string) (*Factory, error) {
	if dir == "" {
		return nil, fmt.Errorf("styler: template directory is required")
	}
	renderer, err := html.New(
		html.WithTemplatesDir(dir),
		html.WithTableTemplate(tableTpl),
		html.WithStyleTemplate(styleTpl),
	)
	if err != nil {
		return nil, fmt.Errorf("styler: custom template renderer: %w", err)
	}
	return &Factory{renderer: renderer}, nil
}

// New builds a Styler bound to the factory's renderer.
func (f *Factory) New(t table.Table, opts ...Option) *Styler {
	return New(t, append([]Option{WithRenderer(f.renderer)}, opts...)...)
}
