package render

import (
	"context"

	"github.com/goliatone/go-styler/pkg/style"
)

// Cell is one rendered head or body cell. ID and Class are empty when the
// translation runs with styles excluded; Attrs carries pre-built extra
// attribute text such as `colspan="2"`. Hidden cells (absorbed by a span)
// keep their slot with Visible set to false.
type Cell struct {
	Type    string
	ID      string
	Class   string
	Attrs   string
	Display string
	Visible bool
}

// Document is the fully translated view of one styled table, ready for
// template execution. UUID is the document-unique prefix; TableID is the
// complete table element id, or empty when styles are excluded.
type Document struct {
	UUID            string
	TableID         string
	TableAttributes string
	Caption         string
	Encoding        string
	Head            [][]Cell
	Body            [][]Cell
	TableStyles     []style.Entry
	CellStyles      []style.Entry
}

// HasStyles reports whether the document carries any stylesheet entries.
func (d Document) HasStyles() bool {
	return len(d.TableStyles) > 0 || len(d.CellStyles) > 0
}

// Options describe per-render switches.
type Options struct {
	// ExcludeStyles drops the <style> block and strips ids and classes from
	// the table markup.
	ExcludeStyles bool
	// DoctypeHTML wraps the output in a full HTML5 envelope (doctype, head
	// with charset meta, body) instead of emitting a bare fragment.
	DoctypeHTML bool
}

// Renderer converts a translated Document into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options Options) ([]byte, error)
}
