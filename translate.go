package styler

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-styler/pkg/render"
	"github.com/goliatone/go-styler/pkg/style"
	"github.com/goliatone/go-styler/pkg/table"
)

// blankValue fills corner and spacer heading cells.
const blankValue = "&nbsp;"

// translate walks the table and produces the renderer-facing document:
// head rows with column spans, body rows with row spans, formatted display
// values, generated ids, and the collected stylesheet entries. Cells walk
// in row-major order and the style collector preserves first-appearance
// order, so the result is deterministic for a fixed unique prefix.
func (s *Styler) translate(options render.Options) (render.Document, error) {
	exclude := options.ExcludeStyles

	doc := render.Document{
		UUID:     s.UUID(),
		Encoding: "utf-8",
		Caption:  s.clean(s.caption),
	}
	if !exclude {
		doc.TableID = "T_" + doc.UUID
		doc.TableAttributes = s.tableAttributes
	}

	sheet := style.NewSheet()
	if !exclude {
		sheet.AddTableRules(s.tableStyles...)
	}

	s.translateHead(&doc, exclude)
	s.translateBody(&doc, sheet, exclude)

	if !exclude && !sheet.Empty() {
		tableEntries, err := sheet.TableEntries()
		if err != nil {
			return render.Document{}, fmt.Errorf("styler: collect table styles: %w", err)
		}
		cellEntries, err := sheet.CellEntries()
		if err != nil {
			return render.Document{}, fmt.Errorf("styler: collect cell styles: %w", err)
		}
		doc.TableStyles = tableEntries
		doc.CellStyles = cellEntries
	}
	return doc, nil
}

func (s *Styler) translateHead(doc *render.Document, exclude bool) {
	columns := s.table.Columns
	idxLevels := s.table.Index.NLevels()
	ncols := s.table.NumCols()
	colSpans := axisSpans(columns)

	for lvl := 0; lvl < columns.NLevels(); lvl++ {
		row := make([]render.Cell, 0, idxLevels+ncols)
		for i := 0; i < idxLevels; i++ {
			cell := render.Cell{Type: "th", Display: blankValue, Visible: true}
			if !exclude {
				cell.Class = fmt.Sprintf("blank level%d", lvl)
			}
			row = append(row, cell)
		}
		for c := 0; c < ncols; c++ {
			span := colSpans[lvl][c]
			cell := render.Cell{
				Type:    "th",
				Display: s.clean(columns.Label(c, lvl)),
				Visible: span > 0,
			}
			if span > 0 && !exclude {
				cell.Class = fmt.Sprintf("col_heading level%d col%d", lvl, c)
			}
			if span > 1 {
				cell.Attrs = fmt.Sprintf(`colspan="%d"`, span)
			}
			row = append(row, cell)
		}
		doc.Head = append(doc.Head, row)
	}

	if s.table.Index.Named() {
		row := make([]render.Cell, 0, idxLevels+ncols)
		for i := 0; i < idxLevels; i++ {
			cell := render.Cell{Type: "th", Display: s.clean(s.table.Index.Name(i)), Visible: true}
			if !exclude {
				cell.Class = fmt.Sprintf("index_name level%d", i)
			}
			row = append(row, cell)
		}
		for c := 0; c < ncols; c++ {
			cell := render.Cell{Type: "th", Display: blankValue, Visible: true}
			if !exclude {
				cell.Class = fmt.Sprintf("blank col%d", c)
			}
			row = append(row, cell)
		}
		doc.Head = append(doc.Head, row)
	}
}

func (s *Styler) translateBody(doc *render.Document, sheet *style.Sheet, exclude bool) {
	index := s.table.Index
	idxLevels := index.NLevels()
	rowSpans := axisSpans(index)

	for r := 0; r < s.table.NumRows(); r++ {
		row := make([]render.Cell, 0, idxLevels+s.table.NumCols())
		for lvl := 0; lvl < idxLevels; lvl++ {
			span := rowSpans[lvl][r]
			cell := render.Cell{
				Type:    "th",
				Display: s.clean(index.Label(r, lvl)),
				Visible: span > 0,
			}
			if span > 0 && !exclude {
				cell.ID = fmt.Sprintf("level%d_row%d", lvl, r)
				cell.Class = fmt.Sprintf("row_heading level%d row%d", lvl, r)
			}
			if span > 1 {
				cell.Attrs = fmt.Sprintf(`rowspan="%d"`, span)
			}
			row = append(row, cell)
		}
		for c := 0; c < s.table.NumCols(); c++ {
			value := s.table.Value(r, c)
			cell := render.Cell{
				Type:    "td",
				Display: s.clean(s.formatValue(c, value)),
				Visible: true,
			}
			if !exclude {
				props := s.propsFor(r, c, value)
				class := fmt.Sprintf("data row%d col%d", r, c)
				if extra := s.cellClasses[cellKey{r, c}]; len(extra) > 0 {
					class += " " + strings.Join(extra, " ")
				}
				cell.Class = class
				if s.cellIDs || props != "" {
					cell.ID = fmt.Sprintf("row%d_col%d", r, c)
				}
				if props != "" {
					sheet.AddCellRule(cell.ID, props)
				}
			}
			row = append(row, cell)
		}
		doc.Body = append(doc.Body, row)
	}
}

// propsFor joins explicit cell property text with the output of every
// applied styling function, in registration order.
func (s *Styler) propsFor(row, col int, value any) string {
	parts := make([]string, 0, 1+len(s.applied))
	if props := s.cellProps[cellKey{row, col}]; props != "" {
		parts = append(parts, props)
	}
	for _, fn := range s.applied {
		if props := fn(row, col, value); props != "" {
			parts = append(parts, props)
		}
	}
	return strings.Join(parts, ";")
}

// axisSpans computes, per level, the span run lengths along an axis. A
// position starting a run of n identical label paths (this level plus all
// outer levels) gets n; positions absorbed into a preceding span get 0.
func axisSpans(a table.Axis) [][]int {
	n := a.Len()
	out := make([][]int, a.NLevels())
	for lvl := range out {
		spans := make([]int, n)
		for pos := 0; pos < n; {
			run := 1
			for next := pos + 1; next < n && samePath(a, lvl, pos, next); next++ {
				run++
			}
			spans[pos] = run
			pos += run
		}
		out[lvl] = spans
	}
	return out
}

// samePath reports whether two positions share every label from the outer
// level down to lvl.
func samePath(a table.Axis, lvl, p, q int) bool {
	for k := 0; k <= lvl; k++ {
		if a.Label(p, k) != a.Label(q, k) {
			return false
		}
	}
	return true
}
