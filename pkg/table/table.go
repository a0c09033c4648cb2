package table

import "fmt"

// Table is a rectangular grid of values with labeled axes. Values hold rows
// in row-major order; cells may be any scalar the formatter layer knows how
// to display (numbers, strings, bools, nil).
type Table struct {
	Values  [][]any
	Index   Axis
	Columns Axis
}

// New validates shape and builds a Table. The index must carry one position
// per row and the columns one position per value column.
func New(values [][]any, index, columns Axis) (Table, error) {
	if len(values) == 0 {
		return Table{}, fmt.Errorf("table: values are required")
	}
	width := len(values[0])
	for i, row := range values {
		if len(row) != width {
			return Table{}, fmt.Errorf("table: row %d has %d values, want %d", i, len(row), width)
		}
	}
	if got := index.Len(); got != len(values) {
		return Table{}, fmt.Errorf("table: index has %d labels, want %d", got, len(values))
	}
	if got := columns.Len(); got != width {
		return Table{}, fmt.Errorf("table: columns axis has %d labels, want %d", got, width)
	}
	return Table{Values: values, Index: index, Columns: columns}, nil
}

// MustNew is New panicking on invalid input.
func MustNew(values [][]any, index, columns Axis) Table {
	t, err := New(values, index, columns)
	if err != nil {
		panic(err)
	}
	return t
}

// NumRows reports the number of data rows.
func (t Table) NumRows() int { return len(t.Values) }

// NumCols reports the number of data columns.
func (t Table) NumCols() int {
	if len(t.Values) == 0 {
		return 0
	}
	return len(t.Values[0])
}

// Value returns the cell at (row, col), or nil when out of range.
func (t Table) Value(row, col int) any {
	if row < 0 || row >= len(t.Values) {
		return nil
	}
	if col < 0 || col >= len(t.Values[row]) {
		return nil
	}
	return t.Values[row][col]
}
