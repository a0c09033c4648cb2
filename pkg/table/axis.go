package table

import "fmt"

// Axis holds the ordered labels along one dimension of a table. Labels are
// stored level-major: Levels[0] is the outermost level and every level slice
// has one entry per position. Names optionally label the levels themselves.
type Axis struct {
	Levels [][]string
	Names  []string
}

// NewAxis builds a single-level axis from the given labels.
func NewAxis(labels ...string) Axis {
	return Axis{Levels: [][]string{labels}}
}

// NewMultiAxis builds a hierarchical axis from level-major label slices.
// Every level must carry the same number of positions.
func NewMultiAxis(levels ...[]string) (Axis, error) {
	if len(levels) == 0 {
		return Axis{}, fmt.Errorf("table: multi axis requires at least one level")
	}
	width := len(levels[0])
	for i, level := range levels {
		if len(level) != width {
			return Axis{}, fmt.Errorf("table: axis level %d has %d labels, want %d", i, len(level), width)
		}
	}
	return Axis{Levels: levels}, nil
}

// MustNewMultiAxis is NewMultiAxis panicking on invalid input. Useful for
// fixtures and examples.
func MustNewMultiAxis(levels ...[]string) Axis {
	axis, err := NewMultiAxis(levels...)
	if err != nil {
		panic(err)
	}
	return axis
}

// WithNames returns a copy of the axis with level names attached.
func (a Axis) WithNames(names ...string) Axis {
	a.Names = names
	return a
}

// Len reports the number of positions along the axis.
func (a Axis) Len() int {
	if len(a.Levels) == 0 {
		return 0
	}
	return len(a.Levels[0])
}

// NLevels reports how many label levels the axis carries. An empty axis
// still counts as one level so renderers always emit a heading slot.
func (a Axis) NLevels() int {
	if len(a.Levels) == 0 {
		return 1
	}
	return len(a.Levels)
}

// Label returns the label at the given position and level, or the empty
// string when either is out of range.
func (a Axis) Label(pos, level int) string {
	if level < 0 || level >= len(a.Levels) {
		return ""
	}
	if pos < 0 || pos >= len(a.Levels[level]) {
		return ""
	}
	return a.Levels[level][pos]
}

// Name returns the name of the given level, or the empty string.
func (a Axis) Name(level int) string {
	if level < 0 || level >= len(a.Names) {
		return ""
	}
	return a.Names[level]
}

// Named reports whether any level carries a non-empty name.
func (a Axis) Named() bool {
	for _, name := range a.Names {
		if name != "" {
			return true
		}
	}
	return false
}
