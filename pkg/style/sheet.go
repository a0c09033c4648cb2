package style

// Entry is a collected stylesheet entry: one or more selectors sharing a
// parsed declaration list.
type Entry struct {
	Selectors    []string
	Declarations []Declaration
}

// Sheet accumulates the rules for a single render. Table-wide rules keep
// their insertion order; cell rules with identical property text are grouped
// under one selector list, ordered by first appearance, so repeated renders
// emit byte-identical stylesheet blocks.
type Sheet struct {
	table     []Rule
	cellProps []string
	cellIndex map[string]int
	cellIDs   [][]string
}

// NewSheet creates an empty collector.
func NewSheet() *Sheet {
	return &Sheet{cellIndex: make(map[string]int)}
}

// AddTableRules appends table-wide rules. Rules with empty property text are
// dropped.
func (s *Sheet) AddTableRules(rules ...Rule) {
	for _, rule := range rules {
		if rule.Props == "" {
			continue
		}
		s.table = append(s.table, rule)
	}
}

// AddCellRule records property text for the cell with the given id. Cells
// sharing identical property text collapse into one selector list.
func (s *Sheet) AddCellRule(id, props string) {
	if id == "" || props == "" {
		return
	}
	idx, ok := s.cellIndex[props]
	if !ok {
		idx = len(s.cellProps)
		s.cellIndex[props] = idx
		s.cellProps = append(s.cellProps, props)
		s.cellIDs = append(s.cellIDs, nil)
	}
	s.cellIDs[idx] = append(s.cellIDs[idx], id)
}

// Empty reports whether the sheet holds no rules at all.
func (s *Sheet) Empty() bool {
	return len(s.table) == 0 && len(s.cellProps) == 0
}

// TableEntries parses and returns the table-wide rules in insertion order.
func (s *Sheet) TableEntries() ([]Entry, error) {
	out := make([]Entry, 0, len(s.table))
	for _, rule := range s.table {
		decls, err := ParseProps(rule.Props)
		if err != nil {
			return nil, err
		}
		if len(decls) == 0 {
			continue
		}
		out = append(out, Entry{
			Selectors:    []string{rule.Selector},
			Declarations: decls,
		})
	}
	return out, nil
}

// CellEntries parses and returns the grouped per-cell rules in first-seen
// order.
func (s *Sheet) CellEntries() ([]Entry, error) {
	out := make([]Entry, 0, len(s.cellProps))
	for i, props := range s.cellProps {
		decls, err := ParseProps(props)
		if err != nil {
			return nil, err
		}
		if len(decls) == 0 {
			continue
		}
		out = append(out, Entry{
			Selectors:    s.cellIDs[i],
			Declarations: decls,
		})
	}
	return out, nil
}
