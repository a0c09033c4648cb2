package styler

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatter converts a raw cell value into display text.
type Formatter func(value any) string

// formatValue resolves the display text for a cell: a custom formatter
// wins, then a per-column verb, then the global verb, then the defaults.
func (s *Styler) formatValue(col int, value any) string {
	if s.formatFn != nil {
		return s.formatFn(value)
	}
	if verb, ok := s.colFormats[col]; ok {
		return applyVerb(verb, value)
	}
	if s.formatVerb != "" {
		return applyVerb(s.formatVerb, value)
	}
	return defaultFormat(value)
}

// applyVerb formats a value with a fmt verb. Missing values stay blank, and
// integer cells are widened so float verbs like %.2f apply cleanly to mixed
// numeric columns.
func applyVerb(verb string, value any) string {
	if value == nil {
		return ""
	}
	if strings.ContainsAny(verb, "efgEFG") {
		switch v := value.(type) {
		case int:
			return fmt.Sprintf(verb, float64(v))
		case int32:
			return fmt.Sprintf(verb, float64(v))
		case int64:
			return fmt.Sprintf(verb, float64(v))
		}
	}
	return fmt.Sprintf(verb, value)
}

// defaultFormat renders floats with six fixed decimals and everything else
// in its natural base-10 or literal form.
func defaultFormat(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', 6, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', 6, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
