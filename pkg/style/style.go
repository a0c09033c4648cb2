package style

import (
	"fmt"
	"strings"
)

// Rule scopes raw CSS property text to a selector. Selectors are relative to
// the rendered table: a rule with selector "td" on a table with unique
// prefix "abc_" emits "#T_abc_ td".
type Rule struct {
	Selector string `yaml:"selector"`
	Props    string `yaml:"props"`
}

// Declaration is a single parsed CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// ParseProps splits raw property text such as "color:red; width: 10px;"
// into ordered declarations. Empty segments are skipped; a segment without
// a colon is rejected so malformed rules fail loudly instead of emitting
// broken CSS.
func ParseProps(props string) ([]Declaration, error) {
	var out []Declaration
	for _, segment := range strings.Split(props, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		property, value, ok := strings.Cut(segment, ":")
		if !ok {
			return nil, fmt.Errorf("style: declaration %q is missing a colon", segment)
		}
		out = append(out, Declaration{
			Property: strings.TrimSpace(property),
			Value:    strings.TrimSpace(value),
		})
	}
	return out, nil
}
