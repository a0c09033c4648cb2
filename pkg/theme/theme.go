// Package theme maps go-theme selections onto table style rules. Manifest
// tokens become CSS custom properties declared on the table element, and the
// built-in themes add structural rules that consume those properties.
package theme

import (
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-styler/pkg/style"
)

var builtins = map[string]*gotheme.Manifest{
	"minimal": {
		Name:    "minimal",
		Version: "1.0.0",
		Tokens: map[string]string{
			"border-color": "#d0d7de",
			"heading-bg":   "#f6f8fa",
			"text-color":   "#1f2328",
		},
	},
	"striped": {
		Name:    "striped",
		Version: "1.0.0",
		Tokens: map[string]string{
			"border-color": "#d0d7de",
			"heading-bg":   "#f6f8fa",
			"stripe-bg":    "#f6f8fa",
			"text-color":   "#1f2328",
		},
	},
}

// structuralRules keys the extra selector rules each built-in theme carries
// beyond its token declarations.
var structuralRules = map[string][]style.Rule{
	"minimal": {
		{Selector: "", Props: "border-collapse: collapse; color: var(--styler-text-color);"},
		{Selector: "th", Props: "background-color: var(--styler-heading-bg); border: 1px solid var(--styler-border-color); padding: 4px 8px;"},
		{Selector: "td", Props: "border: 1px solid var(--styler-border-color); padding: 4px 8px;"},
	},
	"striped": {
		{Selector: "", Props: "border-collapse: collapse; color: var(--styler-text-color);"},
		{Selector: "th", Props: "background-color: var(--styler-heading-bg); border: 1px solid var(--styler-border-color); padding: 4px 8px;"},
		{Selector: "td", Props: "border: 1px solid var(--styler-border-color); padding: 4px 8px;"},
		{Selector: "tbody tr:nth-child(even) td", Props: "background-color: var(--styler-stripe-bg);"},
	},
}

// Names lists the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin resolves a built-in theme name into a go-theme selection.
func Builtin(name string) (*gotheme.Selection, error) {
	manifest, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("theme: unknown theme %q", name)
	}
	return &gotheme.Selection{
		Theme:    manifest.Name,
		Variant:  "default",
		Manifest: manifest,
	}, nil
}

// Rules converts a selection into table style rules: one rule declaring the
// manifest tokens as --styler-* custom properties on the table element,
// followed by the theme's structural rules. Tokens emit in sorted key order
// so repeated renders stay byte-identical.
func Rules(selection *gotheme.Selection) []style.Rule {
	if selection == nil {
		return nil
	}

	var rules []style.Rule
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		keys := make([]string, 0, len(selection.Manifest.Tokens))
		for key := range selection.Manifest.Tokens {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var props strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&props, "--styler-%s: %s; ", key, selection.Manifest.Tokens[key])
		}
		rules = append(rules, style.Rule{Selector: "", Props: strings.TrimSpace(props.String())})
	}

	rules = append(rules, structuralRules[selection.Theme]...)
	return rules
}

// SelectFrom resolves a theme through a go-theme selector and converts the
// selection into style rules.
func SelectFrom(selector gotheme.ThemeSelector, name, variant string, opts ...gotheme.QueryOption) ([]style.Rule, error) {
	if selector == nil {
		return nil, fmt.Errorf("theme: selector is required")
	}
	selection, err := selector.Select(name, variant, opts...)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	return Rules(selection), nil
}
