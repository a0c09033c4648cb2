package html

import (
	"regexp"
	"sort"
)

// The named blocks exposed by the default templates form the extension
// contract for custom templates. Removing or renaming any of these is a
// breaking change.

// StyleBlocks returns the block names exposed by html_style.tpl.
func StyleBlocks() []string {
	return []string{
		"before_style",
		"style",
		"table_styles",
		"before_cellstyle",
		"cellstyle",
	}
}

// TableBlocks returns the block names exposed by html_table.tpl.
func TableBlocks() []string {
	return []string{
		"before_table",
		"table",
		"caption",
		"thead",
		"tbody",
		"after_table",
		"before_head_rows",
		"head_tr",
		"after_head_rows",
		"before_rows",
		"tr",
		"after_rows",
	}
}

var blockTagPattern = regexp.MustCompile(`\{%-?\s*block\s+([A-Za-z_][A-Za-z0-9_]*)`)

// TemplateBlocks scans template source for block declarations and returns
// the sorted, de-duplicated block names.
func TemplateBlocks(src string) []string {
	matches := blockTagPattern.FindAllStringSubmatch(src, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
