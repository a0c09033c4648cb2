package style

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Styles []Rule `yaml:"styles"`
}

// LoadRules reads table-wide rules from a YAML file on disk. The file holds
// a top-level `styles` list of selector/props pairs:
//
//	styles:
//	  - selector: th
//	    props: "background-color: #eee;"
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return nil, fmt.Errorf("style: rules path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read rules %s: %w", path, err)
	}
	return parseRules(data, path)
}

// LoadRulesFS is LoadRules over an fs.FS, for embedded or test bundles.
func LoadRulesFS(fsys fs.FS, path string) ([]Rule, error) {
	if fsys == nil {
		return nil, fmt.Errorf("style: rules filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("style: read rules %s: %w", path, err)
	}
	return parseRules(data, path)
}

func parseRules(data []byte, path string) ([]Rule, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("style: parse rules %s: %w", path, err)
	}

	out := make([]Rule, 0, len(file.Styles))
	for i, rule := range file.Styles {
		if rule.Selector == "" {
			return nil, fmt.Errorf("style: rules %s: entry %d is missing a selector", path, i)
		}
		if _, err := ParseProps(rule.Props); err != nil {
			return nil, fmt.Errorf("style: rules %s: entry %d: %w", path, i, err)
		}
		out = append(out, rule)
	}
	return out, nil
}
