package lexicon

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a lexicon written as a YAML mapping:
//
//	happy: [joyful, glad]
//	sad: unhappy, gloomy
//
// Values may be a sequence or a comma-separated scalar. Keys keep document
// order.
func ParseYAML(r io.Reader) (*Lexicon, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: lexicon must be a mapping", root.Line)
	}

	lex := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch val.Kind {
		case yaml.SequenceNode:
			items := make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("line %d: entry %q must list plain words", item.Line, key.Value)
				}
				items = append(items, item.Value)
			}
			lex.Set(key.Value, items)
		case yaml.ScalarNode:
			lex.Set(key.Value, strings.Split(val.Value, ","))
		default:
			return nil, fmt.Errorf("line %d: entry %q must be a list or a string", val.Line, key.Value)
		}
	}
	return lex, nil
}
