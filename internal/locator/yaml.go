package locator

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a declarative YAML locator file. The layout mirrors the
// simple JSON format: a top-level mapping from element name to either an
// expression string or a {variable, locator} mapping.
//
// The document is walked as a yaml.Node tree rather than unmarshalled into a
// map, so declaration order is preserved for the registry.
func ParseYAML(data []byte, fw Framework) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse locators YAML: %w", err)
	}

	reg := NewRegistry()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return reg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse locators YAML: expected top-level mapping, got %s on line %d", yamlKindName(root.Kind), root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		normalized := Normalize(keyNode.Value)
		if normalized == "" {
			continue
		}

		entry := Entry{
			RawName:    keyNode.Value,
			Normalized: normalized,
			Variable:   fw.Variable(keyNode.Value),
		}

		switch valNode.Kind {
		case yaml.ScalarNode:
			entry.Expression = valNode.Value
		case yaml.MappingNode:
			var obj simpleValue
			if err := valNode.Decode(&obj); err != nil {
				return nil, fmt.Errorf("parse locators YAML: entry %q: %w", keyNode.Value, err)
			}
			if obj.Variable != "" {
				entry.Variable = obj.Variable
			}
			entry.Expression = obj.Locator
			if entry.Expression == "" {
				entry.Expression = obj.Expression
			}
		default:
			continue
		}

		reg.Add(entry)
	}
	return reg, nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
