package lz

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// DecodeYAML reads a two-level YAML mapping. Top-level keys holding mappings
// become records in document order; top-level scalars are gathered into a
// leading record named "".
func DecodeYAML(data []byte) (*List, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &lzerrors.ParseError{Line: yamlErrLine(err), Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &List{}, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, lzerrors.NewParseError(root.Line-1, "top level must be a mapping")
	}

	top := &Lz{Deets: map[string]string{}}
	var items []*Lz
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], resolveAlias(root.Content[i+1])

		switch {
		case val.Kind == yaml.MappingNode:
			rec := &Lz{Name: key.Value, Deets: make(map[string]string, len(val.Content)/2)}
			for j := 0; j+1 < len(val.Content); j += 2 {
				attr, err := yamlScalar(resolveAlias(val.Content[j+1]))
				if err != nil {
					return nil, err
				}
				rec.AddDeet(val.Content[j].Value, attr)
			}
			items = append(items, rec)
		case val.Kind == yaml.ScalarNode && val.Tag == "!!null":
			// "Superman:" with nothing below is an empty record.
			items = append(items, &Lz{Name: key.Value, Deets: map[string]string{}})
		default:
			attr, err := yamlScalar(val)
			if err != nil {
				return nil, err
			}
			top.AddDeet(key.Value, attr)
		}
	}

	if len(top.Deets) > 0 {
		items = append([]*Lz{top}, items...)
	}
	return &List{Items: items}, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// yamlScalar flattens a level-two value. Sequences of scalars are joined with ','.
func yamlScalar(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			c = resolveAlias(c)
			if c.Kind != yaml.ScalarNode {
				return "", lzerrors.NewParseError(c.Line-1, "nesting deeper than two levels")
			}
			parts = append(parts, c.Value)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", lzerrors.NewParseError(n.Line-1, "nesting deeper than two levels")
	}
}

// yamlErrLine extracts the 0-based line from a yaml.v3 error message
// ("yaml: line 3: ..."). Unknown positions map to line 0.
func yamlErrLine(err error) int {
	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr == nil && line > 0 {
		return line - 1
	}
	return 0
}
