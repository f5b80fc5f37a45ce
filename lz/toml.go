package lz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// DecodeTOML reads a TOML document. Tables become records, sorted by name
// since TOML tables are unordered; top-level values are gathered into a
// leading record named "".
func DecodeTOML(data []byte) (*List, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		line := 0
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, _ := derr.Position()
			line = row - 1
		}
		return nil, &lzerrors.ParseError{Line: line, Err: err}
	}

	names := make([]string, 0, len(doc))
	for k := range doc {
		names = append(names, k)
	}
	sort.Strings(names)

	top := &Lz{Deets: map[string]string{}}
	var items []*Lz
	for _, name := range names {
		if table, ok := doc[name].(map[string]any); ok {
			rec := &Lz{Name: name, Deets: make(map[string]string, len(table))}
			for k, v := range table {
				s, err := tomlScalar(name+"."+k, v)
				if err != nil {
					return nil, err
				}
				rec.AddDeet(k, s)
			}
			items = append(items, rec)
			continue
		}

		s, err := tomlScalar(name, doc[name])
		if err != nil {
			return nil, err
		}
		top.AddDeet(name, s)
	}

	if len(top.Deets) > 0 {
		items = append([]*Lz{top}, items...)
	}
	return &List{Items: items}, nil
}

func tomlScalar(path string, v any) (string, error) {
	switch val := v.(type) {
	case map[string]any:
		return "", lzerrors.NewParseError(0, fmt.Sprintf("%s: nesting deeper than two levels", path))
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			switch item.(type) {
			case map[string]any, []any:
				return "", lzerrors.NewParseError(0, fmt.Sprintf("%s: nesting deeper than two levels", path))
			}
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ","), nil
	default:
		return fmt.Sprint(val), nil
	}
}
