package lz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// DecodeHCL reads an HCL document. Each block becomes a record named by the
// block type, with its labels stored as ext0, ext1, ... Top-level attributes
// are gathered into a leading record named "". Expressions are evaluated
// without variables or functions.
func DecodeHCL(filename string, data []byte) (*List, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, hclParseError(diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, lzerrors.NewParseError(0, "unexpected HCL body type")
	}

	top := &Lz{Deets: map[string]string{}}
	if err := addHCLAttributes(top, body.Attributes); err != nil {
		return nil, err
	}

	var items []*Lz
	if len(top.Deets) > 0 {
		items = append(items, top)
	}
	for _, block := range body.Blocks {
		if len(block.Body.Blocks) > 0 {
			nested := block.Body.Blocks[0]
			return nil, lzerrors.NewParseError(nested.TypeRange.Start.Line-1, "nesting deeper than two levels")
		}

		rec := &Lz{Name: block.Type, Deets: make(map[string]string, len(block.Labels)+len(block.Body.Attributes))}
		for i, label := range block.Labels {
			rec.Deets[ExtKey(i)] = label
		}
		if err := addHCLAttributes(rec, block.Body.Attributes); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}

	return &List{Items: items}, nil
}

func addHCLAttributes(rec *Lz, attrs hclsyntax.Attributes) error {
	// Sorted so the first failing attribute is reported deterministically.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return hclParseError(diags)
		}
		s, err := ctyString(val)
		if err != nil {
			return lzerrors.NewParseError(attr.SrcRange.Start.Line-1, fmt.Sprintf("%s: %v", name, err))
		}
		rec.AddDeet(name, s)
	}
	return nil
}

// ctyString flattens a primitive, or a list of primitives joined with ','.
func ctyString(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}

	ty := val.Type()
	if ty.IsPrimitiveType() {
		s, err := convert.Convert(val, cty.String)
		if err != nil {
			return "", err
		}
		return s.AsString(), nil
	}

	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		var parts []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if !elem.Type().IsPrimitiveType() {
				return "", fmt.Errorf("nesting deeper than two levels")
			}
			s, err := ctyString(elem)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}

	return "", fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

func hclParseError(diags hcl.Diagnostics) error {
	line := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			line = d.Subject.Start.Line - 1
			break
		}
	}
	return &lzerrors.ParseError{Line: line, Err: diags}
}
