package lz

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// Parse reads the lz format. Errors are *errors.ParseError values carrying the
// 0-based index of the offending line.
func Parse(s string) (*List, error) {
	var (
		curr  *Lz
		items []*Lz
	)
	for i, line := range splitLines(s) {
		first, _ := utf8.DecodeRuneInString(line)
		if line == "" || first == '#' {
			continue
		}

		if unicode.IsSpace(first) {
			attr := strings.TrimLeftFunc(line, unicode.IsSpace)
			if attr == "" || attr[0] == '#' {
				continue
			}
			if curr == nil {
				return nil, lzerrors.NewParseError(i, "attribute before any record header")
			}
			if err := curr.AddDeetStr(attr); err != nil {
				return nil, lzerrors.NewParseError(i, "attribute line has no ':'")
			}
			continue
		}

		if curr != nil {
			items = append(items, curr)
		}
		curr = New(line)
	}
	if curr != nil {
		items = append(items, curr)
	}

	return &List{Items: items}, nil
}

// splitLines splits on every '\n' and '\r', so "\r\n" yields an extra empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
