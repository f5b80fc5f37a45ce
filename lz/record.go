package lz

import (
	"fmt"
	"sort"
	"strings"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// Lz is one named record and its attributes.
type Lz struct {
	Name  string
	Deets map[string]string
}

// New creates a record from a header line. Everything after the first ':' or
// ',' is stored as ext0, ext1, ...
func New(header string) *Lz {
	// Empty pieces are kept: "Superman:" has ext0 = "".
	parts := splitHeader(header)

	l := &Lz{
		Name:  parts[0],
		Deets: make(map[string]string, len(parts)-1),
	}
	for i, p := range parts[1:] {
		l.Deets[ExtKey(i)] = p
	}
	return l
}

// ExtKey returns the attribute name of the i-th header extra.
func ExtKey(i int) string {
	return fmt.Sprintf("ext%d", i)
}

func isHeaderSep(r rune) bool {
	return r == ':' || r == ','
}

func splitHeader(s string) []string {
	parts := []string{}
	start := 0
	for i, r := range s {
		if isHeaderSep(r) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// AddDeetStr adds an attribute from a "key:value" line. The line is split at
// the first ':'; key and value are trimmed.
func (l *Lz) AddDeetStr(s string) error {
	k, v, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("%w: attribute %q has no ':'", lzerrors.ErrParse, s)
	}
	l.AddDeet(k, v)
	return nil
}

// AddDeet sets an attribute, trimming key and value.
func (l *Lz) AddDeet(k, v string) {
	if l.Deets == nil {
		l.Deets = make(map[string]string)
	}
	l.Deets[strings.TrimSpace(k)] = strings.TrimSpace(v)
}

// Get returns the attribute stored under key.
func (l *Lz) Get(key string) (string, bool) {
	v, ok := l.Deets[key]
	return v, ok
}

// Keys returns the attribute names in sorted order.
func (l *Lz) Keys() []string {
	keys := make([]string, 0, len(l.Deets))
	for k := range l.Deets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
