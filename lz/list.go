package lz

import (
	"strings"
)

// List is an ordered sequence of records, in file order.
type List struct {
	Items []*Lz
}

// Get looks up "Record.attribute". The key is split at the first '.'; the
// first record with a matching name answers for the rest of the key.
//
// A key without a '.' is looked up on the first record. Older single-record
// files rely on this.
func (l *List) Get(key string) (string, bool) {
	if l == nil || len(l.Items) == 0 {
		return "", false
	}

	name, attr, dotted := strings.Cut(key, ".")
	if !dotted {
		return l.Items[0].Get(key)
	}

	if rec := l.Find(name); rec != nil {
		return rec.Get(attr)
	}
	return "", false
}

// Find returns the first record called name, or nil.
func (l *List) Find(name string) *Lz {
	if l == nil {
		return nil
	}
	for _, it := range l.Items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Len returns the number of records.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Names returns record names in file order. Duplicates are kept.
func (l *List) Names() []string {
	names := make([]string, 0, l.Len())
	for _, it := range l.Items {
		names = append(names, it.Name)
	}
	return names
}

// Append adds the records of other after the records of l.
func (l *List) Append(other *List) {
	if other == nil {
		return
	}
	l.Items = append(l.Items, other.Items...)
}

// UnmarshalText parses the lz format, replacing any existing records.
func (l *List) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	l.Items = parsed.Items
	return nil
}
