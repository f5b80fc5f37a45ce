package lazyconf

import "github.com/randalmurphal/lazyconf/lz"

// Getable is a source of string values.
type Getable interface {
	Get(key string) (string, bool)
}

// Presenter is implemented by sources that can report a key without a value,
// such as a bare "--help" flag.
type Presenter interface {
	IsPresent(key string) bool
}

// Localizer is implemented by sources that resolve relative paths.
type Localizer interface {
	Localize(path string) string
}

var (
	_ Getable = (*lz.List)(nil)
	_ Getable = (*lz.Lz)(nil)
	_ Getable = Map(nil)
)

func isPresent(g Getable, key string) bool {
	if p, ok := g.(Presenter); ok {
		return p.IsPresent(key)
	}
	_, ok := g.Get(key)
	return ok
}

func localize(g Getable, path string) string {
	if l, ok := g.(Localizer); ok {
		return l.Localize(path)
	}
	return path
}
