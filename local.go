package lazyconf

import "path/filepath"

// Local wraps a source loaded from a file so that relative paths found in it
// resolve against the file's directory.
type Local struct {
	Root   string
	Source Getable
}

// NewLocal creates a Local rooted at root.
func NewLocal(root string, g Getable) *Local {
	return &Local{Root: root, Source: g}
}

// Get returns the wrapped source's value.
func (l *Local) Get(key string) (string, bool) {
	return l.Source.Get(key)
}

// IsPresent defers to the wrapped source.
func (l *Local) IsPresent(key string) bool {
	return isPresent(l.Source, key)
}

// Localize joins a relative path onto Root. Absolute paths are returned
// unchanged.
func (l *Local) Localize(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}
