package lazyconf

import "strings"

// FlagGetter reads values from command-line arguments. A flag's value is the
// argument that follows it.
type FlagGetter struct {
	args []string
}

// NewFlagGetter creates a FlagGetter over args.
func NewFlagGetter(args []string) *FlagGetter {
	return &FlagGetter{args: args}
}

// Get returns the argument after the first occurrence of key. A key given as
// the last argument has no value.
func (f *FlagGetter) Get(key string) (string, bool) {
	for i, a := range f.args {
		if a != key {
			continue
		}
		if i+1 < len(f.args) {
			return f.args[i+1], true
		}
		return "", false
	}
	return "", false
}

// IsPresent reports whether key appears anywhere in the arguments.
func (f *FlagGetter) IsPresent(key string) bool {
	for _, a := range f.args {
		if a == key {
			return true
		}
	}
	return false
}

// GetAll returns every argument after the first occurrence of key, up to the
// next argument starting with '-'.
func (f *FlagGetter) GetAll(key string) ([]string, bool) {
	for i, a := range f.args {
		if a != key {
			continue
		}
		var vals []string
		for _, v := range f.args[i+1:] {
			if strings.HasPrefix(v, "-") {
				break
			}
			vals = append(vals, v)
		}
		return vals, true
	}
	return nil, false
}

// Args returns the arguments being read.
func (f *FlagGetter) Args() []string {
	return f.args
}
