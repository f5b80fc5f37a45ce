package lazyconf

import "os"

// EnvGetter reads environment variables.
type EnvGetter struct {
	lookup func(string) (string, bool)
}

// NewEnvGetter creates an EnvGetter. A nil lookup uses os.LookupEnv.
func NewEnvGetter(lookup func(string) (string, bool)) *EnvGetter {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvGetter{lookup: lookup}
}

// Get returns the variable named key. A variable set to "" counts as found.
func (e *EnvGetter) Get(key string) (string, bool) {
	return e.lookup(key)
}
