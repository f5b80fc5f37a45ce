package lazyconf

import (
	"bytes"
	"sort"

	"github.com/joho/godotenv"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// EnvFile is a dotenv file loaded as an environment source. The process
// environment is not modified.
type EnvFile struct {
	Path string
	vars map[string]string
}

// LoadEnvFile reads and parses a dotenv file from fsys.
func LoadEnvFile(fsys FileSystem, path string) (*EnvFile, error) {
	if fsys == nil {
		fsys = OSFS{}
	}
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &lzerrors.ParseError{Path: path, Err: err}
	}
	return &EnvFile{Path: path, vars: vars}, nil
}

// Get returns the variable named key.
func (e *EnvFile) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Keys returns the variable names in sorted order.
func (e *EnvFile) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
