package lazyconf

import (
	"encoding"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
	"github.com/randalmurphal/lazyconf/lz"
)

// ReadInto reads all of r and hands it to v.UnmarshalText.
func ReadInto(r io.Reader, v encoding.TextUnmarshaler) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return v.UnmarshalText(data)
}

// Load reads the file at path from the host file system into v.
func Load(path string, v encoding.TextUnmarshaler) error {
	return LoadFS(OSFS{}, path, v)
}

// LoadFS reads the file at path from fsys into v. Parse errors carry the path.
func LoadFS(fsys FileSystem, path string, v encoding.TextUnmarshaler) error {
	data, err := readFile(fsys, path)
	if err != nil {
		return err
	}
	return lzerrors.WithPath(v.UnmarshalText(data), path)
}

// LoadList reads a record file, choosing the format by extension: .yaml and
// .yml are YAML, .toml is TOML, .hcl is HCL, anything else is lz.
func LoadList(fsys FileSystem, path string) (*lz.List, error) {
	if fsys == nil {
		fsys = OSFS{}
	}
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var list *lz.List
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		list, err = lz.DecodeYAML(data)
	case ".toml":
		list, err = lz.DecodeTOML(data)
	case ".hcl":
		list, err = lz.DecodeHCL(path, data)
	default:
		list, err = lz.Parse(string(data))
	}
	if err != nil {
		return nil, lzerrors.WithPath(err, path)
	}
	return list, nil
}

// LoadLocal loads a record file from the host file system into a Local rooted
// at the file's directory.
func LoadLocal(path string) (*Local, error) {
	return LoadLocalFS(OSFS{}, path)
}

// LoadLocalFS is LoadLocal reading from fsys.
func LoadLocalFS(fsys FileSystem, path string) (*Local, error) {
	list, err := LoadList(fsys, path)
	if err != nil {
		return nil, err
	}
	return NewLocal(filepath.Dir(path), list), nil
}

func readFile(fsys FileSystem, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, lzerrors.LoadError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, lzerrors.LoadError(path, err)
	}
	return data, nil
}
