package lazyconf

import (
	"io/fs"
	"os"
)

// FileSystem opens configuration files by path. fstest.MapFS and other fs.FS
// implementations satisfy it for relative paths.
type FileSystem interface {
	Open(name string) (fs.File, error)
}

// OSFS reads from the host file system.
type OSFS struct{}

// Open opens the named file with os.Open.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
