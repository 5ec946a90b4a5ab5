package shebang

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem abstracts the two host facilities the chooser needs:
// opening the script for sequential reading, and querying a path's
// attributes without opening it.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Open opens the named file for reading.
func (r *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
