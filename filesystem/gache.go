package filesystem

import (
	"io"
	"os"
)

// GacheFs adapts the swappable backend to the gache.FileSystem interface, so
// the persistent caches (history, queries, lookups) honor SetMemMapFs too.
type GacheFs struct{}

// OpenFile opens a file on the current backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates a directory tree on the current backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
