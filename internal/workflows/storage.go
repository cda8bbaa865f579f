package workflows

import (
	"io/fs"
	"os"
)

// Storage is the filesystem surface a sweep needs.
type Storage interface {
	Lstat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Rename(oldPath, newPath string) error
}

// DiskStorage performs every operation on the real filesystem.
type DiskStorage struct{}

func (DiskStorage) Lstat(path string) (fs.FileInfo, error)     { return os.Lstat(path) }
func (DiskStorage) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }
func (DiskStorage) Rename(oldPath, newPath string) error       { return os.Rename(oldPath, newPath) }

// DryRunStorage reads from disk but keeps renames in memory. Lookups see
// the tree as it would be after the recorded renames; the disk itself is
// never written.
type DryRunStorage struct {
	moved map[string]string // planned path → path on disk
	gone  map[string]bool   // paths vacated by a planned rename
}

// NewDryRunStorage returns an empty overlay.
func NewDryRunStorage() *DryRunStorage {
	return &DryRunStorage{
		moved: make(map[string]string),
		gone:  make(map[string]bool),
	}
}

func (s *DryRunStorage) Lstat(path string) (fs.FileInfo, error) {
	if real, ok := s.moved[path]; ok {
		return os.Lstat(real)
	}
	if s.gone[path] {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return os.Lstat(path)
}

// ReadDir lists the directory as it is on disk. A sweep reads each
// directory before anything inside it is renamed, so the overlay never
// has to merge listings.
func (s *DryRunStorage) ReadDir(path string) ([]fs.DirEntry, error) {
	if real, ok := s.moved[path]; ok {
		return os.ReadDir(real)
	}
	return os.ReadDir(path)
}

func (s *DryRunStorage) Rename(oldPath, newPath string) error {
	real, ok := s.moved[oldPath]
	if ok {
		delete(s.moved, oldPath)
	} else {
		if _, err := s.Lstat(oldPath); err != nil {
			return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrNotExist}
		}
		real = oldPath
	}
	s.gone[oldPath] = true
	s.moved[newPath] = real
	return nil
}
