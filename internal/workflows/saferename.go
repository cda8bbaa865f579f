package workflows

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/slugsweep/internal/slug"
	"github.com/google/uuid"
)

// RenameError reports a rename that the storage refused.
type RenameError struct {
	Old string
	New string
	Err error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("renaming %s to %s: %v", e.Old, e.New, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// SafeRename moves oldPath to newPath through store and returns the path
// the entry actually ended up at.
//
// A case-only change goes through a temporary name so case-insensitive
// filesystems do not treat it as a no-op. When newPath is held by a
// different entry, "-1", "-2", ... is appended to the base name (before
// the extension) until a free name is found. A name that is listed in the
// directory under its exact spelling counts as taken even when it is a
// hard link to the entry being renamed. Otherwise entries are compared
// with os.SameFile; on filesystems without stable inode identity two
// distinct entries may be taken for one and the rename lands on the
// occupied name.
//
// Every failure comes back as a *RenameError.
func SafeRename(store Storage, oldPath, newPath string) (string, error) {
	oldInfo, err := store.Lstat(oldPath)
	if err != nil {
		return "", &RenameError{Old: oldPath, New: newPath, Err: err}
	}

	if isCaseOnlyChange(oldPath, newPath) {
		taken, err := heldByOther(store, oldPath, newPath, oldInfo)
		if err != nil {
			return "", &RenameError{Old: oldPath, New: newPath, Err: err}
		}
		if !taken {
			if err := renameViaTemp(store, oldPath, newPath); err != nil {
				return "", &RenameError{Old: oldPath, New: newPath, Err: err}
			}
			return newPath, nil
		}
	}

	candidate, err := freeCandidate(store, oldPath, newPath, oldInfo)
	if err != nil {
		return "", &RenameError{Old: oldPath, New: newPath, Err: err}
	}
	if err := store.Rename(oldPath, candidate); err != nil {
		return "", &RenameError{Old: oldPath, New: candidate, Err: err}
	}
	return candidate, nil
}

// isCaseOnlyChange reports whether the two paths name the same directory
// entry spelled with different letter case.
func isCaseOnlyChange(oldPath, newPath string) bool {
	if oldPath == newPath || filepath.Dir(oldPath) != filepath.Dir(newPath) {
		return false
	}
	return strings.EqualFold(filepath.Base(oldPath), filepath.Base(newPath))
}

// heldByOther reports whether path is occupied by something other than
// the entry at oldPath, described by self.
func heldByOther(store Storage, oldPath, path string, self fs.FileInfo) (bool, error) {
	info, err := store.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !os.SameFile(info, self) {
		return true, nil
	}
	if path == oldPath {
		return false, nil
	}
	// Same file under another name: either a case-insensitive lookup of
	// oldPath itself, or a second hard link. Renaming onto a hard link is
	// a no-op that leaves oldPath in place.
	return listed(store, path)
}

// listed reports whether the directory of path holds an entry spelled
// exactly like path's base name.
func listed(store Storage, path string) (bool, error) {
	entries, err := store.ReadDir(filepath.Dir(path))
	if err != nil {
		return false, err
	}
	name := filepath.Base(path)
	for _, entry := range entries {
		if entry.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

// renameViaTemp moves oldPath to newPath through a short hidden name in the
// same directory, so long names do not overflow the name length limit.
func renameViaTemp(store Storage, oldPath, newPath string) error {
	temp := filepath.Join(filepath.Dir(oldPath), "."+strings.ReplaceAll(uuid.NewString(), "-", ""))
	if err := store.Rename(oldPath, temp); err != nil {
		return err
	}
	if err := store.Rename(temp, newPath); err != nil {
		// Put the entry back under its old name rather than leave the temp name behind.
		if restoreErr := store.Rename(temp, oldPath); restoreErr != nil {
			return fmt.Errorf("%w (entry left at %s)", err, temp)
		}
		return err
	}
	return nil
}

func freeCandidate(store Storage, oldPath, newPath string, self fs.FileInfo) (string, error) {
	dir := filepath.Dir(newPath)
	base, ext := slug.SplitExt(filepath.Base(newPath))

	candidate := newPath
	for counter := 1; ; counter++ {
		taken, err := heldByOther(store, oldPath, candidate, self)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, counter, ext))
	}
}
