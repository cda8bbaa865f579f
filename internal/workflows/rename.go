package workflows

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
	logger "github.com/PolarWolf314/slugsweep/internal/logging"
	"github.com/PolarWolf314/slugsweep/internal/slug"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExclusions are the directory names a sweep skips unless told otherwise.
var DefaultExclusions = []string{"node_modules", ".git", "img", "static", "assets", "build"}

// ExclusionSet holds lower-cased directory names. Matching is case-insensitive.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from names.
func NewExclusionSet(names ...string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Contains reports whether name is excluded, ignoring case.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Record is one rename, with both paths relative to the sweep root.
type Record struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Failure is an entry that could not be renamed. Path is relative to the
// sweep root.
type Failure struct {
	Path string
	Err  error
}

// RenameOptions configures the rename workflow.
type RenameOptions struct {
	// Root is the directory to sweep. It is never renamed itself.
	Root string

	// Apply performs the renames. Without it the sweep is a dry-run.
	Apply bool

	// Exclude lists directory names to prune. Nil means DefaultExclusions;
	// an empty, non-nil set excludes nothing.
	Exclude ExclusionSet

	// ExcludeGlobs are doublestar patterns matched against slash-separated
	// paths relative to Root. Matching directories are pruned and matching
	// files are left alone.
	ExcludeGlobs []string

	// Storage overrides the backend. Nil means DiskStorage when Apply is set
	// and a fresh DryRunStorage otherwise.
	Storage Storage

	Logger logger.Logger
}

// RenameResult contains the outcome of a sweep.
type RenameResult struct {
	// Root is the swept directory as given in the options.
	Root string

	// Apply mirrors RenameOptions.Apply.
	Apply bool

	// Mapping lists renames in walk order: children before their parents.
	Mapping []Record

	// Errors lists entries that were skipped because of a failure.
	Errors []Failure
}

// Rename sweeps opts.Root bottom-up and renames every file and directory
// to its slug form. Symlinks and excluded directories are skipped.
//
// Problems with single entries end up in RenameResult.Errors. An error is
// returned only when the root is unusable, a glob is malformed, or ctx is
// cancelled; in the last case the partial result is returned as well.
func Rename(ctx context.Context, opts RenameOptions) (*RenameResult, error) {
	info, err := os.Stat(opts.Root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", opts.Root, serrors.ErrRootNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("checking root %s: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", opts.Root, serrors.ErrNotADirectory)
	}

	for _, pattern := range opts.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude glob %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	exclude := opts.Exclude
	if exclude == nil {
		exclude = NewExclusionSet(DefaultExclusions...)
	}

	store := opts.Storage
	if store == nil {
		if opts.Apply {
			store = DiskStorage{}
		} else {
			store = NewDryRunStorage()
		}
	}

	s := &sweeper{
		root:    opts.Root,
		store:   store,
		exclude: exclude,
		globs:   opts.ExcludeGlobs,
		log:     opts.Logger,
		result: &RenameResult{
			Root:  opts.Root,
			Apply: opts.Apply,
		},
	}

	opts.Logger.Debugf("Sweeping %s (apply=%t, %d excluded names, %d globs)", opts.Root, opts.Apply, len(exclude), len(opts.ExcludeGlobs))
	if err := s.walk(ctx, opts.Root); err != nil {
		return s.result, err
	}
	return s.result, nil
}

type sweeper struct {
	root    string
	store   Storage
	exclude ExclusionSet
	globs   []string
	log     logger.Logger
	result  *RenameResult
}

// walk handles dir's subtree: child directories first, then dir's files,
// then the child directories themselves.
func (s *sweeper) walk(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.store.ReadDir(dir)
	if err != nil {
		s.fail(dir, fmt.Errorf("reading directory: %w", err))
		return nil
	}

	var files, dirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.Type()&fs.ModeSymlink != 0 {
			s.log.Debugf("Skipping symlink %s", path)
			continue
		}
		if entry.IsDir() {
			if s.exclude.Contains(name) || s.globExcluded(path) {
				s.log.Debugf("Pruning excluded directory %s", path)
				continue
			}
			dirs = append(dirs, name)
			continue
		}
		if s.globExcluded(path) {
			s.log.Debugf("Skipping excluded file %s", path)
			continue
		}
		files = append(files, name)
	}

	for _, name := range dirs {
		if err := s.walk(ctx, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.renameEntry(dir, name, false)
	}
	for _, name := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.renameEntry(dir, name, true)
	}
	return nil
}

func (s *sweeper) renameEntry(dir, name string, isDir bool) {
	oldPath := filepath.Join(dir, name)

	var newName string
	var ok bool
	if isDir {
		newName, ok = slug.CleanDir(name)
	} else {
		newName, ok = slug.CleanFile(name)
	}
	if !ok {
		if isDir {
			s.fail(oldPath, serrors.ErrEmptyFolderName)
		} else {
			s.fail(oldPath, serrors.ErrEmptyName)
		}
		return
	}
	if newName == name {
		return
	}

	actual, err := SafeRename(s.store, oldPath, filepath.Join(dir, newName))
	if err != nil {
		s.fail(oldPath, err)
		return
	}

	record := Record{Old: s.rel(oldPath), New: s.rel(actual)}
	s.log.Debugf("Renamed %s -> %s", record.Old, record.New)
	s.result.Mapping = append(s.result.Mapping, record)
}

func (s *sweeper) globExcluded(path string) bool {
	if len(s.globs) == 0 {
		return false
	}
	rel := filepath.ToSlash(s.rel(path))
	for _, pattern := range s.globs {
		// Patterns were validated up front, so Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (s *sweeper) fail(path string, err error) {
	rel := s.rel(path)
	s.log.Debugf("Failed on %s: %v", rel, err)
	s.result.Errors = append(s.result.Errors, Failure{Path: rel, Err: err})
}

func (s *sweeper) rel(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return path
	}
	return rel
}
