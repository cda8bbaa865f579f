package workflows

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/slugsweep/internal/slug"
)

// TreeOptions configures the tree workflow.
type TreeOptions struct {
	// Exclude prunes directories by name. Nil lists everything.
	Exclude ExclusionSet

	// Preview appends " -> <cleaned>" to every entry a sweep would rename.
	Preview bool
}

// Tree writes the directory tree under root to w, one entry per line,
// sorted by name and drawn with box connectors. Symlinks are listed but
// never followed.
func Tree(w io.Writer, root string, opts TreeOptions) error {
	return printTree(w, root, "", opts)
}

func printTree(w io.Writer, dir, prefix string, opts TreeOptions) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for i, entry := range entries {
		last := i == len(entries)-1
		connector, extension := "├── ", "│   "
		if last {
			connector, extension = "└── ", "    "
		}

		name := entry.Name()
		isDir := entry.IsDir()
		excluded := isDir && opts.Exclude.Contains(name)

		line := prefix + connector + name
		if opts.Preview && !excluded && entry.Type()&os.ModeSymlink == 0 {
			line += previewSuffix(name, isDir)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		if isDir && !excluded {
			if err := printTree(w, filepath.Join(dir, name), prefix+extension, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func previewSuffix(name string, isDir bool) string {
	var cleaned string
	var ok bool
	if isDir {
		cleaned, ok = slug.CleanDir(name)
	} else {
		cleaned, ok = slug.CleanFile(name)
	}
	switch {
	case !ok:
		return " -> (empty, skipped)"
	case cleaned != name:
		return " -> " + cleaned
	default:
		return ""
	}
}
