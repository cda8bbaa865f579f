package workflows

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates root/rel with its own path as content.
func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func mkdir(t *testing.T, root, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", rel, err)
	}
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("Symlinks not supported here: %v", err)
	}
}

// snapshot records every entry under root: directories map to "<dir>",
// symlinks to their target and files to their content.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	state := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			state[rel] = "link:" + target
		case d.IsDir():
			state[rel] = "<dir>"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			state[rel] = string(data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return state
}

// dirNames lists the names in dir exactly as the filesystem stores them.
func dirNames(t *testing.T, dir string) map[string]bool {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}
	return names
}

// caseSensitive reports whether the filesystem under dir tells names
// apart by case.
func caseSensitive(t *testing.T, dir string) bool {
	t.Helper()
	marker := filepath.Join(dir, "CaseCheck")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		t.Fatalf("Failed to write case marker: %v", err)
	}
	defer os.Remove(marker)
	_, err := os.Lstat(filepath.Join(dir, "casecheck"))
	return err != nil
}

func p(parts ...string) string {
	return filepath.Join(parts...)
}
