package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveRoot expands a leading ~ and returns the absolute, cleaned form of
// path. It does not check that the path exists.
func ResolveRoot(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
