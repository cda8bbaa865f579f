package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
	"github.com/PolarWolf314/slugsweep/internal/workflows"
)

// DefaultMappingFile is where the mapping goes unless configured otherwise.
const DefaultMappingFile = "rename-mapping.json"

// WriteMapping writes mapping to path as an indented JSON array. An empty
// mapping is written as [].
func WriteMapping(path string, mapping []workflows.Record) error {
	if mapping == nil {
		mapping = []workflows.Record{}
	}

	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding mapping: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	// #nosec G306 -- the mapping is meant to be shared alongside the renamed tree.
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing mapping to %s: %w", path, err)
	}
	return nil
}

// ReadMapping loads a mapping file written by WriteMapping.
func ReadMapping(path string) ([]workflows.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping %s: %w", path, err)
	}

	var mapping []workflows.Record
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, serrors.ErrInvalidReport, err)
	}
	for i, r := range mapping {
		if r.Old == "" || r.New == "" {
			return nil, fmt.Errorf("%s: entry %d: %w: missing old or new path", path, i, serrors.ErrInvalidReport)
		}
	}
	return mapping, nil
}
