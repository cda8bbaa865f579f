package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
	"github.com/PolarWolf314/slugsweep/internal/report"
	"github.com/PolarWolf314/slugsweep/internal/workflows"
	"github.com/bmatcuk/doublestar/v4"
)

type Config struct {
	Rename RenameConfig `toml:"rename" json:"rename"`
	Audit  AuditConfig  `toml:"audit" json:"audit"`
}

type RenameConfig struct {
	Exclude      []string `toml:"exclude" json:"exclude"`
	ExcludeGlobs []string `toml:"exclude_globs" json:"exclude_globs"`
	MappingFile  string   `toml:"mapping_file" json:"mapping_file"`
	PrintLimit   int      `toml:"print_limit" json:"print_limit"` // Negative lists every rename.
}

type AuditConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	exclude := make([]string, len(workflows.DefaultExclusions))
	copy(exclude, workflows.DefaultExclusions)

	return &Config{
		Rename: RenameConfig{
			Exclude:      exclude,
			ExcludeGlobs: []string{},
			MappingFile:  report.DefaultMappingFile,
			PrintLimit:   report.DefaultPrintLimit,
		},
		Audit: AuditConfig{
			Enabled: true,
		},
	}
}

// LoadConfig reads the config at path on top of the defaults. An empty
// path means DefaultConfigPath. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes config to path. An empty path means DefaultConfigPath.
func SaveConfig(path string, config *Config) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks values that TOML decoding cannot.
func (c *Config) Validate() error {
	if c.Rename.MappingFile == "" {
		return fmt.Errorf("%w: rename.mapping_file must not be empty", serrors.ErrInvalidConfig)
	}
	for _, pattern := range c.Rename.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: invalid glob %q in rename.exclude_globs", serrors.ErrInvalidConfig, pattern)
		}
	}
	return nil
}
