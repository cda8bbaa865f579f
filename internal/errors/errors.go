package errors

import "errors"

// Name errors indicate that normalisation produced nothing usable.
var (
	// ErrEmptyName indicates the cleaned file name is empty.
	ErrEmptyName = errors.New("cleaned name empty; skipped")

	// ErrEmptyFolderName indicates the cleaned directory name is empty.
	ErrEmptyFolderName = errors.New("cleaned folder name empty; skipped")
)

// Path errors indicate issues with the sweep root.
var (
	// ErrRootNotFound indicates the sweep root does not exist.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrNotADirectory indicates the sweep root is not a directory.
	ErrNotADirectory = errors.New("root is not a directory")
)

// Configuration errors indicate issues with the config file.
var (
	// ErrInvalidConfig indicates the config file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates a config file is already present.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Report errors indicate issues with the mapping report.
var (
	// ErrInvalidReport indicates a mapping report could not be parsed.
	ErrInvalidReport = errors.New("mapping report is invalid")
)

// Audit errors indicate issues with the audit log.
var (
	// ErrNoAuditLog indicates no sweep has been recorded yet.
	ErrNoAuditLog = errors.New("no audit log found")

	// ErrInvalidDateFormat indicates a date filter is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
