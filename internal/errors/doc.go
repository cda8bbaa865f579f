// Package errors provides typed error values for the slugsweep application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Name errors: normalisation produced nothing usable (ErrEmptyName)
//   - Path errors: the sweep root is unusable (ErrNotADirectory, ErrRootNotFound)
//   - Config errors: the config file is malformed or exists (ErrInvalidConfig, ErrConfigExists)
//   - Report errors: a mapping file cannot be read back (ErrInvalidReport)
//   - Audit errors: no log yet or a bad date filter (ErrNoAuditLog, ErrInvalidDateFormat)
//
// # Usage
//
// Return errors from internal packages:
//
//	if !info.IsDir() {
//	    return nil, errors.ErrNotADirectory
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Rename(ctx, opts)
//	if errors.Is(err, serrors.ErrNotADirectory) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("cleaning %s: %w", path, errors.ErrEmptyName)
package errors
