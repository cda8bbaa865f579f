// Package workflows provides high-level orchestration for slugsweep commands.
//
// Workflows implement complete user-facing features independent of CLI
// concerns like flag parsing, spinners, and output formatting. The cmd/
// package parses flags, calls a workflow and formats its result.
//
// # Available Workflows
//
//   - Rename: one bottom-up sweep of a directory tree, renaming every file
//     and directory to its slug form (see package slug)
//   - Tree: prints a directory tree, optionally previewing cleaned names
//
// # Storage
//
// Rename goes through a Storage. DiskStorage talks to the operating
// system. DryRunStorage is a read-only overlay that records planned
// renames in memory, so a dry-run resolves collisions against the tree
// as it would look after each rename and reports the same mapping an
// applied run would.
//
// # Error Handling
//
// Only an unusable root aborts a sweep. Everything that goes wrong with a
// single entry is collected as a Failure and the sweep moves on. Failures
// wrap typed errors from the internal/errors package or a *RenameError,
// so callers can use errors.Is() and errors.As():
//
//	for _, f := range result.Errors {
//	    var re *workflows.RenameError
//	    if errors.As(f.Err, &re) {
//	        // storage refused the rename
//	    }
//	}
//
// # Context Usage
//
// Workflow functions accept a context.Context as their first parameter.
// Rename checks it between entries and returns the partial result when
// it is cancelled. A rename already started always completes.
package workflows
