// Package audit records applied sweeps in a JSON Lines audit trail.
//
// Every `rename --apply` run appends one entry to the user-level log at:
//
//	$XDG_DATA_HOME/slugsweep/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - User and host that ran the sweep
//   - Operation name and scan root
//   - Renamed and failed entry counts, and the mapping file if one was written
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the sweep result is unaffected.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display. Malformed entries
// are silently skipped to handle partial writes.
package audit
