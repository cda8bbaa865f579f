// Package utils provides shared utility functions for slugsweep.
//
// # Filesystem Utilities
//
//   - ResolveRoot: expands ~ and makes a scan root absolute
//   - FormatPaths: formats paths for human-readable output
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//
// # I/O Utilities
//
//   - ReadStdinLines: reads non-blank lines from piped standard input
//
// # Terminal Utilities
//
//   - IsTerminal: checks if stdin is a terminal
package utils
