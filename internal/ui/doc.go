// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content according to its role (commands, paths,
// old and new names, errors) and degrade to plain text decorations when
// colour is unavailable. Colour is disabled when the NO_COLOR environment
// variable is set or when fatih/color detects a terminal without colour
// support.
//
//	ui.Code.Sprint("slugsweep rename --apply")  // Commands and code
//	ui.Path.Sprint("docs/My File.md")           // File paths
//	ui.Old.Sprint("My File.md")                 // Name before a rename
//	ui.New.Sprint("my-file.md")                 // Name after a rename
//	ui.Success.Sprint("✓")                       // Success indicators
//	ui.Error.Sprint("✗")                         // Error indicators
//	ui.Warning.Sprint("[dry-run]")               // Warnings
//	ui.Info.Sprint("→")                          // Informational hints
//	ui.Muted.Sprint("unchanged")                // De-emphasized text
//
// Without colour, Code gets `backticks`, Highlight gets 'single quotes'
// and Muted gets (parentheses). Everything else is left undecorated.
package ui
