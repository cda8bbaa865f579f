// Package report turns a rename sweep into output: the JSON mapping file
// written after an applied sweep, and the console summary.
//
// The mapping file is a JSON array of {"old": ..., "new": ...} objects in
// sweep order, children before parents, with paths relative to the root.
package report
