// Package slug normalises file and directory names into lowercase,
// hyphen-delimited slugs.
//
// Clean applies a fixed pipeline of substitutions, in this order:
//
//  1. runs of underscores and whitespace become a single hyphen
//  2. a hyphen is inserted at every lowerUpper camelCase boundary
//  3. everything outside [A-Za-z0-9-] is removed
//  4. runs of hyphens collapse to one
//  5. leading and trailing hyphens are trimmed
//  6. the result is lower-cased
//
// The output of Clean always matches Pattern or is empty, and Clean is
// idempotent. Extensions are not slugified: SplitExt separates them so
// the caller can lower-case them on their own.
package slug
