package slug

import (
	"regexp"
	"strings"
)

var (
	separatorRun  = regexp.MustCompile(`[_\s\v\x1c-\x1f\x{85}\p{Z}]+`)
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	disallowed    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Pattern matches a non-empty canonical slug.
var Pattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Clean returns the slug form of name. The result is empty when name holds
// no ASCII letters or digits.
func Clean(name string) string {
	name = separatorRun.ReplaceAllString(name, "-")
	// Each match consumes the uppercase letter, so adjacent boundaries
	// like "aBcD" are still split one by one.
	name = camelBoundary.ReplaceAllString(name, "$1-$2")
	name = disallowed.ReplaceAllString(name, "")
	name = hyphenRun.ReplaceAllString(name, "-")
	return strings.ToLower(strings.Trim(name, "-"))
}

// IsClean reports whether name is already a canonical slug.
func IsClean(name string) bool {
	return Pattern.MatchString(name)
}

// SplitExt splits name into a base and an extension. The extension starts
// at the last dot and includes it. Leading dots belong to the base, so
// ".bashrc" has no extension and "..x" has none either.
func SplitExt(name string) (base, ext string) {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return name, ""
	}
	if strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}

// CleanFile returns the cleaned name of a file: the slug of its base plus
// its lower-cased extension. ok is false when the base cleans to nothing.
func CleanFile(name string) (cleaned string, ok bool) {
	base, ext := SplitExt(name)
	b := Clean(base)
	if b == "" {
		return "", false
	}
	return b + strings.ToLower(ext), true
}

// CleanDir returns the cleaned name of a directory. ok is false when the
// name cleans to nothing.
func CleanDir(name string) (cleaned string, ok bool) {
	c := Clean(name)
	return c, c != ""
}
