package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// RenameArrow separates old and new paths in rename listings.
const RenameArrow = "  ->  "

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// RenamePair renders an old and new path joined by RenameArrow.
func RenamePair(oldPath, newPath string) string {
	return Old.Sprint(oldPath) + RenameArrow + New.Sprint(newPath)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for different types of CLI output.
var (
	// Code formats runnable commands. Yellow, or `backticks` without colour.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags like --apply.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Old formats a name or path as it was before renaming.
	Old = Formatter{color.New(color.FgHiBlack), "", ""}

	// New formats a name or path as it is after renaming.
	New = Formatter{color.New(color.FgGreen), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats emphasized values such as counts and the root path.
	// Cyan, or 'single quotes' without colour.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. Gray, or (parentheses) without colour.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
