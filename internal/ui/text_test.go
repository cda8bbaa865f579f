package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	result := Code.Sprint("slugsweep rename --apply")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "slugsweep tree", "`slugsweep tree`"},
		{"Path has no decoration", Path, "docs/My File.md", "docs/My File.md"},
		{"Old has no decoration", Old, "My File.md", "My File.md"},
		{"New has no decoration", New, "my-file.md", "my-file.md"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Highlight adds quotes", Highlight, "docs", "'docs'"},
		{"Muted adds parentheses", Muted, "unchanged", "(unchanged)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := Highlight.Sprintf("%d items", 3)
	if got != "'3 items'" {
		t.Errorf("Highlight.Sprintf() = %q, want %q", got, "'3 items'")
	}
}

func TestRenamePair(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenamePair("My Docs/Read Me.md", "My Docs/read-me.md")
	want := "My Docs/Read Me.md  ->  My Docs/read-me.md"
	if got != want {
		t.Errorf("RenamePair() = %q, want %q", got, want)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
	}
	for _, tt := range tests {
		if got := EnsureNewline(tt.in); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
