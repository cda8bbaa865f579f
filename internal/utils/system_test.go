package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Skipf("GetUsername unavailable: %v", err)
	}
	if username == "" {
		t.Fatal("Expected non-empty username")
	}
}

func TestGetHostname(t *testing.T) {
	hostname, err := GetHostname()
	if err != nil {
		t.Fatalf("GetHostname failed: %v", err)
	}
	if hostname == "" {
		t.Fatal("Expected non-empty hostname")
	}
}

func TestResolveRoot(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", homeDir},
		{"~/notes", filepath.Join(homeDir, "notes")},
		{"docs/../src", filepath.Join(cwd, "src")},
		{".", cwd},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveRoot(tt.in)
			if err != nil {
				t.Fatalf("ResolveRoot(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ResolveRoot(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	input := "My File.txt\r\n\n   \nfooBar\n"

	lines, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	want := []string{"My File.txt", "fooBar"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatPaths(t *testing.T) {
	color.NoColor = true

	got := FormatPaths([]string{"a", "b/c"})
	want := "\n    - a\n    - b/c\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
