package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTreeCommand(t *testing.T) {
	workDir := t.TempDir()
	writeTestFile(t, filepath.Join(workDir, "docs", "Read Me.md"))
	writeTestFile(t, filepath.Join(workDir, "docs", "build", "Out File.js"))
	writeTestFile(t, filepath.Join(workDir, "docs", "intro.md"))
	setupTestEnvironment(t, workDir, t.TempDir())

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "plain",
			args: []string{"tree", "docs"},
			want: []string{
				"Folder structure of 'docs':",
				"├── Read Me.md\n",
				"├── build\n",
				"│   └── Out File.js\n",
				"└── intro.md\n",
			},
			notWant: []string{" -> "},
		},
		{
			name: "preview",
			args: []string{"tree", "docs", "--preview"},
			want: []string{
				"├── Read Me.md -> read-me.md\n",
				"│   └── Out File.js -> out-file.js\n",
				"└── intro.md\n",
			},
		},
		{
			name:    "exclude defaults",
			args:    []string{"tree", "docs", "--exclude-defaults"},
			want:    []string{"├── build\n"},
			notWant: []string{"Out File.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetGlobalState()
			output, err := runCLI(tt.args...)
			if err != nil {
				t.Fatalf("Command failed: %v\nOutput: %s", err, output)
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output:\n%s", want, output)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(output, notWant) {
					t.Errorf("Did not expect %q in output:\n%s", notWant, output)
				}
			}
		})
	}
}

func TestTreeCommand_NotADirectory(t *testing.T) {
	workDir := t.TempDir()
	writeTestFile(t, filepath.Join(workDir, "file.txt"))
	setupTestEnvironment(t, workDir, t.TempDir())

	output, err := runCLI("tree", "file.txt")
	if err == nil {
		t.Fatal("Expected an error for a file argument")
	}
	if !strings.Contains(output, "is not a directory") {
		t.Errorf("Unexpected output:\n%s", output)
	}
}
