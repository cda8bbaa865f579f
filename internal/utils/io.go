package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadStdinLines reads piped stdin and returns its non-blank lines.
// Returns an error if stdin is a terminal or cannot be read.
func ReadStdinLines() ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat stdin: %w", err)
	}

	// ModeCharDevice means stdin is connected to a terminal.
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no names given (hint: pass them as arguments or pipe them on stdin)")
	}

	return ReadLines(os.Stdin)
}

// ReadLines returns the non-blank lines of r with trailing carriage returns
// removed. Surrounding spaces are kept since they are part of the name.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return lines, nil
}
