package audit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
)

func writeLog(t *testing.T, dataDir string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		t.Fatal(err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dataDir, "audit.jsonl"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func sampleLog(t *testing.T) {
	t.Helper()
	dataDir := withDataDir(t)
	writeLog(t, dataDir,
		`{"ts":"2024-01-10T09:00:00.000000Z","op":"rename","root":"/srv/a","renamed_count":1}`,
		`{"ts":"2024-01-15T10:30:00.000000Z","op":"rename","root":"/srv/b","renamed_count":2}`,
		`{"ts":"2024-01-20T23:59:00.000000Z","op":"rename","root":"/srv/a/","renamed_count":3}`,
		`{"ts":"2024-02-01T08:00:00.000000Z","op":"rename","root":"/srv/c","renamed_count":4}`,
	)
}

func counts(entries []Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.RenamedCount)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		opts QueryOptions
		want []int
	}{
		{"all", QueryOptions{}, []int{1, 2, 3, 4}},
		{"limit keeps most recent", QueryOptions{Limit: 2}, []int{3, 4}},
		{"reverse", QueryOptions{Reverse: true}, []int{4, 3, 2, 1}},
		{"reverse with limit", QueryOptions{Reverse: true, Limit: 1}, []int{4}},
		{"root", QueryOptions{Root: "/srv/a"}, []int{1, 3}},
		{"since", QueryOptions{Since: "2024-01-15"}, []int{2, 3, 4}},
		{"until includes whole day", QueryOptions{Until: "2024-01-20"}, []int{1, 2, 3}},
		{"range", QueryOptions{Since: "2024-01-11", Until: "2024-01-31"}, []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampleLog(t)

			result, err := Query(tt.opts)
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if result.TotalEntriesBeforeFilter != 4 {
				t.Errorf("Expected 4 entries before filtering, got %d", result.TotalEntriesBeforeFilter)
			}
			if got := counts(result.Entries); !equalInts(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestQuery_InvalidDate(t *testing.T) {
	sampleLog(t)

	for _, opts := range []QueryOptions{{Since: "15/01/2024"}, {Until: "yesterday"}} {
		_, err := Query(opts)
		if !errors.Is(err, serrors.ErrInvalidDateFormat) {
			t.Errorf("Expected ErrInvalidDateFormat for %+v, got %v", opts, err)
		}
	}
}

func TestQuery_NoLog(t *testing.T) {
	withDataDir(t)

	_, err := Query(QueryOptions{})
	if !errors.Is(err, serrors.ErrNoAuditLog) {
		t.Errorf("Expected ErrNoAuditLog, got %v", err)
	}
}

func TestEntry_FormatDateTime(t *testing.T) {
	tests := []struct {
		ts   string
		want string
	}{
		{"2024-01-15T10:30:00.123456Z", "2024-01-15 10:30:00"},
		{"2024-01-15T10:30:00Z", "2024-01-15 10:30:00"},
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		if got := (Entry{Timestamp: tt.ts}).FormatDateTime(); got != tt.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}
