package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
)

const dateFormat = "2006-01-02"

// QueryOptions filters the audit log.
type QueryOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Root keeps only sweeps of this directory.
	Root string

	// Since keeps entries on or after this date (YYYY-MM-DD).
	Since string

	// Until keeps entries on or before this date (YYYY-MM-DD).
	Until string
}

// QueryResult contains the filtered entries.
type QueryResult struct {
	Entries []Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Query reads and filters the audit log.
//
// Returns ErrNoAuditLog if nothing has been logged yet.
// Returns ErrInvalidDateFormat if a date filter is malformed.
func Query(opts QueryOptions) (*QueryResult, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, serrors.ErrNoAuditLog
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	entries, err := ParseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("parsing audit log: %w", err)
	}

	result := &QueryResult{TotalEntriesBeforeFilter: len(entries)}
	filtered := entries

	if opts.Root != "" {
		root := filepath.Clean(opts.Root)
		filtered = filter(filtered, func(e Entry) bool { return filepath.Clean(e.Root) == root })
	}

	if opts.Since != "" {
		since, err := time.Parse(dateFormat, opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", serrors.ErrInvalidDateFormat)
		}
		filtered = filter(filtered, func(e Entry) bool {
			ts := e.Time()
			return !ts.IsZero() && !ts.Before(since)
		})
	}

	if opts.Until != "" {
		until, err := time.Parse(dateFormat, opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", serrors.ErrInvalidDateFormat)
		}
		// Include the entire day.
		until = until.Add(24*time.Hour - time.Nanosecond)
		filtered = filter(filtered, func(e Entry) bool {
			ts := e.Time()
			return !ts.IsZero() && !ts.After(until)
		})
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// The limit always keeps the most recent entries.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filter(entries []Entry, keep func(Entry) bool) []Entry {
	var result []Entry
	for _, e := range entries {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}

// FormatDateTime formats the entry timestamp as YYYY-MM-DD HH:MM:SS.
func (e Entry) FormatDateTime() string {
	ts := e.Time()
	if ts.IsZero() {
		if len(e.Timestamp) >= 19 {
			return e.Timestamp[:19]
		}
		return e.Timestamp
	}
	return ts.Format("2006-01-02 15:04:05")
}
