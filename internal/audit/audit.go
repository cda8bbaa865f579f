package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/slugsweep/internal/configs"
	"github.com/PolarWolf314/slugsweep/internal/utils"
)

const (
	// OpRename is the operation name of an applied sweep.
	OpRename = "rename"

	logFileName     = "audit.jsonl"
	timestampFormat = "2006-01-02T15:04:05.000000Z"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp    string `json:"ts"` // RFC3339 with microseconds.
	User         string `json:"user,omitempty"`
	Host         string `json:"host,omitempty"`
	Operation    string `json:"op"`
	Root         string `json:"root"`
	RenamedCount int    `json:"renamed_count"`
	ErrorCount   int    `json:"error_count"`
	MappingFile  string `json:"mapping_file,omitempty"`
}

// NewEntry returns an entry for op with the user and host filled in where
// they can be determined.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}

	if username, err := utils.GetUsername(); err == nil {
		entry.User = username
	}
	if hostname, err := utils.GetHostname(); err == nil {
		entry.Host = hostname
	}
	return entry
}

// Log appends an entry to the audit log.
// Failures are swallowed; a sweep never fails because of its audit entry.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampFormat)
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.UserSlugsweepSettings.UserDataPath, logFileName)
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Time parses the entry timestamp. The zero time is returned for entries
// written with an unexpected format.
func (e Entry) Time() time.Time {
	ts, err := time.Parse(timestampFormat, e.Timestamp)
	if err != nil {
		ts, err = time.Parse(time.RFC3339Nano, e.Timestamp)
		if err != nil {
			return time.Time{}
		}
	}
	return ts
}
