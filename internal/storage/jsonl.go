package storage

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/xolan/sip/internal/entry"
)

// maxLineBytes bounds a single JSON line; entries are a few hundred bytes
const maxLineBytes = 1024 * 1024

// JSONLFile stores one JSON-encoded entry per line.
type JSONLFile struct {
	path string
}

// NewJSONLFile returns a JSON Lines backend for path.
func NewJSONLFile(path string) *JSONLFile {
	return &JSONLFile{path: path}
}

// Location returns the path of the JSON Lines file.
func (f *JSONLFile) Location() string {
	return f.path
}

// Kind returns KindJSONL.
func (f *JSONLFile) Kind() string {
	return KindJSONL
}

// Read reads all entries from the JSON Lines file and returns both the
// successfully parsed entries and warnings about any corrupted lines.
// Returns an empty ReadResult if the file doesn't exist.
func (f *JSONLFile) Read() (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()
		if strings.TrimSpace(lineContent) == "" {
			continue
		}

		var e entry.Entry
		err := json.Unmarshal([]byte(lineContent), &e)
		if err == nil {
			err = e.Validate()
		}
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, e)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// Write replaces the file with entries, one per line.
// The previous file is rotated into the backups first, then the new content
// is written to a temp file and renamed over the original.
func (f *JSONLFile) Write(entries []entry.Entry) error {
	if err := CreateBackup(f.path); err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
		_, _ = w.Write(line)
		_ = w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

// Health analyzes the file and returns line-level health information.
// Returns empty health status if the file doesn't exist.
func (f *JSONLFile) Health() (StorageHealth, error) {
	health := StorageHealth{Warnings: []ParseWarning{}}

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			health.TotalRecords++
		}
	}
	if err := scanner.Err(); err != nil {
		return health, err
	}

	result, err := f.Read()
	if err != nil {
		return health, err
	}

	health.ValidEntries = len(result.Entries)
	health.CorruptedEntries = len(result.Warnings)
	health.Warnings = result.Warnings
	return health, nil
}
