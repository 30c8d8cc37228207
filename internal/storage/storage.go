// Package storage persists the drink log. Every mutation rewrites the whole
// sequence; backends differ only in on-disk layout.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/xolan/sip/internal/entry"
)

const (
	// EntriesFile is the name of the JSON Lines storage file
	EntriesFile = "drink_log.jsonl"
	// SlotDir is the diskv base directory used by the slot backend
	SlotDir = "slot"
	// SlotKey is the single key holding the JSON array in the slot backend
	SlotKey = "drink_log"

	// KindJSONL identifies the JSON Lines backend
	KindJSONL = "jsonl"
	// KindSlot identifies the single-slot key-value backend
	KindSlot = "slot"
)

// ParseWarning represents a warning about a corrupted or malformed entry
type ParseWarning struct {
	LineNumber int    // Line (jsonl) or array position (slot), 1-indexed
	Content    string // Raw content of the corrupted record
	Error      string // Description of the parsing error
}

// ReadResult contains the results of reading entries from storage,
// including both successfully parsed entries and any warnings about
// corrupted or malformed records.
type ReadResult struct {
	Entries  []entry.Entry  // Successfully parsed entries, in stored order
	Warnings []ParseWarning // Warnings about corrupted records
}

// StorageHealth contains information about the health status of the storage.
type StorageHealth struct {
	TotalRecords     int            // Lines (jsonl) or array elements (slot)
	ValidEntries     int            // Number of successfully parsed entries
	CorruptedEntries int            // Number of corrupted/malformed records
	Warnings         []ParseWarning // Detailed information about each corruption
}

// Backend is a durable home for the full drink log sequence.
type Backend interface {
	// Read returns every stored entry in insertion order. A missing store
	// reads as empty; malformed records are reported as warnings.
	Read() (ReadResult, error)
	// Write replaces the stored sequence with entries.
	Write(entries []entry.Entry) error
	// Health reports record-level corruption.
	Health() (StorageHealth, error)
	// Location is the file that holds the data, used for backups and watching.
	Location() string
	// Kind names the backend (jsonl or slot).
	Kind() string
}

// Open returns the backend of the given kind rooted at dir.
func Open(kind, dir string) (Backend, error) {
	switch kind {
	case KindJSONL, "":
		return NewJSONLFile(filepath.Join(dir, EntriesFile)), nil
	case KindSlot:
		return NewSlot(filepath.Join(dir, SlotDir)), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

// truncate shortens raw record content for warnings
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
