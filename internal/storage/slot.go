package storage

import (
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"github.com/segmentio/encoding/json"
	"github.com/xolan/sip/internal/entry"
)

// Slot keeps the whole log as one JSON array under a single diskv key,
// the same shape a browser keeps in local storage.
type Slot struct {
	d   *diskv.Diskv
	dir string
}

// NewSlot returns a slot backend rooted at dir.
func NewSlot(dir string) *Slot {
	return &Slot{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			TempDir:      filepath.Join(dir, ".tmp"),
			CacheSizeMax: 0,
		}),
		dir: dir,
	}
}

// Location returns the file diskv keeps the slot in.
func (s *Slot) Location() string {
	return filepath.Join(s.dir, SlotKey)
}

// Kind returns KindSlot.
func (s *Slot) Kind() string {
	return KindSlot
}

// Read decodes the slot. An absent slot reads as empty. A slot that is not a
// JSON array reads as empty with a single warning; individual malformed
// elements are skipped with a warning each.
func (s *Slot) Read() (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	if !s.d.Has(SlotKey) {
		return result, nil
	}

	data, err := s.d.Read(SlotKey)
	if err != nil {
		return result, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		result.Warnings = append(result.Warnings, ParseWarning{
			LineNumber: 1,
			Content:    truncate(string(data), 200),
			Error:      fmt.Sprintf("slot is not a JSON array: %v", err),
		})
		return result, nil
	}

	for i, r := range raw {
		var e entry.Entry
		err := json.Unmarshal(r, &e)
		if err == nil {
			err = e.Validate()
		}
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: i + 1,
				Content:    string(r),
				Error:      err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, e)
	}

	return result, nil
}

// Write replaces the slot with the JSON array of entries.
func (s *Slot) Write(entries []entry.Entry) error {
	if entries == nil {
		entries = []entry.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	if err := CreateBackup(s.Location()); err != nil {
		return err
	}

	return s.d.Write(SlotKey, data)
}

// Health reports element-level corruption of the slot.
func (s *Slot) Health() (StorageHealth, error) {
	health := StorageHealth{Warnings: []ParseWarning{}}

	result, err := s.Read()
	if err != nil {
		return health, err
	}

	health.ValidEntries = len(result.Entries)
	health.CorruptedEntries = len(result.Warnings)
	health.TotalRecords = health.ValidEntries + health.CorruptedEntries
	health.Warnings = result.Warnings
	return health, nil
}
