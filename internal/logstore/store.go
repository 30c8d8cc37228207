// Package logstore holds the drink log in memory and keeps a storage backend
// in step with it.
package logstore

import (
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xolan/sip/internal/diag"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/storage"
)

// Store is an append-only drink log with removal by LoggedAt.
// Every mutation rewrites the full sequence through the backend. A failed
// write is logged and the change is kept in memory; Dirty reports it.
// A failed read never leads to a write: new drinks are held in memory until
// the backend reads again, then saved after the stored ones.
type Store struct {
	mu       sync.Mutex
	backend  storage.Backend
	log      *log.Logger
	entries  []entry.Entry
	warnings []storage.ParseWarning
	loaded   bool
	dirty    bool

	// unreadable is set while the backend fails to read. Nothing is written
	// then; drinks logged meanwhile wait in pending.
	unreadable bool
	pending    []entry.Entry
}

// New returns a Store over backend. A nil logger discards diagnostics.
func New(backend storage.Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = diag.Discard()
	}
	return &Store{backend: backend, log: logger}
}

// LoadAll reads the persisted sequence in insertion order.
// Unreadable storage yields an empty sequence and a diagnostic, never an error.
// While the store holds unsaved changes, the in-memory sequence wins.
func (s *Store) LoadAll() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()
	return slices.Clone(s.entries)
}

// refresh reloads from the backend unless unsaved changes would be lost.
func (s *Store) refresh() {
	if s.dirty && !s.unreadable {
		return
	}

	result, err := s.backend.Read()
	if err != nil {
		s.log.Error("cannot read drink log, not saving until it reads again", "path", s.backend.Location(), "err", err)
		s.unreadable = true
		s.entries = slices.Clone(s.pending)
		s.warnings = nil
		s.loaded = true
		return
	}

	for _, w := range result.Warnings {
		s.log.Warn("skipping corrupted record", "path", s.backend.Location(), "line", w.LineNumber, "err", w.Error)
	}

	s.entries = result.Entries
	s.warnings = result.Warnings
	s.loaded = true

	if !s.unreadable {
		return
	}
	s.unreadable = false
	if len(s.pending) == 0 {
		return
	}
	for _, e := range s.pending {
		s.entries = append(s.entries, s.unique(e))
	}
	s.pending = nil
	s.persist()
}

// Append adds e to the end of the log and persists the whole sequence.
// If e.LoggedAt already identifies a stored entry it is moved forward by a
// nanosecond until unique. The stored entry is returned.
func (s *Store) Append(e entry.Entry) entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()

	e = s.unique(e)
	if s.unreadable {
		s.pending = append(s.pending, e)
		s.entries = slices.Clone(s.pending)
		s.dirty = true
		return e
	}

	s.entries = append(s.entries, e)
	s.persist()
	return e
}

// Remove deletes the entry identified by loggedAt.
// It returns false and leaves storage untouched when nothing matches.
func (s *Store) Remove(loggedAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()

	i := s.indexOf(loggedAt)
	if i < 0 {
		return false
	}

	if s.unreadable {
		s.pending = slices.Delete(s.pending, i, i+1)
		s.entries = slices.Clone(s.pending)
		s.dirty = len(s.pending) > 0
		return true
	}

	s.entries = slices.Delete(s.entries, i, i+1)
	s.persist()
	return true
}

// Last returns the most recently created entry.
func (s *Store) Last() (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.refresh()
	}
	if len(s.entries) == 0 {
		return entry.Entry{}, false
	}

	last := s.entries[0]
	for _, e := range s.entries[1:] {
		if e.LoggedAt.After(last.LoggedAt) {
			last = e
		}
	}
	return last, true
}

// Dirty reports whether changes exist only in memory, because the last write
// failed or the log could not be read.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Warnings returns corruption diagnostics from the most recent load.
func (s *Store) Warnings() []storage.ParseWarning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.warnings)
}

// Location returns where the backend keeps the log.
func (s *Store) Location() string {
	return s.backend.Location()
}

// unique moves e.LoggedAt forward a nanosecond at a time until no stored
// entry has it.
func (s *Store) unique(e entry.Entry) entry.Entry {
	for s.indexOf(e.LoggedAt) >= 0 {
		e.LoggedAt = e.LoggedAt.Add(time.Nanosecond)
	}
	return e
}

func (s *Store) indexOf(loggedAt time.Time) int {
	return slices.IndexFunc(s.entries, func(e entry.Entry) bool {
		return e.Is(loggedAt)
	})
}

func (s *Store) persist() {
	if err := s.backend.Write(s.entries); err != nil {
		s.log.Error("cannot save drink log, keeping changes in memory", "path", s.backend.Location(), "err", err)
		s.dirty = true
		return
	}
	s.dirty = false
}
