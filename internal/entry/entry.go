package entry

import (
	"errors"
	"math"
	"time"
)

// Common validation errors for entries
var (
	ErrEmptyName       = errors.New("drink name cannot be empty")
	ErrInvalidUnits    = errors.New("units must be a non-negative number")
	ErrMissingLoggedAt = errors.New("entry has no logged-at timestamp")
)

// Entry represents a single logged drink.
// LoggedAt is the creation instant and doubles as the entry's identity.
// OccurredAt is when the drink was actually consumed and may be backdated.
type Entry struct {
	LoggedAt     time.Time `json:"timestamp_logged"`
	OccurredAt   time.Time `json:"timestamp"`
	Category     string    `json:"drink_category"`
	Name         string    `json:"drink_name"`
	IsCustomName bool      `json:"is_custom_name"`
	Units        float64   `json:"units"`
}

// Validate checks the required fields of an entry.
func (e Entry) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if math.IsNaN(e.Units) || math.IsInf(e.Units, 0) || e.Units < 0 {
		return ErrInvalidUnits
	}
	if e.LoggedAt.IsZero() {
		return ErrMissingLoggedAt
	}
	return nil
}

// Is reports whether the entry carries the given identity.
func (e Entry) Is(loggedAt time.Time) bool {
	return e.LoggedAt.Equal(loggedAt)
}

// Backdated reports whether the consumption time differs from the log time.
func (e Entry) Backdated() bool {
	return !e.OccurredAt.Equal(e.LoggedAt)
}
