// Package undo keeps the one-shot undo token for the most recent log action.
package undo

import (
	"errors"
	"os"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/xolan/sip/internal/entry"
)

// TokenFile is the name of the JSON file holding the pending undo token
const TokenFile = "last.json"

var (
	// ErrNothingToUndo is returned when there is no pending token or its
	// entry is already gone.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrExpired is returned when the undo window has passed.
	ErrExpired = errors.New("undo window has passed")
)

// Token identifies the entry created by the most recent log action.
type Token struct {
	LoggedAt time.Time `json:"timestamp_logged"`
	Name     string    `json:"drink_name"`
	Units    float64   `json:"units"`
}

// NewToken returns the token for e.
func NewToken(e entry.Entry) Token {
	return Token{LoggedAt: e.LoggedAt, Name: e.Name, Units: e.Units}
}

// Expired reports whether now is past the window starting at LoggedAt.
// A zero window never expires.
func (t Token) Expired(now time.Time, window time.Duration) bool {
	if window <= 0 {
		return false
	}
	return now.Sub(t.LoggedAt) > window
}

// Remaining returns how long the token stays usable, zero once expired.
// With no window it returns zero as well; callers check Expired first.
func (t Token) Remaining(now time.Time, window time.Duration) time.Duration {
	if window <= 0 {
		return 0
	}
	left := window - now.Sub(t.LoggedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Save writes the token to path, replacing any previous one.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func Save(path string, t Token) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

// Load reads the token at path.
// Returns nil if the file doesn't exist (nothing to undo).
func Load(path string) (*Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var t Token
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Clear removes the token file. Returns nil if it doesn't exist.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
