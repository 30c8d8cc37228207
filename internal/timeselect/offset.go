// Package timeselect turns "when did I have this" choices into instants:
// a fixed "minutes ago" menu, or an hour and minute picked in either order.
package timeselect

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Offsets are the minutes-ago choices offered for backdating.
var Offsets = []int{15, 30, 45, 60}

// ErrInvalidOffset is returned for an offset not in Offsets.
var ErrInvalidOffset = errors.New("offset must be one of 15, 30, 45 or 60 minutes")

// ValidOffset reports whether minutes is one of Offsets.
func ValidOffset(minutes int) bool {
	return slices.Contains(Offsets, minutes)
}

// ResolveOffset returns now moved back by minutes.
func ResolveOffset(now time.Time, minutes int) (time.Time, error) {
	if !ValidOffset(minutes) {
		return time.Time{}, fmt.Errorf("%w: got %d", ErrInvalidOffset, minutes)
	}
	return now.Add(-time.Duration(minutes) * time.Minute), nil
}

// OffsetLabel renders an offset for menus, e.g. "30 min ago" or "1 hour ago".
func OffsetLabel(minutes int) string {
	if minutes == 60 {
		return "1 hour ago"
	}
	return fmt.Sprintf("%d min ago", minutes)
}
