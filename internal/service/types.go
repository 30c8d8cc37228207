// Package service provides the business logic layer for sip.
// It wraps the log store, catalog, config and stats packages,
// providing one API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/stats"
	"github.com/xolan/sip/internal/storage"
)

// DateRange represents a predefined or custom date range for filtering entries
type DateRange int

const (
	DateRangeToday DateRange = iota
	DateRangeYesterday
	DateRangeThisWeek
	DateRangePrevWeek
	DateRangeThisMonth
	DateRangePrevMonth
	DateRangeLast // Last N days (requires LastDays field)
	DateRangeCustom
)

// DateRangeSpec specifies a date range for filtering entries
type DateRangeSpec struct {
	Type     DateRange
	LastDays int       // Used when Type is DateRangeLast
	From     time.Time // Used when Type is DateRangeCustom; zero means open
	To       time.Time // Used when Type is DateRangeCustom
}

// WhenKind says how the consumption time of a drink is chosen
type WhenKind int

const (
	WhenNow WhenKind = iota
	WhenOffset
	WhenClock
)

// When is a "when did I have this" choice, resolved at log time.
type When struct {
	Kind    WhenKind
	Minutes int // WhenOffset: minutes ago
	Hour    int // WhenClock
	Minute  int // WhenClock
}

// Now is the current instant.
func Now() When { return When{Kind: WhenNow} }

// Offset is minutes before now; minutes must be one of timeselect.Offsets.
func Offset(minutes int) When { return When{Kind: WhenOffset, Minutes: minutes} }

// Clock is hour:minute today.
func Clock(hour, minute int) When { return When{Kind: WhenClock, Hour: hour, Minute: minute} }

// ListResult contains the results of listing entries
type ListResult struct {
	Entries    []entry.Entry // Ordered by OccurredAt
	Warnings   []storage.ParseWarning
	Period     string    // Human-readable period description
	Start      time.Time // Start of the date range
	End        time.Time // End of the date range
	TotalUnits float64
	Dirty      bool // The last save failed; entries are only in memory
}

// StatsResult contains statistics for a time period
type StatsResult struct {
	Statistics    stats.Statistics
	Categories    []stats.Breakdown
	Drinks        []stats.Breakdown
	Days          []stats.DayTotal
	Comparison    string // Comparison with previous period (e.g., "down 2 units from last week")
	Period        string // Human-readable period description
	DailyLimit    float64
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}
