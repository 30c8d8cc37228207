// Package cli provides the CLI presentation layer for sip.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/stats"
	"github.com/xolan/sip/internal/storage"
)

// Fail writes the Error/Details/Hint block used by every command
func Fail(w io.Writer, msg string, err error, hint string) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(w, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// FormatUnits formats units for display, e.g. "2.3 units"
func FormatUnits(u float64) string {
	return stats.FormatUnits(u)
}

// FormatEntry formats an entry as "Pint of lager (Beer, 2.3 units)".
// Custom drinks are marked with an asterisk.
func FormatEntry(e entry.Entry) string {
	name := e.Name
	if e.IsCustomName {
		name += "*"
	}
	return fmt.Sprintf("%s (%s, %s)", name, e.Category, FormatUnits(e.Units))
}

// FormatWhen describes when a drink was had relative to when it was logged:
// "20:15" for a live log, "19:45 (logged 20:15)" for a backdated one.
func FormatWhen(e entry.Entry) string {
	if !e.Backdated() {
		return e.OccurredAt.Format("15:04")
	}
	return fmt.Sprintf("%s (logged %s)", e.OccurredAt.Format("15:04"), e.LoggedAt.Format("15:04"))
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// WriteWarnings prints corruption warnings, if any, to w
func WriteWarnings(w io.Writer, warnings []storage.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "Warning: Found %d corrupted %s in storage:\n", len(warnings), Pluralize("record", len(warnings)))
	for _, warning := range warnings {
		_, _ = fmt.Fprintln(w, FormatCorruptionWarning(warning))
	}
	_, _ = fmt.Fprintln(w)
}

// BuildPeriodWithFilters appends filter information to the period description.
// Example: "today" -> "today (Beer, Wine)"
func BuildPeriodWithFilters(period, keyword string, categories []string) string {
	var filters []string
	if keyword != "" {
		filters = append(filters, fmt.Sprintf("%q", keyword))
	}
	filters = append(filters, categories...)
	if len(filters) == 0 {
		return period
	}
	return fmt.Sprintf("%s (%s)", period, strings.Join(filters, ", "))
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// SpansMultipleDays checks if entries were drunk on more than one calendar day
func SpansMultipleDays(entries []entry.Entry) bool {
	if len(entries) < 2 {
		return false
	}
	firstDay := entries[0].OccurredAt.Format("2006-01-02")
	for _, e := range entries[1:] {
		if e.OccurredAt.Format("2006-01-02") != firstDay {
			return true
		}
	}
	return false
}

// FormatRemaining renders the time left to undo, e.g. "4m 10s"
func FormatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	if s == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
