// Package stats aggregates logged drinks over a date range. Entries are
// placed by when they were drunk (OccurredAt), not when they were logged.
package stats

import (
	"cmp"
	"slices"
	"time"

	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/timeutil"
)

const dayKeyLayout = "2006-01-02"

// Statistics contains aggregated statistics for a set of entries
type Statistics struct {
	TotalUnits         float64
	AverageUnitsPerDay float64
	EntryCount         int
	TotalDays          int
	DaysWithDrinks     int
	DrinkFreeDays      int
	DaysOverLimit      int
	PeakDay            time.Time
	PeakUnits          float64
}

// DayTotal is the sum for one calendar day
type DayTotal struct {
	Date  time.Time
	Units float64
	Count int
}

// Breakdown contains statistics for one category or one drink
type Breakdown struct {
	Name       string
	TotalUnits float64
	EntryCount int
}

// inRange returns the entries drunk within [start, end], in the range's timezone.
func inRange(entries []entry.Entry, start, end time.Time) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if timeutil.IsInRange(e.OccurredAt, start, end) {
			e.OccurredAt = e.OccurredAt.In(end.Location())
			out = append(out, e)
		}
	}
	return out
}

// DailyTotals returns one DayTotal per calendar day in the range, including
// days without drinks. An open start begins at the earliest matching entry.
func DailyTotals(entries []entry.Entry, start, end time.Time) []DayTotal {
	matched := inRange(entries, start, end)
	if start.IsZero() {
		if len(matched) == 0 {
			return []DayTotal{}
		}
		start = matched[0].OccurredAt
		for _, e := range matched[1:] {
			if e.OccurredAt.Before(start) {
				start = e.OccurredAt
			}
		}
	}
	start = start.In(end.Location())

	byDay := make(map[string]*DayTotal)
	var days []DayTotal
	for d := timeutil.StartOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, DayTotal{Date: d})
	}
	for i := range days {
		byDay[days[i].Date.Format(dayKeyLayout)] = &days[i]
	}

	for _, e := range matched {
		if d, ok := byDay[e.OccurredAt.Format(dayKeyLayout)]; ok {
			d.Units += e.Units
			d.Count++
		}
	}

	return days
}

// CalculateStatistics computes statistics for entries within the given date range.
// dailyLimit > 0 counts the days whose total exceeds it.
func CalculateStatistics(entries []entry.Entry, start, end time.Time, dailyLimit float64) Statistics {
	stats := Statistics{}

	days := DailyTotals(entries, start, end)
	stats.TotalDays = len(days)

	for _, d := range days {
		stats.TotalUnits += d.Units
		stats.EntryCount += d.Count

		if d.Units > 0 {
			stats.DaysWithDrinks++
		} else {
			stats.DrinkFreeDays++
		}
		if dailyLimit > 0 && d.Units > dailyLimit {
			stats.DaysOverLimit++
		}
		if d.Units > stats.PeakUnits {
			stats.PeakUnits = d.Units
			stats.PeakDay = d.Date
		}
	}

	if stats.TotalDays > 0 {
		stats.AverageUnitsPerDay = stats.TotalUnits / float64(stats.TotalDays)
	}

	return stats
}

// CalculateCategoryBreakdown groups entries by category, largest total first
func CalculateCategoryBreakdown(entries []entry.Entry, start, end time.Time) []Breakdown {
	return breakdown(inRange(entries, start, end), func(e entry.Entry) string {
		if e.Category == "" {
			return "(no category)"
		}
		return e.Category
	})
}

// CalculateDrinkBreakdown groups entries by drink name, largest total first
func CalculateDrinkBreakdown(entries []entry.Entry, start, end time.Time) []Breakdown {
	return breakdown(inRange(entries, start, end), func(e entry.Entry) string {
		return e.Name
	})
}

func breakdown(entries []entry.Entry, key func(entry.Entry) string) []Breakdown {
	groups := make(map[string]*Breakdown)
	for _, e := range entries {
		k := key(e)
		if _, exists := groups[k]; !exists {
			groups[k] = &Breakdown{Name: k}
		}
		groups[k].TotalUnits += e.Units
		groups[k].EntryCount++
	}

	breakdowns := make([]Breakdown, 0, len(groups))
	for _, b := range groups {
		breakdowns = append(breakdowns, *b)
	}

	slices.SortFunc(breakdowns, func(a, b Breakdown) int {
		if c := cmp.Compare(b.TotalUnits, a.TotalUnits); c != 0 {
			return c
		}
		if c := cmp.Compare(b.EntryCount, a.EntryCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return breakdowns
}
