// Package timeutil computes calendar ranges for listing and statistics.
package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns 00:00:00 of the first day of the week containing t,
// where weeks begin on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -back)
}

// EndOfWeek returns the last nanosecond of the week containing t
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of the month (23:59:59.999999999)
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive).
// A zero start leaves the range open at the beginning.
func IsInRange(t, start, end time.Time) bool {
	return (start.IsZero() || !t.Before(start)) && !t.After(end)
}

// Calendar answers "today", "this week" and similar questions for a clock,
// a timezone and a week start day.
type Calendar struct {
	Now       func() time.Time
	Loc       *time.Location
	WeekStart time.Weekday
}

// NewCalendar returns a Calendar. A nil now uses time.Now, a nil loc uses
// time.Local.
func NewCalendar(now func() time.Time, loc *time.Location, weekStart time.Weekday) Calendar {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Now: now, Loc: loc, WeekStart: weekStart}
}

func (c Calendar) now() time.Time {
	return c.Now().In(c.Loc)
}

// Today returns the start and end times for today
func (c Calendar) Today() (start, end time.Time) {
	now := c.now()
	return StartOfDay(now), EndOfDay(now)
}

// Yesterday returns the start and end times for yesterday
func (c Calendar) Yesterday() (start, end time.Time) {
	yesterday := c.now().AddDate(0, 0, -1)
	return StartOfDay(yesterday), EndOfDay(yesterday)
}

// ThisWeek returns the start and end times for the current week
func (c Calendar) ThisWeek() (start, end time.Time) {
	now := c.now()
	return StartOfWeek(now, c.WeekStart), EndOfWeek(now, c.WeekStart)
}

// LastWeek returns the start and end times for the previous week
func (c Calendar) LastWeek() (start, end time.Time) {
	lastWeek := c.now().AddDate(0, 0, -7)
	return StartOfWeek(lastWeek, c.WeekStart), EndOfWeek(lastWeek, c.WeekStart)
}

// ThisMonth returns the start and end times for the current month
func (c Calendar) ThisMonth() (start, end time.Time) {
	now := c.now()
	return StartOfMonth(now), EndOfMonth(now)
}

// LastMonth returns the start and end times for the previous month
func (c Calendar) LastMonth() (start, end time.Time) {
	lastMonth := StartOfMonth(c.now()).AddDate(0, -1, 0)
	return StartOfMonth(lastMonth), EndOfMonth(lastMonth)
}

// LastDays returns the n complete days ending today (inclusive)
func (c Calendar) LastDays(n int) (start, end time.Time) {
	now := c.now()
	return StartOfDay(now.AddDate(0, 0, -(n - 1))), EndOfDay(now)
}
