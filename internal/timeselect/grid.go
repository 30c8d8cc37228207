package timeselect

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// State is where the grid is in a two-step selection.
type State int

const (
	// StateNone means nothing is selected.
	StateNone State = iota
	// StateHour means an hour is marked and a minute is awaited.
	StateHour
	// StateMinute means a minute is marked and an hour is awaited.
	StateMinute
)

func (s State) String() string {
	switch s {
	case StateHour:
		return "hour"
	case StateMinute:
		return "minute"
	default:
		return "none"
	}
}

// Minutes are the selectable minute marks.
var Minutes = []int{0, 15, 30, 45}

var (
	// ErrInvalidHour is returned for an hour outside 0-23.
	ErrInvalidHour = errors.New("hour must be between 0 and 23")
	// ErrInvalidMinute is returned for a minute not in Minutes.
	ErrInvalidMinute = errors.New("minute must be one of 00, 15, 30 or 45")
	// ErrInvalidClock is returned by ParseClock for text that is not HH:MM.
	ErrInvalidClock = errors.New("time must look like HH:MM")
)

// Grid picks a clock time on today's date. An hour and a minute may be chosen
// in either order; the second choice resolves the instant and resets the grid.
type Grid struct {
	now func() time.Time
	loc *time.Location

	state  State
	hour   int
	minute int
}

// NewGrid returns an empty grid. A nil now uses time.Now, a nil loc uses
// time.Local.
func NewGrid(now func() time.Time, loc *time.Location) *Grid {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Grid{now: now, loc: loc}
}

// State returns the current selection state.
func (g *Grid) State() State {
	return g.state
}

// Hour returns the marked hour, if one is marked.
func (g *Grid) Hour() (int, bool) {
	return g.hour, g.state == StateHour
}

// Minute returns the marked minute, if one is marked.
func (g *Grid) Minute() (int, bool) {
	return g.minute, g.state == StateMinute
}

// SelectHour marks hour, or resolves the instant if a minute is marked.
// resolved reports whether t is meaningful.
func (g *Grid) SelectHour(hour int) (t time.Time, resolved bool, err error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, false, fmt.Errorf("%w: got %d", ErrInvalidHour, hour)
	}

	if g.state == StateMinute {
		t = g.resolve(hour, g.minute)
		g.Cancel()
		return t, true, nil
	}

	g.state = StateHour
	g.hour = hour
	return time.Time{}, false, nil
}

// SelectMinute marks minute, or resolves the instant if an hour is marked.
func (g *Grid) SelectMinute(minute int) (t time.Time, resolved bool, err error) {
	if !slices.Contains(Minutes, minute) {
		return time.Time{}, false, fmt.Errorf("%w: got %d", ErrInvalidMinute, minute)
	}

	if g.state == StateHour {
		t = g.resolve(g.hour, minute)
		g.Cancel()
		return t, true, nil
	}

	g.state = StateMinute
	g.minute = minute
	return time.Time{}, false, nil
}

// Cancel discards a partial selection.
func (g *Grid) Cancel() {
	g.state = StateNone
	g.hour = 0
	g.minute = 0
}

// resolve places hour:minute on the current date; it never changes the date,
// so a time later than now is still today.
func (g *Grid) resolve(hour, minute int) time.Time {
	y, m, d := g.now().In(g.loc).Date()
	return time.Date(y, m, d, hour, minute, 0, 0, g.loc)
}

// ParseClock resolves "HH:MM" through the grid, hour first.
// The minute must be one of Minutes.
func (g *Grid) ParseClock(s string) (time.Time, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	g.Cancel()
	if _, _, err := g.SelectHour(hour); err != nil {
		return time.Time{}, err
	}
	t, _, err := g.SelectMinute(minute)
	if err != nil {
		g.Cancel()
		return time.Time{}, err
	}
	return t, nil
}
