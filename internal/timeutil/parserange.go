package timeutil

import (
	"fmt"
	"time"
)

// ParseRange turns --from/--to/--last flags into a range.
// If lastDays > 0, it is used on its own; combining it with from/to is an
// error. A missing --from leaves the range open, a missing --to ends today.
func (c Calendar) ParseRange(fromStr, toStr string, lastDays int) (start, end time.Time, err error) {
	if lastDays < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("--last must be positive, got %d", lastDays)
	}
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot use --last with --from or --to")
	}

	if lastDays > 0 {
		start, end = c.LastDays(lastDays)
		return start, end, nil
	}

	if fromStr != "" {
		start, err = ParseDate(fromStr, c.Loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		toDate, err := ParseDate(toStr, c.Loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(toDate)
	} else {
		end = EndOfDay(c.now())
	}

	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return start, end, nil
}
