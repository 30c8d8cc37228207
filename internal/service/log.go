package service

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xolan/sip/internal/catalog"
	"github.com/xolan/sip/internal/config"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/logstore"
	"github.com/xolan/sip/internal/storage"
	"github.com/xolan/sip/internal/timeselect"
	"github.com/xolan/sip/internal/timeutil"
	"github.com/xolan/sip/internal/undo"
)

// CustomCategory is used for custom drinks logged without a category
const CustomCategory = "Custom"

// ErrFutureTime is returned when a chosen clock time is later than now.
var ErrFutureTime = errors.New("that time is later than now")

// LogService logs drinks, lists them and undoes the most recent log action.
type LogService struct {
	store     *logstore.Store
	backend   storage.Backend
	tokenPath string
	config    config.Config
	cal       timeutil.Calendar
	log       *log.Logger
}

// NewLogService creates a new LogService
func NewLogService(store *logstore.Store, backend storage.Backend, tokenPath string, cfg config.Config, cal timeutil.Calendar, logger *log.Logger) *LogService {
	return &LogService{
		store:     store,
		backend:   backend,
		tokenPath: tokenPath,
		config:    cfg,
		cal:       cal,
		log:       logger,
	}
}

// Resolve turns a When into the consumption instant.
// Clock times later than now are rejected; the date never changes.
func (s *LogService) Resolve(w When) (time.Time, error) {
	now := s.cal.Now().In(s.cal.Loc)

	switch w.Kind {
	case WhenNow:
		return now, nil
	case WhenOffset:
		return timeselect.ResolveOffset(now, w.Minutes)
	case WhenClock:
		g := timeselect.NewGrid(s.cal.Now, s.cal.Loc)
		if _, _, err := g.SelectHour(w.Hour); err != nil {
			return time.Time{}, err
		}
		t, _, err := g.SelectMinute(w.Minute)
		if err != nil {
			return time.Time{}, err
		}
		if t.After(now) {
			return time.Time{}, fmt.Errorf("%w: %s", ErrFutureTime, t.Format("15:04"))
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("unknown time choice %d", w.Kind)
	}
}

// LogDrink appends a catalog drink and returns the stored entry with its undo token.
func (s *LogService) LogDrink(d catalog.Drink, w When) (entry.Entry, undo.Token, error) {
	occurredAt, err := s.Resolve(w)
	if err != nil {
		return entry.Entry{}, undo.Token{}, err
	}

	return s.append(d.Entry(s.cal.Now().In(s.cal.Loc), occurredAt))
}

// LogCustom appends a drink that is not in the catalog.
func (s *LogService) LogCustom(name, category string, units float64, w When) (entry.Entry, undo.Token, error) {
	occurredAt, err := s.Resolve(w)
	if err != nil {
		return entry.Entry{}, undo.Token{}, err
	}

	category = entry.NormalizeName(category)
	if category == "" {
		category = CustomCategory
	}

	e := entry.Entry{
		LoggedAt:     s.cal.Now().In(s.cal.Loc),
		OccurredAt:   occurredAt,
		Category:     category,
		Name:         entry.NormalizeName(name),
		IsCustomName: true,
		Units:        units,
	}
	return s.append(e)
}

func (s *LogService) append(e entry.Entry) (entry.Entry, undo.Token, error) {
	if err := e.Validate(); err != nil {
		return entry.Entry{}, undo.Token{}, err
	}

	stored := s.store.Append(e)
	tok := undo.NewToken(stored)

	// The token is also handed back, so a failed save only affects `sip undo`.
	if err := undo.Save(s.tokenPath, tok); err != nil {
		s.log.Warn("cannot save undo token", "path", s.tokenPath, "err", err)
	}

	s.log.Debug("logged drink", "name", stored.Name, "units", stored.Units, "at", stored.OccurredAt)
	return stored, tok, nil
}

// UndoWindow returns the configured undo window; zero means no time limit.
func (s *LogService) UndoWindow() time.Duration {
	w, _ := s.config.UndoWindowDuration()
	return w
}

// Undo removes the entry tok refers to, if the window is still open.
// The token is consumed: a second Undo with it returns ErrNothingToUndo.
func (s *LogService) Undo(tok undo.Token) (entry.Entry, error) {
	if tok.Expired(s.cal.Now(), s.UndoWindow()) {
		s.clearToken(tok)
		return entry.Entry{}, undo.ErrExpired
	}

	var removed entry.Entry
	for _, e := range s.store.LoadAll() {
		if e.Is(tok.LoggedAt) {
			removed = e
			break
		}
	}

	if !s.store.Remove(tok.LoggedAt) {
		s.clearToken(tok)
		return entry.Entry{}, undo.ErrNothingToUndo
	}

	s.clearToken(tok)
	s.log.Debug("undid drink", "name", removed.Name, "logged_at", removed.LoggedAt)
	return removed, nil
}

// UndoLast undoes the most recent log action recorded on disk.
func (s *LogService) UndoLast() (entry.Entry, error) {
	tok, err := s.PendingUndo()
	if err != nil {
		return entry.Entry{}, err
	}
	if tok == nil {
		return entry.Entry{}, undo.ErrNothingToUndo
	}
	return s.Undo(*tok)
}

// PendingUndo returns the token on disk, or nil when there is none.
// An unreadable token file counts as nothing to undo.
func (s *LogService) PendingUndo() (*undo.Token, error) {
	tok, err := undo.Load(s.tokenPath)
	if err != nil {
		s.log.Warn("ignoring unreadable undo token", "path", s.tokenPath, "err", err)
		return nil, nil
	}
	return tok, nil
}

// clearToken removes the token on disk if it still refers to tok.
func (s *LogService) clearToken(tok undo.Token) {
	onDisk, err := undo.Load(s.tokenPath)
	if err != nil || onDisk == nil || !onDisk.LoggedAt.Equal(tok.LoggedAt) {
		return
	}
	if err := undo.Clear(s.tokenPath); err != nil {
		s.log.Warn("cannot clear undo token", "path", s.tokenPath, "err", err)
	}
}

// List returns entries drunk within the range, ordered by OccurredAt.
func (s *LogService) List(spec DateRangeSpec) (*ListResult, error) {
	start, end, period := resolveDateRange(s.cal, spec)

	all := s.store.LoadAll()
	var matched []entry.Entry
	var total float64
	for _, e := range all {
		if timeutil.IsInRange(e.OccurredAt, start, end) {
			e.OccurredAt = e.OccurredAt.In(s.cal.Loc)
			e.LoggedAt = e.LoggedAt.In(s.cal.Loc)
			matched = append(matched, e)
			total += e.Units
		}
	}

	slices.SortStableFunc(matched, func(a, b entry.Entry) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	return &ListResult{
		Entries:    matched,
		Warnings:   s.store.Warnings(),
		Period:     period,
		Start:      start,
		End:        end,
		TotalUnits: total,
		Dirty:      s.store.Dirty(),
	}, nil
}

// All returns every stored entry in insertion order.
func (s *LogService) All() []entry.Entry {
	return s.store.LoadAll()
}

// Last returns the most recently logged drink.
func (s *LogService) Last() (entry.Entry, bool) {
	return s.store.Last()
}

// Health reports record-level storage corruption.
func (s *LogService) Health() (storage.StorageHealth, error) {
	return s.backend.Health()
}

// Location returns where the drink log is stored.
func (s *LogService) Location() string {
	return s.backend.Location()
}

// BackendKind names the storage backend in use.
func (s *LogService) BackendKind() string {
	return s.backend.Kind()
}

// Backups lists the rotating backups of the drink log.
func (s *LogService) Backups() []storage.BackupInfo {
	return storage.ListBackups(s.backend.Location())
}

// Restore replaces the drink log with backup n and drops the undo token,
// which may refer to an entry that no longer exists.
func (s *LogService) Restore(n int) error {
	if err := storage.RestoreBackup(s.backend.Location(), n); err != nil {
		return err
	}
	if err := undo.Clear(s.tokenPath); err != nil {
		s.log.Warn("cannot clear undo token", "path", s.tokenPath, "err", err)
	}
	return nil
}

// Dirty reports whether the last save failed.
func (s *LogService) Dirty() bool {
	return s.store.Dirty()
}

// Calendar returns the calendar used to resolve ranges.
func (s *LogService) Calendar() timeutil.Calendar {
	return s.cal
}

// resolveDateRange converts a DateRangeSpec to concrete start/end times
func resolveDateRange(cal timeutil.Calendar, spec DateRangeSpec) (start, end time.Time, period string) {
	switch spec.Type {
	case DateRangeToday:
		start, end = cal.Today()
		period = "today"
	case DateRangeYesterday:
		start, end = cal.Yesterday()
		period = "yesterday"
	case DateRangeThisWeek:
		start, end = cal.ThisWeek()
		period = "this week"
	case DateRangePrevWeek:
		start, end = cal.LastWeek()
		period = "last week"
	case DateRangeThisMonth:
		start, end = cal.ThisMonth()
		period = "this month"
	case DateRangePrevMonth:
		start, end = cal.LastMonth()
		period = "last month"
	case DateRangeLast:
		start, end = cal.LastDays(spec.LastDays)
		period = fmt.Sprintf("last %d days", spec.LastDays)
	case DateRangeCustom:
		start = spec.From
		end = spec.To
		period = formatDateRangeForDisplay(start, end)
	default:
		start, end = cal.Today()
		period = "today"
	}

	return start, end, period
}

// formatDateRangeForDisplay formats a date range for human-readable display
func formatDateRangeForDisplay(start, end time.Time) string {
	if start.IsZero() {
		return "until " + end.Format("Jan 2, 2006")
	}
	if start.Format("2006-01-02") == end.Format("2006-01-02") {
		return start.Format("Mon, Jan 2, 2006")
	}
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}
