package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/sip/internal/config"
	"github.com/xolan/sip/internal/timeselect"
	"github.com/xolan/sip/internal/undo"
)

func TestResolve(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())

	tests := []struct {
		name    string
		when    When
		want    time.Time
		wantErr error
	}{
		{name: "now", when: Now(), want: testNow},
		{name: "offset 15", when: Offset(15), want: testNow.Add(-15 * time.Minute)},
		{name: "offset 60", when: Offset(60), want: testNow.Add(-time.Hour)},
		{name: "clock midnight", when: Clock(0, 30), want: time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)},
		{name: "clock equal to now", when: Clock(20, 0), want: testNow},
		{name: "clock later today", when: Clock(23, 45), wantErr: ErrFutureTime},
		{name: "bad offset", when: Offset(10), wantErr: timeselect.ErrInvalidOffset},
		{name: "bad hour", when: Clock(24, 0), wantErr: timeselect.ErrInvalidHour},
		{name: "bad minute", when: Clock(12, 5), wantErr: timeselect.ErrInvalidMinute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Log.Resolve(tt.when)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogDrink_CopiesCatalogFields(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	e, tok, err := s.Log.LogDrink(d, Offset(30))
	if err != nil {
		t.Fatalf("LogDrink() error = %v", err)
	}

	if e.Name != d.Name || e.Category != d.Category || e.Units != d.Units {
		t.Errorf("entry %+v does not copy drink %+v", e, d)
	}
	if e.IsCustomName {
		t.Error("catalog drink marked as custom")
	}
	if !e.LoggedAt.Equal(testNow) {
		t.Errorf("LoggedAt = %v, want %v", e.LoggedAt, testNow)
	}
	if want := testNow.Add(-30 * time.Minute); !e.OccurredAt.Equal(want) {
		t.Errorf("OccurredAt = %v, want %v", e.OccurredAt, want)
	}
	if !tok.LoggedAt.Equal(e.LoggedAt) || tok.Name != e.Name {
		t.Errorf("token %+v does not refer to %+v", tok, e)
	}

	pending, err := s.Log.PendingUndo()
	if err != nil || pending == nil || !pending.LoggedAt.Equal(e.LoggedAt) {
		t.Errorf("PendingUndo() = %+v, %v; want token for %v", pending, err, e.LoggedAt)
	}
}

func TestLogDrink_RejectedTimeStoresNothing(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	if _, _, err := s.Log.LogDrink(d, Clock(22, 0)); !errors.Is(err, ErrFutureTime) {
		t.Fatalf("LogDrink() error = %v, want ErrFutureTime", err)
	}
	if got := len(s.Log.All()); got != 0 {
		t.Errorf("expected empty log, got %d entries", got)
	}
}

func TestLogDrink_SameInstant(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	first, _, _ := s.Log.LogDrink(d, Now())
	second, _, _ := s.Log.LogDrink(d, Now())

	if first.LoggedAt.Equal(second.LoggedAt) {
		t.Fatal("two logs in the same instant share an identity")
	}
	if got := len(s.Log.All()); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
}

func TestLast(t *testing.T) {
	s, clock, _ := newTestServices(t, testConfig())
	if _, ok := s.Log.Last(); ok {
		t.Fatal("Last() on an empty log should report false")
	}

	s.Log.LogDrink(mustDrink(t, s, "Pint of lager"), Now())
	clock.now = testNow.Add(time.Minute)
	s.Log.LogDrink(mustDrink(t, s, "Half pint"), Offset(45))

	// most recently logged, not most recently drunk
	last, ok := s.Log.Last()
	if !ok || last.Name != "Half pint" {
		t.Errorf("Last() = %+v, %v; want Half pint", last, ok)
	}
}

func TestLogCustom(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())

	e, _, err := s.Log.LogCustom(" Mulled   wine ", "  ", 1.8, Now())
	if err != nil {
		t.Fatalf("LogCustom() error = %v", err)
	}
	if e.Name != "Mulled wine" || e.Category != CustomCategory || !e.IsCustomName {
		t.Errorf("unexpected custom entry %+v", e)
	}

	if _, _, err := s.Log.LogCustom("", "Beer", 1, Now()); err == nil {
		t.Error("expected error for empty name")
	}
	if _, _, err := s.Log.LogCustom("Punch", "", -1, Now()); err == nil {
		t.Error("expected error for negative units")
	}
}

func TestUndo(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	before := s.Log.All()
	_, tok, _ := s.Log.LogDrink(d, Now())

	removed, err := s.Log.Undo(tok)
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if removed.Name != d.Name {
		t.Errorf("Undo() removed %+v", removed)
	}
	if got := s.Log.All(); len(got) != len(before) {
		t.Errorf("expected %d entries after undo, got %d", len(before), len(got))
	}

	if _, err := s.Log.Undo(tok); !errors.Is(err, undo.ErrNothingToUndo) {
		t.Errorf("second Undo() error = %v, want ErrNothingToUndo", err)
	}
	if pending, _ := s.Log.PendingUndo(); pending != nil {
		t.Errorf("token survived undo: %+v", pending)
	}
}

func TestUndo_Expired(t *testing.T) {
	s, clock, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	_, tok, _ := s.Log.LogDrink(d, Now())
	clock.now = clock.now.Add(5*time.Minute + time.Second)

	if _, err := s.Log.Undo(tok); !errors.Is(err, undo.ErrExpired) {
		t.Fatalf("Undo() error = %v, want ErrExpired", err)
	}
	if got := len(s.Log.All()); got != 1 {
		t.Errorf("expired undo removed the entry")
	}
}

func TestUndo_NoWindow(t *testing.T) {
	cfg := testConfig()
	cfg.UndoWindow = "0"
	s, clock, _ := newTestServices(t, cfg)
	d := mustDrink(t, s, "Pint of lager")

	_, tok, _ := s.Log.LogDrink(d, Now())
	clock.now = clock.now.Add(48 * time.Hour)

	if _, err := s.Log.Undo(tok); err != nil {
		t.Errorf("Undo() error = %v, want nil with no window", err)
	}
}

func TestUndoLast_OnlyMostRecent(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	lager := mustDrink(t, s, "Pint of lager")
	wine := mustDrink(t, s, "Small glass of wine")

	_, _, _ = s.Log.LogDrink(lager, Now())
	_, _, _ = s.Log.LogDrink(wine, Now())

	removed, err := s.Log.UndoLast()
	if err != nil {
		t.Fatalf("UndoLast() error = %v", err)
	}
	if removed.Name != wine.Name {
		t.Errorf("UndoLast() removed %q, want %q", removed.Name, wine.Name)
	}
	if _, err := s.Log.UndoLast(); !errors.Is(err, undo.ErrNothingToUndo) {
		t.Errorf("second UndoLast() error = %v, want ErrNothingToUndo", err)
	}

	entries := s.Log.All()
	if len(entries) != 1 || entries[0].Name != lager.Name {
		t.Errorf("unexpected entries after undo: %+v", entries)
	}
}

func TestUndoLast_CorruptToken(t *testing.T) {
	s, _, dir := newTestServices(t, testConfig())

	if err := os.WriteFile(filepath.Join(dir, undo.TokenFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Log.UndoLast(); !errors.Is(err, undo.ErrNothingToUndo) {
		t.Errorf("UndoLast() error = %v, want ErrNothingToUndo", err)
	}
}

func TestList(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	// Logged in this order, drunk in the opposite order
	_, _, _ = s.Log.LogDrink(d, Offset(15))
	_, _, _ = s.Log.LogDrink(d, Offset(60))

	result, err := s.Log.List(DateRangeSpec{Type: DateRangeToday})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if !result.Entries[0].OccurredAt.Before(result.Entries[1].OccurredAt) {
		t.Error("entries not ordered by OccurredAt")
	}
	if result.Period != "today" {
		t.Errorf("Period = %q, want today", result.Period)
	}
	if result.TotalUnits < 4.59 || result.TotalUnits > 4.61 {
		t.Errorf("TotalUnits = %v, want 4.6", result.TotalUnits)
	}

	result, _ = s.Log.List(DateRangeSpec{Type: DateRangeYesterday})
	if len(result.Entries) != 0 {
		t.Errorf("expected nothing yesterday, got %d", len(result.Entries))
	}
}

func TestList_Last(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())

	result, err := s.Log.List(DateRangeSpec{Type: DateRangeLast, LastDays: 7})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Period != "last 7 days" {
		t.Errorf("Period = %q", result.Period)
	}
}

func TestRestore(t *testing.T) {
	s, _, _ := newTestServices(t, testConfig())
	d := mustDrink(t, s, "Pint of lager")

	_, _, _ = s.Log.LogDrink(d, Now())
	_, _, _ = s.Log.LogDrink(d, Now())

	if got := len(s.Log.Backups()); got != 1 {
		t.Fatalf("expected 1 backup, got %d", got)
	}
	if err := s.Log.Restore(1); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if got := len(s.Log.All()); got != 1 {
		t.Errorf("expected 1 entry after restore, got %d", got)
	}
	if pending, _ := s.Log.PendingUndo(); pending != nil {
		t.Error("undo token survived restore")
	}
	if err := s.Log.Restore(3); err == nil {
		t.Error("expected error restoring a missing backup")
	}
}

func TestSlotBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Backend = config.BackendSlot
	s, _, _ := newTestServices(t, cfg)
	d := mustDrink(t, s, "Pint of lager")

	_, tok, _ := s.Log.LogDrink(d, Now())
	if s.Log.BackendKind() != config.BackendSlot {
		t.Errorf("BackendKind() = %q", s.Log.BackendKind())
	}
	if got := len(s.Log.All()); got != 1 {
		t.Errorf("expected 1 entry, got %d", got)
	}
	if _, err := s.Log.Undo(tok); err != nil {
		t.Errorf("Undo() error = %v", err)
	}

	health, err := s.Log.Health()
	if err != nil || health.CorruptedEntries != 0 {
		t.Errorf("Health() = %+v, %v", health, err)
	}
}

func TestFormatDateRangeForDisplay(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		start, end time.Time
		want       string
	}{
		{d(2026, 3, 10), d(2026, 3, 10), "Tue, Mar 10, 2026"},
		{d(2026, 3, 1), d(2026, 3, 10), "Mar 1 - Mar 10, 2026"},
		{d(2025, 12, 28), d(2026, 1, 3), "Dec 28, 2025 - Jan 3, 2026"},
		{time.Time{}, d(2026, 3, 10), "until Mar 10, 2026"},
	}

	for _, tt := range tests {
		if got := formatDateRangeForDisplay(tt.start, tt.end); got != tt.want {
			t.Errorf("formatDateRangeForDisplay(%v, %v) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
