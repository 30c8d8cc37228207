package timeselect

import (
	"errors"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 1, 20, 10, 5, 123, time.UTC)
}

func TestGrid_HourThenMinute(t *testing.T) {
	g := NewGrid(fixedNow, time.UTC)

	if _, resolved, err := g.SelectHour(0); err != nil || resolved {
		t.Fatalf("SelectHour(0) = resolved %v, err %v", resolved, err)
	}
	if h, ok := g.Hour(); !ok || h != 0 {
		t.Errorf("Hour() = %d, %v; want 0, true", h, ok)
	}
	if g.State() != StateHour {
		t.Errorf("State() = %v, want hour", g.State())
	}

	got, resolved, err := g.SelectMinute(30)
	if err != nil || !resolved {
		t.Fatalf("SelectMinute(30) = resolved %v, err %v", resolved, err)
	}
	want := time.Date(2024, time.March, 1, 0, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("resolved %v, want %v", got, want)
	}
	if g.State() != StateNone {
		t.Errorf("State() after resolve = %v, want none", g.State())
	}
}

func TestGrid_MinuteThenHour(t *testing.T) {
	g := NewGrid(fixedNow, time.UTC)

	if _, resolved, err := g.SelectMinute(45); err != nil || resolved {
		t.Fatalf("SelectMinute(45) = resolved %v, err %v", resolved, err)
	}
	got, resolved, err := g.SelectHour(23)
	if err != nil || !resolved {
		t.Fatalf("SelectHour(23) = resolved %v, err %v", resolved, err)
	}
	want := time.Date(2024, time.March, 1, 23, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("resolved %v, want %v", got, want)
	}
}

func TestGrid_MinuteZeroIsASelection(t *testing.T) {
	g := NewGrid(fixedNow, time.UTC)

	if _, _, err := g.SelectMinute(0); err != nil {
		t.Fatal(err)
	}
	if m, ok := g.Minute(); !ok || m != 0 {
		t.Errorf("Minute() = %d, %v; want 0, true", m, ok)
	}
	got, resolved, _ := g.SelectHour(7)
	if !resolved || got.Hour() != 7 || got.Minute() != 0 {
		t.Errorf("resolved %v (%v), want 07:00", got, resolved)
	}
}

func TestGrid_ReselectSameAxis(t *testing.T) {
	g := NewGrid(fixedNow, time.UTC)

	_, _, _ = g.SelectHour(9)
	_, resolved, _ := g.SelectHour(10)
	if resolved {
		t.Fatal("Second hour must not resolve")
	}
	if h, _ := g.Hour(); h != 10 {
		t.Errorf("Hour() = %d, want 10", h)
	}

	got, _, _ := g.SelectMinute(15)
	if got.Hour() != 10 || got.Minute() != 15 {
		t.Errorf("resolved %v, want 10:15", got)
	}

	_, _, _ = g.SelectMinute(15)
	_, resolved, _ = g.SelectMinute(30)
	if resolved {
		t.Fatal("Second minute must not resolve")
	}
	if m, _ := g.Minute(); m != 30 {
		t.Errorf("Minute() = %d, want 30", m)
	}
}

func TestGrid_InvalidSelectionsKeepState(t *testing.T) {
	g := NewGrid(fixedNow, time.UTC)
	_, _, _ = g.SelectHour(5)

	if _, _, err := g.SelectHour(24); !errors.Is(err, ErrInvalidHour) {
		t.Errorf("SelectHour(24) error = %v", err)
	}
	if _, _, err := g.SelectHour(-1); !errors.Is(err, ErrInvalidHour) {
		t.Errorf("SelectHour(-1) error = %v", err)
	}
	if _, _, err := g.SelectMinute(20); !errors.Is(err, ErrInvalidMinute) {
		t.Errorf("SelectMinute(20) error = %v", err)
	}
	if h, ok := g.Hour(); !ok || h != 5 {
		t.Errorf("Hour() = %d, %v after invalid input; want 5, true", h, ok)
	}
}

func TestGrid_Cancel(t *testing.T) {
	g := NewGrid(fixedNow, time.UTC)
	_, _, _ = g.SelectHour(5)
	g.Cancel()

	if g.State() != StateNone {
		t.Errorf("State() = %v, want none", g.State())
	}
	if _, ok := g.Hour(); ok {
		t.Error("Hour() should be unset after Cancel")
	}
	if _, resolved, _ := g.SelectMinute(15); resolved {
		t.Error("Minute after Cancel must not resolve")
	}
}

func TestGrid_ResolvesInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 20:10 UTC on Mar 1 is already Mar 2 in UTC+10
	g := NewGrid(fixedNow, loc)

	got, err := g.ParseClock("08:15")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.March, 2, 8, 15, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("resolved %v, want %v", got, want)
	}
}

func TestGrid_ParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr error
	}{
		{in: "23:45", hour: 23, minute: 45},
		{in: "0:00", hour: 0, minute: 0},
		{in: " 07:30 ", hour: 7, minute: 30},
		{in: "7", wantErr: ErrInvalidClock},
		{in: "ab:cd", wantErr: ErrInvalidClock},
		{in: "24:00", wantErr: ErrInvalidHour},
		{in: "12:20", wantErr: ErrInvalidMinute},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g := NewGrid(fixedNow, time.UTC)
			got, err := g.ParseClock(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseClock(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				if g.State() != StateNone {
					t.Errorf("State() after failed parse = %v, want none", g.State())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) returned unexpected error: %v", tt.in, err)
			}
			if got.Hour() != tt.hour || got.Minute() != tt.minute || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("ParseClock(%q) = %v", tt.in, got)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{StateNone: "none", StateHour: "hour", StateMinute: "minute"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
