package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseRange(t *testing.T) {
	c := NewCalendar(fixedNow, time.UTC, time.Monday)
	endOfToday := day(2024, time.March, 2).Add(-time.Nanosecond)

	tests := []struct {
		name      string
		from, to  string
		last      int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   string
	}{
		{name: "no flags", wantStart: time.Time{}, wantEnd: endOfToday},
		{name: "last 3", last: 3, wantStart: day(2024, time.February, 28), wantEnd: endOfToday},
		{name: "from only", from: "2024-02-01", wantStart: day(2024, time.February, 1), wantEnd: endOfToday},
		{name: "from and to", from: "2024-02-01", to: "2024-02-10", wantStart: day(2024, time.February, 1), wantEnd: day(2024, time.February, 11).Add(-time.Nanosecond)},
		{name: "last with from", from: "2024-02-01", last: 2, wantErr: "cannot use --last"},
		{name: "negative last", last: -1, wantErr: "must be positive"},
		{name: "bad from", from: "nope", wantErr: "invalid --from"},
		{name: "bad to", to: "nope", wantErr: "invalid --to"},
		{name: "reversed", from: "2024-02-10", to: "2024-02-01", wantErr: "is after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := c.ParseRange(tt.from, tt.to, tt.last)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ParseRange() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange() returned unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}
