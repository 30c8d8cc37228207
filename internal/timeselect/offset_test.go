package timeselect

import (
	"errors"
	"testing"
	"time"
)

func TestResolveOffset(t *testing.T) {
	now := time.Date(2024, time.March, 1, 20, 10, 5, 0, time.UTC)

	tests := []struct {
		minutes int
		want    time.Time
		wantErr bool
	}{
		{minutes: 15, want: now.Add(-15 * time.Minute)},
		{minutes: 30, want: time.Date(2024, time.March, 1, 19, 40, 5, 0, time.UTC)},
		{minutes: 45, want: now.Add(-45 * time.Minute)},
		{minutes: 60, want: now.Add(-time.Hour)},
		{minutes: 0, wantErr: true},
		{minutes: 20, wantErr: true},
		{minutes: -15, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ResolveOffset(now, tt.minutes)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidOffset) {
				t.Errorf("ResolveOffset(%d) error = %v, want ErrInvalidOffset", tt.minutes, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveOffset(%d) returned unexpected error: %v", tt.minutes, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveOffset(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestOffsetLabel(t *testing.T) {
	if got := OffsetLabel(15); got != "15 min ago" {
		t.Errorf("OffsetLabel(15) = %q", got)
	}
	if got := OffsetLabel(60); got != "1 hour ago" {
		t.Errorf("OffsetLabel(60) = %q", got)
	}
}
