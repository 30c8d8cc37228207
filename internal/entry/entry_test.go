package entry

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/segmentio/encoding/json"
)

func TestEntry_Validate(t *testing.T) {
	now := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: Entry{LoggedAt: now, OccurredAt: now, Name: "IPA", Category: "beer", Units: 2.3},
		},
		{
			name:  "zero units are allowed",
			entry: Entry{LoggedAt: now, OccurredAt: now, Name: "Alcohol-free beer", Units: 0},
		},
		{
			name:    "empty name",
			entry:   Entry{LoggedAt: now, Units: 1},
			wantErr: ErrEmptyName,
		},
		{
			name:    "negative units",
			entry:   Entry{LoggedAt: now, Name: "Wine", Units: -1},
			wantErr: ErrInvalidUnits,
		},
		{
			name:    "NaN units",
			entry:   Entry{LoggedAt: now, Name: "Wine", Units: math.NaN()},
			wantErr: ErrInvalidUnits,
		},
		{
			name:    "missing logged-at",
			entry:   Entry{Name: "Wine", Units: 1},
			wantErr: ErrMissingLoggedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntry_JSONSchema(t *testing.T) {
	logged := time.Date(2024, time.March, 1, 20, 0, 0, 123000000, time.UTC)
	e := Entry{
		LoggedAt:   logged,
		OccurredAt: logged.Add(-30 * time.Minute),
		Category:   "beer",
		Name:       "Pilsner",
		Units:      2,
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() returned unexpected error: %v", err)
	}

	for _, key := range []string{"timestamp_logged", "timestamp", "drink_category", "drink_name", "is_custom_name", "units"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected key %q in %s", key, data)
		}
	}
	if raw["timestamp_logged"] != "2024-03-01T20:00:00.123Z" {
		t.Errorf("timestamp_logged = %v, expected ISO-8601 with milliseconds", raw["timestamp_logged"])
	}
}

func TestEntry_IsAndBackdated(t *testing.T) {
	logged := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)
	e := Entry{LoggedAt: logged, OccurredAt: logged, Name: "Cider"}

	if !e.Is(logged.In(time.FixedZone("CET", 3600))) {
		t.Error("Is() should compare instants, not locations")
	}
	if e.Is(logged.Add(time.Nanosecond)) {
		t.Error("Is() matched a different instant")
	}
	if e.Backdated() {
		t.Error("Backdated() = true for an entry logged now")
	}

	e.OccurredAt = logged.Add(-15 * time.Minute)
	if !e.Backdated() {
		t.Error("Backdated() = false for a backdated entry")
	}
}
