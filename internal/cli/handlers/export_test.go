package handlers

import (
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/xolan/sip/internal/filter"
	"github.com/xolan/sip/internal/service"
)

func TestExport_CSV(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	LogDrink(deps, "Pint of lager", service.Now())
	stdout.Reset()

	Export(deps, "csv", nil, nil, nil)

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", stdout.String())
	}
	if !strings.HasPrefix(lines[0], "date,time,drink_name") {
		t.Errorf("unexpected header %q", lines[0])
	}
	assertContains(t, lines[1], "Pint of lager")
}

func TestExport_JSONWithFilter(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	LogDrink(deps, "Pint of lager", service.Now())
	LogDrink(deps, "Medium glass of wine", service.Now())
	stdout.Reset()

	spec := service.DateRangeSpec{Type: service.DateRangeToday}
	Export(deps, "json", &spec, map[string]any{"category": "Wine"}, filter.NewFilter("", []string{"Wine"}, filter.AnyOrigin))

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}

	var doc struct {
		Metadata struct {
			TotalEntries int `json:"total_entries"`
		} `json:"metadata"`
		Entries []struct {
			Name string `json:"drink_name"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.Metadata.TotalEntries != 1 || len(doc.Entries) != 1 || doc.Entries[0].Name != "Medium glass of wine" {
		t.Errorf("unexpected export %+v", doc)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	Export(deps, "pdf", nil, nil, nil)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	assertContains(t, stderr.String(), "Failed to write export")
}
