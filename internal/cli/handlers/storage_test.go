package handlers

import (
	"os"
	"testing"

	"github.com/xolan/sip/internal/service"
)

func TestValidate_Healthy(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	LogDrink(deps, "Pint of lager", service.Now())
	stdout.Reset()

	Validate(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	assertContains(t, stdout.String(), "Valid entries:     1")
	assertContains(t, stdout.String(), "Status: Healthy")
}

func TestValidate_Corrupted(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	LogDrink(deps, "Pint of lager", service.Now())
	f, err := os.OpenFile(deps.Services.Log.Location(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString("{not json\n")
	_ = f.Close()
	stdout.Reset()

	Validate(deps)

	assertContains(t, stdout.String(), "Corrupted records: 1")
	assertContains(t, stdout.String(), "Line 2:")
}

func TestRestore_NoBackups(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	Restore(deps, "")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	assertContains(t, stderr.String(), "No backups available")
}

func TestRestore_InvalidNumber(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	Restore(deps, "latest")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	assertContains(t, stderr.String(), "Invalid backup number 'latest'")
}

func TestRestore(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	LogDrink(deps, "Pint of lager", service.Now())
	LogDrink(deps, "Medium glass of wine", service.Now())
	stdout.Reset()

	Restore(deps, "1")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	assertContains(t, stdout.String(), "Restored backup 1")

	entries := deps.Services.Log.All()
	if len(entries) != 1 || entries[0].Name != "Pint of lager" {
		t.Errorf("expected only the first drink after restore, got %+v", entries)
	}
}

func TestRestore_MissingBackup(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	LogDrink(deps, "Pint of lager", service.Now())
	LogDrink(deps, "Medium glass of wine", service.Now())

	Restore(deps, "3")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	assertContains(t, stderr.String(), "Available backups: 1")
}
