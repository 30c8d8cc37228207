package handlers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShowConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{"Configuration:", "Config file:", "week_start_day: monday", "timezone:       UTC", "backend:        jsonl", "catalog_path:   (built-in)", "undo_window:    5m", "daily_limit:    off", "Using defaults"} {
		assertContains(t, stdout.String(), want)
	}
}

func TestShowConfig_WithFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)
	stdout.Reset()

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	assertContains(t, stdout.String(), "File exists")
}

func TestInitConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	assertContains(t, stdout.String(), "Created config file:")
	assertContains(t, stdout.String(), "Edit this file")
	if _, err := os.Stat(deps.Services.Config.GetPath()); err != nil {
		t.Errorf("expected config file to exist: %v", err)
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	if err := os.WriteFile(deps.Services.Config.GetPath(), []byte("# mine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	InitConfig(deps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	assertContains(t, stderr.String(), "already exists")

	data, _ := os.ReadFile(filepath.Clean(deps.Services.Config.GetPath()))
	if string(data) != "# mine\n" {
		t.Errorf("existing config was overwritten: %q", data)
	}
}
