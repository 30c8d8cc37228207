package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/sip/internal/config"
)

func TestConfigService_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	if s.Exists() {
		t.Fatal("Exists() = true before Init")
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !s.Exists() {
		t.Error("Exists() = false after Init")
	}
	if err := s.Init(); err == nil {
		t.Error("expected error on second Init")
	}
	if err := s.Reload(); err != nil {
		t.Errorf("sample config does not load: %v", err)
	}
}

func TestConfigService_UpdateAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.WeekStartDay = "Sunday"
	cfg.DailyLimit = 4
	cfg.Backend = config.BackendSlot
	if err := s.Update(cfg); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# sip configuration file") {
		t.Errorf("missing header in %q", data)
	}

	reloaded := NewConfigService(path, config.DefaultConfig())
	if err := reloaded.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	got := reloaded.Get()
	if got.WeekStartDay != "sunday" || got.DailyLimit != 4 || got.Backend != config.BackendSlot {
		t.Errorf("Reload() = %+v", got)
	}
}

func TestConfigService_UpdateInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.UndoWindow = "soon"
	if err := s.Update(cfg); err == nil {
		t.Fatal("expected error for invalid undo_window")
	}
	if s.Exists() {
		t.Error("invalid config was written")
	}
	if s.Get().UndoWindow != "5m" {
		t.Errorf("Get() changed after failed Update: %+v", s.Get())
	}
}

func TestConfigService_UpdateCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sip", "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.Theme = "nord"
	if err := s.Update(cfg); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !s.Exists() {
		t.Fatal("config file was not created")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}
}
