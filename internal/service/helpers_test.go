package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/sip/internal/catalog"
	"github.com/xolan/sip/internal/config"
)

// testNow is Tuesday 2026-03-10 20:00 UTC
var testNow = time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return cfg
}

func newTestServices(t *testing.T, cfg config.Config) (*Services, *testClock, string) {
	t.Helper()
	dir := t.TempDir()
	clock := &testClock{now: testNow}
	s, err := NewServicesWithPaths(dir, filepath.Join(dir, "config.toml"), cfg, Options{Now: clock.Now})
	if err != nil {
		t.Fatalf("NewServicesWithPaths() error = %v", err)
	}
	return s, clock, dir
}

func mustDrink(t *testing.T, s *Services, name string) catalog.Drink {
	t.Helper()
	d, err := s.Catalog.Find(name)
	if err != nil {
		t.Fatalf("Find(%q) error = %v", name, err)
	}
	return d
}
