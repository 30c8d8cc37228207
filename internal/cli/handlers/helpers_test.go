package handlers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/config"
	"github.com/xolan/sip/internal/service"
)

// testNow is a Tuesday evening
var testNow = time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return cfg
}

// setupTestDeps creates test dependencies with temp storage and a fixed clock
func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	deps, stdout, stderr, exitCode, _ := setupTestDepsWithConfig(t, testConfig())
	return deps, stdout, stderr, exitCode
}

// setupTestDepsWithConfig also returns the clock so tests can move time forward
func setupTestDepsWithConfig(t *testing.T, cfg config.Config) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int, *testClock) {
	t.Helper()
	tmpDir := t.TempDir()
	clock := &testClock{now: testNow}

	services, err := service.NewServicesWithPaths(tmpDir, filepath.Join(tmpDir, "config.toml"), cfg, service.Options{Now: clock.Now})
	if err != nil {
		t.Fatalf("NewServicesWithPaths() error = %v", err)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
	}

	return deps, stdout, stderr, &exitCode, clock
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in output, got %q", want, got)
	}
}
