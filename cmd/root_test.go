package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/filter"
	"github.com/xolan/sip/internal/service"
)

func TestLogDrinkAndList(t *testing.T) {
	stdout, _, exitCode := testDeps(t)

	logDrink("pint of lager", 30, "")
	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Logged: Pint of lager (Beer, 2.3 units) at 19:30 (logged 20:00)") {
		t.Errorf("unexpected output %q", stdout.String())
	}

	stdout.Reset()
	listEntries(service.DateRangeSpec{Type: service.DateRangeToday}, filter.NewFilter("", nil, filter.AnyOrigin))
	if !strings.Contains(stdout.String(), "Drinks for today:") {
		t.Errorf("unexpected list output %q", stdout.String())
	}
}

func TestLogDrink_InvalidTime(t *testing.T) {
	tests := []struct {
		name string
		ago  int
		at   string
	}{
		{"ago not on the menu", 20, ""},
		{"at off the grid", 0, "21:10"},
		{"both", 15, "20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, exitCode := testDeps(t)

			logDrink("Pint of lager", tt.ago, tt.at)

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if !strings.Contains(stderr.String(), "Error: Invalid time") {
				t.Errorf("unexpected stderr %q", stderr.String())
			}
		})
	}
}

func TestLogCustomAndUndo(t *testing.T) {
	stdout, _, exitCode := testDeps(t)

	logCustom("Homebrew IPA", "", "2.5", 0, "19:00")
	undoLast()

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Undone: Homebrew IPA* (Custom, 2.5 units)") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestFilterFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringSlice("category", nil, "")
	cmd.Flags().String("search", "", "")
	cmd.Flags().Bool("custom", false, "")
	if err := cmd.ParseFlags([]string{"--category", "Beer,Wine", "--search", "pint", "--custom"}); err != nil {
		t.Fatal(err)
	}

	f := filterFromFlags(cmd)
	if f.Keyword != "pint" || len(f.Categories) != 2 || f.Origin != filter.CustomOnly {
		t.Errorf("filterFromFlags() = %+v", f)
	}
}

func TestValidateStorage(t *testing.T) {
	stdout, _, _ := testDeps(t)

	validateStorage()

	if !strings.Contains(stdout.String(), "Status: Healthy") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "2026-03-10")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version = %q", rootCmd.Version)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"y", "w", "lw", "add", "undo", "drinks", "stats", "export", "validate", "restore", "config", "tui", "completion"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
