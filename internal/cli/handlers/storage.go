package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/storage"
)

// Validate reports on the health of the drink log
func Validate(deps *cli.Deps) {
	location := deps.Services.Log.Location()
	health, err := deps.Services.Log.Health()
	if err != nil {
		deps.Fail("Failed to read the drink log", err, fmt.Sprintf("Check that the file is readable: %s", location))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Storage: %s (%s)\n", location, deps.Services.Log.BackendKind())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total records:     %d\n", health.TotalRecords)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid entries:     %d\n", health.ValidEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Corrupted records: %d\n", health.CorruptedEntries)

	if health.CorruptedEntries == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Healthy")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Status: Corrupted records found")
	for _, w := range health.Warnings {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(w))
	}
	if backups := deps.Services.Log.Backups(); len(backups) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Hint: Restore a backup with 'sip restore' (%d available)\n", len(backups))
	}
}

// Restore replaces the drink log with a backup. An empty arg means the latest.
func Restore(deps *cli.Deps, arg string) {
	n := 1
	if arg != "" {
		var err error
		n, err = strconv.Atoi(arg)
		if err != nil {
			deps.Fail(fmt.Sprintf("Invalid backup number '%s'", arg), nil, fmt.Sprintf("Use a number between 1 and %d", storage.MaxBackupCount))
			return
		}
	}

	backups := deps.Services.Log.Backups()
	if len(backups) == 0 {
		deps.Fail("No backups available", nil, "Backups are taken automatically before every change")
		return
	}

	if err := deps.Services.Log.Restore(n); err != nil {
		var available []string
		for _, b := range backups {
			available = append(available, strconv.Itoa(b.Number))
		}
		deps.Fail("Failed to restore backup", err, "Available backups: "+strings.Join(available, ", "))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored backup %d to %s\n", n, deps.Services.Log.Location())
}
