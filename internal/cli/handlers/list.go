package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/filter"
	"github.com/xolan/sip/internal/service"
)

// ListEntries lists drinks for the given date range and filter
func ListEntries(deps *cli.Deps, dateRange service.DateRangeSpec, f *filter.Filter) {
	result, err := deps.Services.Log.List(dateRange)
	if err != nil {
		deps.Fail("Failed to read the drink log", err, fmt.Sprintf("Check that the file is readable: %s", deps.Services.Log.Location()))
		return
	}

	cli.WriteWarnings(deps.Stderr, result.Warnings)
	if result.Dirty {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Recent changes could not be saved and exist only in this session")
	}

	period := result.Period
	entries := result.Entries
	if f != nil && !f.IsEmpty() {
		period = cli.BuildPeriodWithFilters(period, f.Keyword, f.Categories)
		entries = filter.FilterEntries(entries, f)
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No drinks logged for %s\n", period)
		return
	}

	var total float64
	for _, e := range entries {
		total += e.Units
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Drinks for %s:\n", period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	cli.EntryTable(deps.Stdout, entries)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s in %d %s\n", cli.FormatUnits(total), len(entries), cli.Pluralize("drink", len(entries)))
}
