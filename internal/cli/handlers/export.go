package handlers

import (
	"time"

	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/export"
	"github.com/xolan/sip/internal/filter"
	"github.com/xolan/sip/internal/service"
)

// Export writes drinks in format to stdout. A nil spec exports everything.
func Export(deps *cli.Deps, format string, spec *service.DateRangeSpec, criteria map[string]any, f *filter.Filter) {
	var entries = deps.Services.Log.All()
	if spec != nil {
		result, err := deps.Services.Log.List(*spec)
		if err != nil {
			deps.Fail("Failed to read the drink log", err, "")
			return
		}
		cli.WriteWarnings(deps.Stderr, result.Warnings)
		entries = result.Entries
	}
	entries = filter.FilterEntries(entries, f)

	meta := export.Metadata{
		ExportTimestamp: deps.Services.Log.Calendar().Now().UTC().Truncate(time.Second),
		FilterCriteria:  criteria,
	}
	if err := export.Write(deps.Stdout, format, entries, meta); err != nil {
		deps.Fail("Failed to write export", err, "Supported formats: csv, json, xlsx")
		return
	}
}
