package cmd

import (
	"strings"

	"github.com/xolan/sip/internal/cli"
)

// failRange reports a bad --from/--to/--last combination
func failRange(err error) {
	hint := "Use dates like 2026-01-31 or 31/01/2026"
	if strings.Contains(err.Error(), "--last") {
		hint = "Use either --last N or --from/--to, not both"
	}
	cli.Fail(deps.Stderr, "Invalid date range", err, hint)
	deps.Exit(1)
}
