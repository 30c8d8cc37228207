package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli/handlers"
	"github.com/xolan/sip/internal/service"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics for your drinks",
	Long: `Show aggregated statistics for your drinks.

Display summary statistics including:
  - Total units and drinks
  - Average units per day
  - Drink-free days and days over daily_limit
  - Breakdown by category, drink and day
  - Comparison to the previous period

By default, statistics are shown for the current week.

Examples:
  sip stats                       Show statistics for this week
  sip stats --month               Show statistics for this month
  sip stats --last 30             Show statistics for the last 30 days
  sip stats --from 2026-01-01     Show statistics since January 1st`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showMonth, _ := cmd.Flags().GetBool("month")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		lastDays, _ := cmd.Flags().GetInt("last")
		runStats(showMonth, fromStr, toStr, lastDays)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Bool("month", false, "Show statistics for current month instead of week")
	addRangeFlags(statsCmd)
}

// runStats handles the stats command logic
func runStats(showMonth bool, fromStr, toStr string, lastDays int) {
	d, ok := handlerDeps()
	if !ok {
		return
	}

	if fromStr != "" || toStr != "" || lastDays != 0 {
		spec, ok := parseRangeFlags(d.Services, fromStr, toStr, lastDays)
		if !ok {
			return
		}
		handlers.ShowRangeStats(d, spec)
		return
	}

	if showMonth {
		handlers.ShowMonthlyStats(d)
		return
	}
	handlers.ShowWeeklyStats(d)
}

// addRangeFlags adds --from, --to and --last to cmd
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD, DD/MM/YYYY or 'yesterday')")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD, DD/MM/YYYY or 'today')")
	cmd.Flags().Int("last", 0, "Last N days including today (e.g., --last 7)")
}

// parseRangeFlags turns --from/--to/--last into a custom range
func parseRangeFlags(s *service.Services, fromStr, toStr string, lastDays int) (service.DateRangeSpec, bool) {
	start, end, err := s.Log.Calendar().ParseRange(fromStr, toStr, lastDays)
	if err != nil {
		failRange(err)
		return service.DateRangeSpec{}, false
	}
	if lastDays > 0 {
		return service.DateRangeSpec{Type: service.DateRangeLast, LastDays: lastDays}, true
	}
	return service.DateRangeSpec{Type: service.DateRangeCustom, From: start, To: end}, true
}
