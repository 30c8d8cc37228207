package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/service"
)

// ShowWeeklyStats shows weekly statistics
func ShowWeeklyStats(deps *cli.Deps) {
	displayStats(deps, deps.Services.Stats.Weekly())
}

// ShowMonthlyStats shows monthly statistics
func ShowMonthlyStats(deps *cli.Deps) {
	displayStats(deps, deps.Services.Stats.Monthly())
}

// ShowRangeStats shows statistics for an explicit range
func ShowRangeStats(deps *cli.Deps, spec service.DateRangeSpec) {
	displayStats(deps, deps.Services.Stats.ForDateRange(spec))
}

func displayStats(deps *cli.Deps, result *service.StatsResult) {
	s := result.Statistics
	out := deps.Stdout

	_, _ = fmt.Fprintf(out, "Statistics for %s:\n", result.Period)
	_, _ = fmt.Fprintln(out, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(out, "Total units:      %s\n", cli.FormatUnits(s.TotalUnits))
	_, _ = fmt.Fprintf(out, "Total drinks:     %d\n", s.EntryCount)
	_, _ = fmt.Fprintf(out, "Average per day:  %s\n", cli.FormatUnits(s.AverageUnitsPerDay))
	_, _ = fmt.Fprintf(out, "Drink-free days:  %d of %d\n", s.DrinkFreeDays, s.TotalDays)
	if s.PeakUnits > 0 {
		_, _ = fmt.Fprintf(out, "Heaviest day:     %s (%s)\n", s.PeakDay.Format("Mon Jan 2"), cli.FormatUnits(s.PeakUnits))
	}
	if result.DailyLimit > 0 {
		line := fmt.Sprintf("Days over limit:  %d (limit %s)", s.DaysOverLimit, cli.FormatUnits(result.DailyLimit))
		if s.DaysOverLimit > 0 {
			line = cli.Warn(line)
		}
		_, _ = fmt.Fprintln(out, line)
	}

	if result.Comparison != "" {
		_, _ = fmt.Fprintln(out, strings.Repeat("-", 50))
		_, _ = fmt.Fprintf(out, "Comparison: %s\n", result.Comparison)
	}

	if s.EntryCount == 0 {
		return
	}

	_, _ = fmt.Fprintln(out, strings.Repeat("-", 50))
	cli.BreakdownTable(out, "By category", result.Categories, s.TotalUnits)
	cli.BreakdownTable(out, "By drink", result.Drinks, s.TotalUnits)
	if len(result.Days) <= 31 {
		_, _ = fmt.Fprintln(out, cli.Bold("By day"))
		cli.DayTable(out, result.Days, result.DailyLimit)
	}
}
