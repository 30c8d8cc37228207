package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli/handlers"
	"github.com/xolan/sip/internal/filter"
	"github.com/xolan/sip/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "sip",
	Short: "A drink logging CLI application",
	Long: `sip is a CLI tool for logging drinks and keeping an eye on units.

Usage:
  sip <drink>                       Log a drink from the catalog now
  sip <drink> --ago 30              Log a drink you had 30 minutes ago (15, 30, 45, 60)
  sip <drink> --at 21:15            Log a drink you had at 21:15 today
  sip add --name N --units U        Log a drink that is not in the catalog
  sip undo                          Undo the most recent log
  sip                               List today's drinks
  sip y                             List yesterday's drinks
  sip w                             List this week's drinks
  sip lw                            List last week's drinks
  sip drinks                        Show the drink catalog
  sip stats [--month]               Show statistics
  sip tui                           Launch the interactive terminal UI

Drink names are matched case-insensitively, e.g. sip pint of lager`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			listEntries(service.DateRangeSpec{Type: service.DateRangeToday}, filterFromFlags(cmd))
			return
		}

		ago, _ := cmd.Flags().GetInt("ago")
		at, _ := cmd.Flags().GetString("at")
		logDrink(strings.Join(args, " "), ago, at)
	},
}

// yCmd represents the yesterday command
var yCmd = &cobra.Command{
	Use:   "y",
	Short: "List yesterday's drinks",
	Long:  `List all drinks logged for yesterday.`,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(service.DateRangeSpec{Type: service.DateRangeYesterday}, filterFromFlags(cmd))
	},
}

// wCmd represents the this week command
var wCmd = &cobra.Command{
	Use:   "w",
	Short: "List this week's drinks",
	Long:  `List all drinks logged this week. The first day of the week is set by week_start_day.`,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(service.DateRangeSpec{Type: service.DateRangeThisWeek}, filterFromFlags(cmd))
	},
}

// lwCmd represents the last week command
var lwCmd = &cobra.Command{
	Use:   "lw",
	Short: "List last week's drinks",
	Long:  `List all drinks logged last week.`,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(service.DateRangeSpec{Type: service.DateRangePrevWeek}, filterFromFlags(cmd))
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check drink log health",
	Long:  `Validate the drink log and report on its health status, including any corrupted records.`,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

func init() {
	rootCmd.AddCommand(yCmd)
	rootCmd.AddCommand(wCmd)
	rootCmd.AddCommand(lwCmd)
	rootCmd.AddCommand(validateCmd)

	rootCmd.Flags().Int("ago", 0, "Minutes since you had the drink (15, 30, 45 or 60)")
	rootCmd.Flags().String("at", "", "Time you had the drink today (HH:MM, minutes 00/15/30/45)")

	rootCmd.PersistentFlags().StringSlice("category", nil, "Only show drinks in these categories (repeatable)")
	rootCmd.PersistentFlags().String("search", "", "Only show drinks whose name contains this text")
	rootCmd.PersistentFlags().Bool("custom", false, "Only show custom drinks")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"sip version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// filterFromFlags builds a filter from the persistent list flags
func filterFromFlags(cmd *cobra.Command) *filter.Filter {
	categories, _ := cmd.Flags().GetStringSlice("category")
	keyword, _ := cmd.Flags().GetString("search")
	customOnly, _ := cmd.Flags().GetBool("custom")

	origin := filter.AnyOrigin
	if customOnly {
		origin = filter.CustomOnly
	}
	return filter.NewFilter(keyword, categories, origin)
}

// listEntries lists drinks for a date range
func listEntries(spec service.DateRangeSpec, f *filter.Filter) {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.ListEntries(d, spec, f)
}

// validateStorage reports on the health of the drink log
func validateStorage() {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.Validate(d)
}
