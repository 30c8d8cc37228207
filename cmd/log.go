package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/cli/handlers"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a drink that is not in the catalog",
	Long: `Log a custom drink with its own name and units.

Examples:
  sip add --name 'Homebrew IPA' --units 2.5
  sip add --name 'Mulled wine' --category Wine --units 1,8 --ago 30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		units, _ := cmd.Flags().GetString("units")
		ago, _ := cmd.Flags().GetInt("ago")
		at, _ := cmd.Flags().GetString("at")
		logCustom(name, category, units, ago, at)
	},
}

// undoCmd represents the undo command
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent log",
	Long: `Remove the drink logged most recently.

Only the latest log can be undone, once, and only within undo_window
(5 minutes by default) of logging it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		undoLast()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(undoCmd)

	addCmd.Flags().String("name", "", "Name of the drink")
	addCmd.Flags().String("category", "", "Category of the drink (default \"Custom\")")
	addCmd.Flags().String("units", "", "Units of alcohol in the drink")
	addCmd.Flags().Int("ago", 0, "Minutes since you had the drink (15, 30, 45 or 60)")
	addCmd.Flags().String("at", "", "Time you had the drink today (HH:MM, minutes 00/15/30/45)")
}

// logDrink logs a catalog drink
func logDrink(name string, ago int, at string) {
	when, err := handlers.ParseWhen(ago, at)
	if err != nil {
		cli.Fail(deps.Stderr, "Invalid time", err, "Use --ago 15|30|45|60 or --at HH:MM with minutes 00, 15, 30 or 45")
		deps.Exit(1)
		return
	}

	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.LogDrink(d, name, when)
}

// logCustom logs a custom drink
func logCustom(name, category, units string, ago int, at string) {
	when, err := handlers.ParseWhen(ago, at)
	if err != nil {
		cli.Fail(deps.Stderr, "Invalid time", err, "Use --ago 15|30|45|60 or --at HH:MM with minutes 00, 15, 30 or 45")
		deps.Exit(1)
		return
	}

	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.LogCustom(d, name, category, units, when)
}

// undoLast undoes the most recent log
func undoLast() {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.Undo(d)
}
