package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli/handlers"
)

// drinksCmd represents the drinks command
var drinksCmd = &cobra.Command{
	Use:   "drinks",
	Short: "Show the drink catalog",
	Long: `Show every drink that can be logged by name, grouped by category.

The catalog is built in unless catalog_path points at a JSON file of
{"drink_name", "drink_category", "units"} records.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listDrinks()
	},
}

func init() {
	rootCmd.AddCommand(drinksCmd)
}

func listDrinks() {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.ListDrinks(d)
}
