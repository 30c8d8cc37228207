package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for sip.

Views available:
  - Drinks: a grid of drink buttons; enter logs the drink now
  - Log: today's and this week's drinks
  - Stats: weekly and monthly totals

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-3: Switch views
  - Arrows or h/j/k/l: Move around the drink grid
  - enter: Log the selected drink now
  - o: Pick another time (15-60 minutes ago, or an hour and minute)
  - c: Log a custom drink
  - u: Undo the last log while the notice is showing
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := deps.Services()
	if err != nil {
		cli.Fail(deps.Stderr, "Failed to start sip", err, "Check your config file with 'sip config'")
		deps.Exit(1)
		return
	}

	if err := tui.Run(services); err != nil {
		cli.Fail(deps.Stderr, "Failed to run the terminal UI", err, "")
		deps.Exit(1)
		return
	}
}
