package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli/handlers"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore from a backup file",
	Long: `Restore the drink log from a backup.

A backup is taken before every change. By default the most recent one
(.bak.1) is restored. Optionally specify a backup number (1-3).

Examples:
  sip restore       Restore from most recent backup
  sip restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		restoreFromBackup(arg)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(arg string) {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.Restore(d, arg)
}
