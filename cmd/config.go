package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long: `Show the current configuration and where it is read from.

The config file is TOML and lives in your user config directory
(e.g. ~/.config/sip/config.toml). Missing keys use their defaults.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Create a config file documenting every setting with its default value.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func showConfig() {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.ShowConfig(d)
}

func initConfig() {
	d, ok := handlerDeps()
	if !ok {
		return
	}
	handlers.InitConfig(d)
}
