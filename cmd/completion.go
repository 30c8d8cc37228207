package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for sip.

Usage:
  sip completion bash       Generate bash completion script
  sip completion zsh        Generate zsh completion script
  sip completion fish       Generate fish completion script
  sip completion powershell Generate powershell completion script

Bash:
  source <(sip completion bash)
  sip completion bash > ~/.local/share/bash-completion/completions/sip

Zsh:
  mkdir -p ~/.zsh/completion
  sip completion zsh > ~/.zsh/completion/_sip

Fish:
  sip completion fish > ~/.config/fish/completions/sip.fish

PowerShell:
  sip completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		cli.Fail(deps.Stderr, "Unsupported shell '"+shell+"'", nil, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		cli.Fail(deps.Stderr, "Failed to generate "+shell+" completion", err, "")
		deps.Exit(1)
		return
	}
}
