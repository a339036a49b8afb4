// Package cmd provides the CLI commands for cavetimer.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for cavetimer.

To load completions:

Bash:
  $ source <(cavetimer completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cavetimer completion bash > /etc/bash_completion.d/cavetimer
  # macOS:
  $ cavetimer completion bash > $(brew --prefix)/etc/bash_completion.d/cavetimer

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cavetimer completion zsh > "${fpath[1]}/_cavetimer"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cavetimer completion fish | source

  # To load completions for each session, execute once:
  $ cavetimer completion fish > ~/.config/fish/completions/cavetimer.fish

PowerShell:
  PS> cavetimer completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
