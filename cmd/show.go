package cmd

import (
	"github.com/spf13/cobra"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s", "status"},
	Short:   "Print the caves once",
	Long: `Print every cave as of now and exit.

Examples:
  cavetimer show
  cavetimer show --start 1=08:30 --cooldown 1=01:30
  cavetimer show --start 2='20 minutes ago' --format json`,
	RunE: runShow,
}

func init() {
	addBoardFlags(showCmd)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	board, err := initialBoard()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintBoard(board)
	}

	ctx.CLIFormatter().PrintBoard(board)
	return nil
}
