package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "projectboard",
	Short: "Drag-and-drop board for project proposals",
	Long: `projectboard serves a board where project proposals are submitted
and moved between the active and finished lists.

Board state lives in memory and resets when the process exits.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
