package cmd

import (
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Append a start timestamp",
	Long: `Append an entry for the current time with duration 00:00:00.

Later runs of 'timestamps' measure their duration from the most recent
start entry. Starting never looks at earlier entries: running start twice
simply opens a newer start.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			unknownCommand(append([]string{"start"}, args...))
			return
		}
		recordStart()
	},
}
