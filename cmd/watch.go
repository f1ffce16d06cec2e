package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolP("continue", "c", false, "Resume the most recently watched channel")
}

// watchCmd enters the interactive selection loop, the same thing running the
// bare application does.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Browse and watch streams interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		handleErr(watch.Run(&watch.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}))
	},
}
