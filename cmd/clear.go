package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/util"
	"github.com/twitchy-cli/twitchy/where"
)

// clearTarget is one kind of on-disk state the clear command can wipe.
type clearTarget struct {
	name  string
	flag  string
	short mo.Option[string]
	path  func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"watch history", "history", mo.Some("s"), where.History},
	{"queries history", "queries", mo.Some("q"), where.Queries},
	{"log files", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := "clear " + target.name
		if short, ok := target.short.Get(); ok {
			clearCmd.Flags().BoolP(target.flag, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.flag, false, help)
		}
	}
}

// clearCmd wipes selected application state. Directories are recreated on
// demand the next time something needs them.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.flag)) {
				continue
			}
			cleared = true

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.path())
			erase()

			// A path that never existed is already clear.
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
