package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/twitch"
)

func init() {
	rootCmd.AddCommand(followsCmd)
	registerListFlags(followsCmd)
}

// followsCmd lists the channels the authenticated user follows, most recently
// followed first.
var followsCmd = &cobra.Command{
	Use:   "follows",
	Short: "List the channels you follow",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		userID, err := session.userID()
		handleErr(err)

		page, err := session.client.FollowedChannels(userID, first, after)
		handleErr(err)

		printPage(page.Data, page.Cursor(), asJson, func(c twitch.FollowedChannel) string {
			return format.FollowedChannel(&c)
		})
	},
}
