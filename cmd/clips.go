package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/twitch"
)

func init() {
	rootCmd.AddCommand(clipsCmd)
	registerListFlags(clipsCmd)
}

// clipsCmd lists a channel's clips, most viewed first.
var clipsCmd = &cobra.Command{
	Use:   "clips <channel>",
	Short: "List a channel's clips",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		broadcasterID, err := session.broadcasterID(strings.ToLower(args[0]))
		handleErr(err)

		page, err := session.client.Clips(twitch.ClipsParams{
			BroadcasterID: broadcasterID,
			First:         first,
			After:         after,
		})
		handleErr(err)

		printPage(page.Data, page.Cursor(), asJson, func(c twitch.Clip) string {
			return format.Clip(&c)
		})
	},
}
