package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/twitch"
)

func init() {
	rootCmd.AddCommand(videosCmd)
	registerListFlags(videosCmd)

	videosCmd.Flags().StringP("type", "t", "", "Only list videos of this type (archive, highlight or upload)")
	lo.Must0(videosCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"archive", "highlight", "upload"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// videosCmd lists a channel's videos, newest first.
var videosCmd = &cobra.Command{
	Use:   "videos <channel>",
	Short: "List a channel's past broadcasts, highlights and uploads",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		broadcasterID, err := session.broadcasterID(strings.ToLower(args[0]))
		handleErr(err)

		page, err := session.client.Videos(twitch.VideosParams{
			UserID: broadcasterID,
			Type:   lo.Must(cmd.Flags().GetString("type")),
			First:  first,
			After:  after,
		})
		handleErr(err)

		printPage(page.Data, page.Cursor(), asJson, func(v twitch.Video) string {
			return format.Video(&v)
		})
	},
}
