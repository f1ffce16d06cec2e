package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/twitch"
)

func init() {
	rootCmd.AddCommand(liveCmd)
	registerListFlags(liveCmd)
}

// liveCmd lists live streams: the followed ones by default, or just the named
// channels when logins are given. The paging cursor walks the follow list, so
// it stays valid across calls even as channels go live and offline.
var liveCmd = &cobra.Command{
	Use:   "live [channel...]",
	Short: "List live streams from your follows, or check specific channels",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		if len(args) > 0 {
			logins := lo.Map(args, func(login string, _ int) string {
				return strings.ToLower(login)
			})

			page, err := session.client.Streams(twitch.StreamsParams{UserLogins: logins})
			handleErr(err)

			printPage(page.Data, page.Cursor(), asJson, func(s twitch.Stream) string {
				return format.StreamDetailed(&s)
			})

			if asJson {
				return
			}

			live := lo.Map(page.Data, func(s twitch.Stream, _ int) string {
				return s.UserLogin
			})
			for _, login := range logins {
				if !lo.Contains(live, login) {
					fmt.Println(style.Faint(format.Offline(login)))
				}
			}
			return
		}

		userID, err := session.userID()
		handleErr(err)

		follows, err := session.client.FollowedChannels(userID, first, after)
		handleErr(err)

		logins := lo.Map(follows.Data, func(c twitch.FollowedChannel, _ int) string {
			return c.BroadcasterLogin
		})

		streams := &twitch.Page[twitch.Stream]{}
		if len(logins) > 0 {
			streams, err = session.client.Streams(twitch.StreamsParams{
				UserLogins: logins,
				First:      len(logins),
			})
			handleErr(err)
		}

		printPage(streams.Data, follows.Cursor(), asJson, func(s twitch.Stream) string {
			return format.StreamDetailed(&s)
		})
	},
}
