package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/twitch"
)

func init() {
	rootCmd.AddCommand(gamesCmd)
}

// gamesCmd groups the category listings.
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Browse Twitch categories",
}

func init() {
	gamesCmd.AddCommand(gamesTopCmd)
	registerListFlags(gamesTopCmd)
}

// gamesTopCmd lists categories by current viewership.
var gamesTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most watched categories right now",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		page, err := session.client.TopGames(first, after)
		handleErr(err)

		printPage(page.Data, page.Cursor(), asJson, func(g twitch.Game) string {
			return format.Game(&g)
		})
	},
}

func init() {
	gamesCmd.AddCommand(gamesStreamsCmd)
	registerListFlags(gamesStreamsCmd)

	gamesStreamsCmd.Flags().StringP("language", "l", "", "Only list streams in this ISO 639-1 language")
}

// gamesStreamsCmd lists live streams in a category. The name must match the
// category exactly; Helix only ignores case.
var gamesStreamsCmd = &cobra.Command{
	Use:   "streams <game>",
	Short: "List live streams in a category, most watched first",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		game, err := session.client.GameByName(strings.Join(args, " "))
		handleErr(err)

		language, _ := cmd.Flags().GetString("language")

		page, err := session.client.Streams(twitch.StreamsParams{
			GameIDs:  []string{game.ID},
			Language: language,
			First:    first,
			After:    after,
		})
		handleErr(err)

		printPage(page.Data, page.Cursor(), asJson, func(s twitch.Stream) string {
			return format.StreamDetailed(&s)
		})
	},
}
