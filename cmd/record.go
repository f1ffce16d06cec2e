package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/player"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringP("output", "o", "", "File to write the stream to (default <channel>-<timestamp>.ts)")
}

// recordCmd captures a live stream to a local file instead of playing it.
// Streamlink does the actual writing; its stdio is inherited so the progress
// line stays visible, and interrupting it finalizes the file.
var recordCmd = &cobra.Command{
	Use:   "record <channel>",
	Short: "Record a live stream to a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		login := strings.ToLower(args[0])

		session, err := newHelixSession()
		handleErr(err)

		page, err := session.client.Streams(twitch.StreamsParams{UserLogins: []string{login}})
		handleErr(err)

		if len(page.Data) == 0 {
			handleErr(errors.New(format.Offline(login)))
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			output = util.SanitizeFilename(fmt.Sprintf(
				"%s-%s.ts",
				login,
				time.Now().Format("2006-01-02-15-04-05"),
			))
		}

		fmt.Printf(
			"%s Recording %s to %s, interrupt to stop\n",
			icon.Get(icon.Record),
			style.Fg(color.Purple)(format.Stream(&page.Data[0])),
			style.Bold(output),
		)

		streamlink := &player.Streamlink{UserToken: session.playbackToken()}
		handleErr(streamlink.Record(twitch.ChannelURL(login), "", output))
	},
}
