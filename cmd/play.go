package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/player"
	"github.com/twitchy-cli/twitchy/query"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("video", "V", "", "Play the VOD with this id instead of a live stream")
	playCmd.Flags().BoolP("url-only", "u", false, "Print the resolved media URL instead of launching the player")
}

// playCmd starts playback without entering the interactive loop.
//
// Live channels are handed to streamlink, which supervises the player process
// and rides out stream restarts. VODs are resolved to a direct media URL and
// driven over the mpv IPC socket, which is what lets the dead-air skipper work.
var playCmd = &cobra.Command{
	Use:   "play [channel]",
	Short: "Watch a live channel or a VOD",
	Args:  cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !cmd.Flags().Changed("video") {
			handleErr(errors.New("a channel argument or the --video flag is required"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		urlOnly := lo.Must(cmd.Flags().GetBool("url-only"))
		videoID := lo.Must(cmd.Flags().GetString("video"))

		session, err := newHelixSession()
		handleErr(err)

		streamlink := &player.Streamlink{UserToken: session.playbackToken()}

		if videoID != "" {
			playVideo(session, streamlink, videoID, urlOnly)
			return
		}

		login := strings.ToLower(args[0])
		page, err := session.client.Streams(twitch.StreamsParams{UserLogins: []string{login}})
		handleErr(err)

		if len(page.Data) == 0 {
			handleErr(offlineOrUnknown(session, login))
		}

		if err := query.Remember(login, 1); err != nil {
			log.Warnf("remembering query: %v", err)
		}

		target := twitch.ChannelURL(login)
		if urlOnly {
			mediaURL, err := streamlink.ResolveURL(target, "")
			handleErr(err)
			fmt.Println(mediaURL)
			return
		}

		fmt.Printf("%s Watching %s\n", icon.Get(icon.Live), style.Fg(color.Purple)(format.Stream(&page.Data[0])))
		handleErr(streamlink.Play(target, ""))
	},
}

// offlineOrUnknown reports why a channel cannot be played. Helix returns an
// empty stream page for offline and nonexistent channels alike, so a user
// lookup tells the two apart.
func offlineOrUnknown(session *helixSession, login string) error {
	users, err := session.client.Users(twitch.UsersParams{Logins: []string{login}})
	if err == nil && len(users.Data) == 0 {
		if hint, ok := query.Suggest(login).Get(); ok && hint != login {
			return fmt.Errorf("no such channel: %s (did you mean %s?)", login, hint)
		}
		return fmt.Errorf("no such channel: %s", login)
	}

	return errors.New(format.Offline(login))
}

// playVideo plays a VOD through the configured player backend.
func playVideo(session *helixSession, streamlink *player.Streamlink, videoID string, urlOnly bool) {
	page, err := session.client.Videos(twitch.VideosParams{IDs: []string{videoID}})
	handleErr(err)

	if len(page.Data) == 0 {
		handleErr(fmt.Errorf("no such video: %s", videoID))
	}
	video := &page.Data[0]

	mediaURL, err := streamlink.ResolveURL(twitch.VideoURL(videoID), "")
	handleErr(err)

	if urlOnly {
		fmt.Println(mediaURL)
		return
	}

	backend := player.ForConfig()
	handleErr(backend.Play(mediaURL, video.Title, nil))

	stopSkipper := player.SkipLeadingSilence(backend)
	fmt.Printf("%s Watching %s\n", icon.Get(icon.Live), style.Fg(color.Purple)(format.Video(video)))

	<-backend.Wait()
	stopSkipper()
	util.Ignore(backend.Close)
}
