package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/key"
)

func TestStreamlinkArgs(t *testing.T) {
	Convey("Given streamlink settings", t, func() {
		viper.Set(key.StreamlinkQuality, "best")
		viper.Set(key.StreamlinkTimeout, 30)
		viper.Set(key.StreamlinkDisableAds, true)
		viper.Set(key.StreamlinkExtraArgs, []string{})

		target := "https://www.twitch.tv/somestreamer"

		Convey("Session options precede the target and quality", func() {
			s := &Streamlink{}
			args := s.args(target, "720p")

			So(args, ShouldResemble, []string{
				"--stream-timeout", "30",
				"--twitch-disable-ads",
				target,
				"720p",
			})
		})

		Convey("An empty quality falls back to the configured default", func() {
			s := &Streamlink{}
			args := s.args(target, "")

			So(args[len(args)-1], ShouldEqual, "best")
		})

		Convey("A user token rides along as the legacy OAuth header", func() {
			s := &Streamlink{UserToken: "abc123"}
			args := s.args(target, "")

			So(args, ShouldContain, "--twitch-api-header")
			So(args, ShouldContain, "Authorization=OAuth abc123")
		})

		Convey("Ad filtering can be switched off", func() {
			viper.Set(key.StreamlinkDisableAds, false)
			defer viper.Set(key.StreamlinkDisableAds, true)

			s := &Streamlink{}
			So(s.args(target, ""), ShouldNotContain, "--twitch-disable-ads")
		})

		Convey("Extra args are appended before the mode flags", func() {
			viper.Set(key.StreamlinkExtraArgs, []string{"--retry-streams", "5"})
			defer viper.Set(key.StreamlinkExtraArgs, []string{})

			s := &Streamlink{}
			args := s.args(target, "", "--stream-url")

			So(args, ShouldContain, "--retry-streams")
			So(args[len(args)-3], ShouldEqual, "--stream-url")
		})
	})
}

func TestLastLine(t *testing.T) {
	Convey("The last non-empty output line wins", t, func() {
		So(lastLine("warning: plugin stuff\nhttps://cdn.example/playlist.m3u8\n"), ShouldEqual, "https://cdn.example/playlist.m3u8")
		So(lastLine("https://cdn.example/playlist.m3u8"), ShouldEqual, "https://cdn.example/playlist.m3u8")
		So(lastLine("\n\n"), ShouldEqual, "")
		So(lastLine(""), ShouldEqual, "")
	})
}
