package player

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestWriteProfile(t *testing.T) {
	Convey("Given player preferences", t, func() {
		filesystem.SetMemMapFs()

		viper.Set(key.PlayerVideoOutput, "gpu,")
		viper.Set(key.PlayerAudioOutput, "alsa,")
		viper.Set(key.PlayerHwaccel, "auto")
		viper.Set(key.PlayerSubtitles, "auto")
		viper.Set(key.PlayerLoopPlaylist, "inf")
		viper.Set(key.PlayerStopScreensaver, true)
		viper.Set(key.PlayerFullscreen, false)
		viper.Set(key.PlayerVolumeStep, 5)

		mpvConfPath := filepath.Join(where.Player(), "mpv.conf")
		inputConfPath := filepath.Join(where.Player(), "input.conf")

		Convey("Both profile files are written", func() {
			So(WriteProfile(), ShouldBeNil)

			mpvConf := string(lo.Must(filesystem.API().ReadFile(mpvConfPath)))
			So(mpvConf, ShouldContainSubstring, "vo=gpu,")
			So(mpvConf, ShouldContainSubstring, "ao=alsa,")
			So(mpvConf, ShouldContainSubstring, "hwdec=auto")
			So(mpvConf, ShouldContainSubstring, "loop-playlist=inf")
			So(mpvConf, ShouldContainSubstring, "stop-screensaver=yes")
			So(mpvConf, ShouldContainSubstring, "fullscreen=no")

			inputConf := string(lo.Must(filesystem.API().ReadFile(inputConfPath)))
			So(inputConf, ShouldContainSubstring, `q show-text "THERE IS NO ESCAPE"`)
			So(inputConf, ShouldContainSubstring, "s screenshot")
			So(inputConf, ShouldContainSubstring, "9 add volume -5")
			So(inputConf, ShouldContainSubstring, "0 add volume 5")
		})

		Convey("Existing files are left alone", func() {
			So(filesystem.API().WriteFile(mpvConfPath, []byte("vo=libmpv\n"), 0644), ShouldBeNil)

			So(WriteProfile(), ShouldBeNil)

			kept := string(lo.Must(filesystem.API().ReadFile(mpvConfPath)))
			So(kept, ShouldEqual, "vo=libmpv\n")

			// The missing one is still created
			So(lo.Must(filesystem.API().Exists(inputConfPath)), ShouldBeTrue)
		})
	})
}
