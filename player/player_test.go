package player

import (
	"errors"
	"os/exec"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/key"
)

func TestPlaybackError(t *testing.T) {
	if runtime.GOOS == constant.Windows {
		t.Skip("relies on sh")
	}

	Convey("A non-zero exit becomes a PlaybackError carrying the code", t, func() {
		err := exec.Command("sh", "-c", "exit 7").Run()
		converted := playbackError("streamlink", err, "stream ended")

		var playbackErr *PlaybackError
		So(errors.As(converted, &playbackErr), ShouldBeTrue)
		So(playbackErr.Command, ShouldEqual, "streamlink")
		So(playbackErr.Code, ShouldEqual, 7)
		So(playbackErr.Error(), ShouldEqual, "streamlink exited with code 7: stream ended")
	})

	Convey("A binary that never ran passes through untouched", t, func() {
		err := exec.Command("twitchy-no-such-binary").Run()
		converted := playbackError("twitchy-no-such-binary", err, "")

		var playbackErr *PlaybackError
		So(errors.As(converted, &playbackErr), ShouldBeFalse)
		So(converted, ShouldNotBeNil)
	})

	Convey("A clean exit converts to nil", t, func() {
		So(playbackError("streamlink", nil, ""), ShouldBeNil)
	})
}

func TestForConfig(t *testing.T) {
	Convey("The player path picks the backend", t, func() {
		Convey("mpv paths produce the IPC-driven wrapper", func() {
			viper.Set(key.PlayerPath, "mpv")
			_, ok := ForConfig().(*MPV)
			So(ok, ShouldBeTrue)
		})

		Convey("Absolute mpv paths too", func() {
			viper.Set(key.PlayerPath, "/usr/local/bin/mpv")
			_, ok := ForConfig().(*MPV)
			So(ok, ShouldBeTrue)
		})

		Convey("iina is recognized by base name", func() {
			viper.Set(key.PlayerPath, "/usr/local/bin/iina")
			So(isIINA(viper.GetString(key.PlayerPath)), ShouldBeTrue)

			if runtime.GOOS == constant.Darwin {
				_, ok := ForConfig().(*IINA)
				So(ok, ShouldBeTrue)
			} else {
				// IPC wrapper everywhere else
				_, ok := ForConfig().(*MPV)
				So(ok, ShouldBeTrue)
			}
		})

		Reset(func() {
			viper.Set(key.PlayerPath, "mpv")
		})
	})
}
