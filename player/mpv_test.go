package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("Given resolver output destined for the player argv", t, func() {
		Convey("http(s) URLs pass through", func() {
			url := "https://cdn.example/playlist.m3u8"

			out, err := sanitizeMediaTarget("  " + url + "\t")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, url)
		})

		Convey("Flag lookalikes are rejected", func() {
			_, err := sanitizeMediaTarget("--ytdl-raw-options=exec:whoami")
			So(err, ShouldNotBeNil)
		})

		Convey("Exotic schemes are rejected", func() {
			_, err := sanitizeMediaTarget("file:///etc/passwd")
			So(err, ShouldNotBeNil)
		})

		Convey("Control characters are rejected", func() {
			_, err := sanitizeMediaTarget("https://cdn.example/a\nb")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty input is rejected", func() {
			_, err := sanitizeMediaTarget("   ")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("Titles are flattened to a single clean line", t, func() {
		So(sanitizeTitle("SomeStreamer - [Just Chatting]"), ShouldEqual, "SomeStreamer - [Just Chatting]")
		So(sanitizeTitle("line\nbreaks\tand\rreturns"), ShouldEqual, "line breaks and returns")
		So(sanitizeTitle("nul\x00byte"), ShouldEqual, "nulbyte")
		So(sanitizeTitle("  padded  "), ShouldEqual, "padded")
	})
}
