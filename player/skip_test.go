package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSilenceEnd(t *testing.T) {
	Convey("Given silencedetect log lines", t, func() {
		Convey("The position after silence_end: is extracted", func() {
			end, ok := parseSilenceEnd("silence_end: 217.582 | silence_duration: 3.014")

			So(ok, ShouldBeTrue)
			So(end, ShouldAlmostEqual, 217.582, 0.0001)
		})

		Convey("A prefixed line still parses", func() {
			end, ok := parseSilenceEnd("[silencedetect] silence_end: 42.5 | silence_duration: 1.2")

			So(ok, ShouldBeTrue)
			So(end, ShouldAlmostEqual, 42.5, 0.0001)
		})

		Convey("silence_start lines are ignored", func() {
			_, ok := parseSilenceEnd("silence_start: 214.568")
			So(ok, ShouldBeFalse)
		})

		Convey("Unrelated player chatter is ignored", func() {
			_, ok := parseSilenceEnd("Opening video decoder: [ffmpeg] h264")
			So(ok, ShouldBeFalse)
		})

		Convey("A trailing marker with no value is ignored", func() {
			_, ok := parseSilenceEnd("silence_end:")
			So(ok, ShouldBeFalse)
		})

		Convey("A non-numeric value is ignored", func() {
			_, ok := parseSilenceEnd("silence_end: soon")
			So(ok, ShouldBeFalse)
		})
	})
}
