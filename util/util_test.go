package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace characters that break paths", func() {
			So(SanitizeFilename("somestreamer: ranked grind?.ts"), ShouldEqual, "somestreamer_ranked_grind_.ts")
		})
		Convey("Should collapse repeated underscores", func() {
			So(SanitizeFilename("somestreamer__2026.ts"), ShouldEqual, "somestreamer_2026.ts")
		})
		Convey("Should trim leading and trailing separators", func() {
			So(SanitizeFilename("-late-night-vod-"), ShouldEqual, "late-night-vod")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "viewer", "viewers"), ShouldEqual, "1 viewer")
		So(Quantify(2, "viewer", "viewers"), ShouldEqual, "2 viewers")
		So(Quantify(0, "viewer", "viewers"), ShouldEqual, "0 viewers")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("speedrun"), ShouldEqual, "Speedrun")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<hours>\d+)h(?P<minutes>\d+)m`)

		Convey("Should map named groups to their matches", func() {
			groups := ReGroups(re, "3h42m")
			So(groups["hours"], ShouldEqual, "3")
			So(groups["minutes"], ShouldEqual, "42")
		})

		Convey("Should return an empty map when nothing matches", func() {
			So(ReGroups(re, "live"), ShouldBeEmpty)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/tmp-probe/file", []byte("x"), 0644), ShouldBeNil)

		So(Delete("/tmp-probe"), ShouldBeNil)

		exists, err := fs.Exists("/tmp-probe")
		So(err, ShouldBeNil)
		So(exists, ShouldBeFalse)

		Convey("Deleting a missing path should report the stat error", func() {
			So(Delete("/definitely-not-there"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)

		Convey("Popping an empty stack should yield the zero value", func() {
			So(s.Pop(), ShouldEqual, 0)
			So(s.Len(), ShouldEqual, 0)
		})
	})
}
