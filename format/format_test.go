package format

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/twitch"
)

func TestLine(t *testing.T) {
	Convey("Given a channel name and a game", t, func() {
		Convey("Without a title the line is exactly name - [game]", func() {
			So(Line("X", "Y", ""), ShouldEqual, "X - [Y]")
		})

		Convey("A title is appended after a colon", func() {
			So(Line("X", "Y", "drops enabled"), ShouldEqual, "X - [Y] : drops enabled")
		})
	})

	Convey("An offline channel gets the not-live line", t, func() {
		So(Offline("somestreamer"), ShouldEqual, "somestreamer is not live")
	})
}

func TestStreamLines(t *testing.T) {
	stream := &twitch.Stream{
		UserLogin:   "somestreamer",
		UserName:    "SomeStreamer",
		GameName:    "Just Chatting",
		Title:       "cooking stream",
		ViewerCount: 12345,
		StartedAt:   time.Now().Add(-2 * time.Hour),
	}

	Convey("A stream renders as the canonical line", t, func() {
		So(Stream(stream), ShouldEqual, "SomeStreamer - [Just Chatting] : cooking stream")
	})

	Convey("The detailed line adds a humanized audience and uptime", t, func() {
		detailed := StreamDetailed(stream)

		So(detailed, ShouldContainSubstring, "12,345 viewers")
		So(detailed, ShouldContainSubstring, "2 hours ago")
	})
}

func TestRecordLines(t *testing.T) {
	Convey("A followed channel shows when it was followed", t, func() {
		channel := &twitch.FollowedChannel{
			BroadcasterName: "SomeStreamer",
			FollowedAt:      time.Now().Add(-24 * time.Hour),
		}

		line := FollowedChannel(channel)
		So(line, ShouldStartWith, "SomeStreamer")
		So(line, ShouldContainSubstring, "1 day ago")
	})

	Convey("A video shows duration and view count", t, func() {
		video := &twitch.Video{
			Title:     "speedrun attempts",
			Duration:  "3h8m33s",
			ViewCount: 1000,
			CreatedAt: time.Now().Add(-time.Hour),
		}

		line := Video(video)
		So(line, ShouldContainSubstring, "[3:08:33]")
		So(line, ShouldContainSubstring, "1,000 views")
	})

	Convey("A schedule segment shows its category and cancellation", t, func() {
		canceled := "2026-08-28T19:00:00Z"
		segment := &twitch.ScheduleSegment{
			StartTime:     time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC),
			Title:         "Community day",
			Category:      &twitch.GameReference{Name: "Just Chatting"},
			CanceledUntil: &canceled,
		}

		line := ScheduleSegment(segment)
		So(line, ShouldContainSubstring, "Community day")
		So(line, ShouldContainSubstring, "[Just Chatting]")
		So(line, ShouldEndWith, "(canceled)")
	})
}

func TestDuration(t *testing.T) {
	Convey("Helix durations convert to clock form", t, func() {
		So(Duration("3h8m33s"), ShouldEqual, "3:08:33")
		So(Duration("42m10s"), ShouldEqual, "42:10")
		So(Duration("33s"), ShouldEqual, "0:33")
		So(Duration("2h5s"), ShouldEqual, "2:00:05")
	})

	Convey("Anything else passes through unchanged", t, func() {
		So(Duration("live"), ShouldEqual, "live")
		So(Duration(""), ShouldEqual, "")
	})
}

func TestTruncate(t *testing.T) {
	Convey("Long lines are shortened to the terminal width", t, func() {
		So(Truncate("abcdefghij", 5), ShouldEqual, "abcd…")
		So(Truncate("short", 10), ShouldEqual, "short")
		So(Truncate("anything goes", 0), ShouldEqual, "anything goes")
	})
}
