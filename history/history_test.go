package history

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/twitch"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a playback session for a stream", t, func() {
		stream := &twitch.Stream{
			UserLogin: "somestreamer",
			UserName:  "SomeStreamer",
			GameName:  "Just Chatting",
			Title:     "cooking stream",
		}

		record := NewSavedWatch(stream, "best")

		Convey("It gets its own session id", func() {
			So(record.SessionID, ShouldNotBeEmpty)
			So(NewSavedWatch(stream, "best").SessionID, ShouldNotEqual, record.SessionID)
		})

		Convey("Saving makes it retrievable by login", func() {
			record.WatchedSeconds = 120
			So(Save(record), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved["somestreamer"].Title, ShouldEqual, "cooking stream")
			So(saved["somestreamer"].WatchedSeconds, ShouldEqual, 120)

			Convey("A re-save from the same session never shrinks the watched time", func() {
				record.WatchedSeconds = 60
				So(Save(record), ShouldBeNil)

				saved, _ := Get()
				So(saved["somestreamer"].WatchedSeconds, ShouldEqual, 120)
			})

			Convey("A new session replaces the record outright", func() {
				fresh := NewSavedWatch(stream, "720p")
				fresh.WatchedSeconds = 5
				So(Save(fresh), ShouldBeNil)

				saved, _ := Get()
				So(saved["somestreamer"].WatchedSeconds, ShouldEqual, 5)
				So(saved["somestreamer"].Quality, ShouldEqual, "720p")
			})

			Convey("Remove deletes it", func() {
				So(Remove(record), ShouldBeNil)

				saved, _ := Get()
				_, exists := saved["somestreamer"]
				So(exists, ShouldBeFalse)
			})
		})

		Convey("Last picks the most recently saved record", func() {
			record.SavedAt = time.Now().Add(-time.Hour)
			So(Save(record), ShouldBeNil)

			other := NewSavedWatch(&twitch.Stream{
				UserLogin: "another",
				UserName:  "Another",
			}, "best")
			other.SavedAt = time.Now().Add(time.Hour)
			So(Save(other), ShouldBeNil)

			last, ok, err := Last()
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(last.Login, ShouldEqual, "another")
		})
	})
}

func TestSavedWatchString(t *testing.T) {
	Convey("The record renders its channel, game and watch time", t, func() {
		record := &SavedWatch{
			DisplayName:    "SomeStreamer",
			Game:           "Just Chatting",
			WatchedSeconds: 3725,
			SavedAt:        time.Now().Add(-2 * time.Hour),
		}

		line := record.String()
		So(line, ShouldStartWith, "SomeStreamer - [Just Chatting]")
		So(line, ShouldContainSubstring, "1h2m5s")
		So(line, ShouldContainSubstring, "2 hours ago")
	})
}
