package cache

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given a cache directory with fresh and stale files", t, func() {
		fs := filesystem.API()
		dir := where.Cache()

		fresh := filepath.Join(dir, "users.json")
		stale := filepath.Join(dir, "ancient.json")

		So(fs.WriteFile(fresh, []byte("{}"), 0644), ShouldBeNil)
		So(fs.WriteFile(stale, []byte("{}"), 0644), ShouldBeNil)

		past := time.Now().Add(-TTL - time.Hour)
		So(fs.Chtimes(stale, past, past), ShouldBeNil)

		So(fs.MkdirAll(filepath.Join(dir, "nested"), 0755), ShouldBeNil)

		Convey("CollectGarbage should remove only the stale file", func() {
			CollectGarbage()

			freshExists, err := fs.Exists(fresh)
			So(err, ShouldBeNil)
			So(freshExists, ShouldBeTrue)

			staleExists, err := fs.Exists(stale)
			So(err, ShouldBeNil)
			So(staleExists, ShouldBeFalse)

			nestedExists, err := fs.DirExists(filepath.Join(dir, "nested"))
			So(err, ShouldBeNil)
			So(nestedExists, ShouldBeTrue)
		})
	})
}

func TestTempSweep(t *testing.T) {
	Convey("Given leftover sockets in the temp directory", t, func() {
		fs := filesystem.API()
		dir := where.Temp()

		live := filepath.Join(dir, "mpv-1a2b.sock")
		dead := filepath.Join(dir, "mpv-dead.sock")

		So(fs.WriteFile(live, []byte{}, 0644), ShouldBeNil)
		So(fs.WriteFile(dead, []byte{}, 0644), ShouldBeNil)

		past := time.Now().Add(-25 * time.Hour)
		So(fs.Chtimes(dead, past, past), ShouldBeNil)

		Convey("Only the crashed session's socket goes", func() {
			CollectGarbage()

			liveExists, err := fs.Exists(live)
			So(err, ShouldBeNil)
			So(liveExists, ShouldBeTrue)

			deadExists, err := fs.Exists(dead)
			So(err, ShouldBeNil)
			So(deadExists, ShouldBeFalse)
		})
	})
}
