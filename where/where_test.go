package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/filesystem"
)

func init() {
	// keep test runs off the real disk
	filesystem.SetMemMapFs()
}

func TestDirs(t *testing.T) {
	dirs := map[string]func() string{
		"Config": Config,
		"Cache":  Cache,
		"Logs":   Logs,
		"Player": Player,
		"Temp":   Temp,
	}

	Convey("Every directory helper yields an existing directory", t, func() {
		for name, dir := range dirs {
			Convey(name, func() {
				path := dir()

				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})
}

func TestFiles(t *testing.T) {
	Convey("History lives inside the config directory", t, func() {
		So(History(), ShouldEqual, filepath.Join(Config(), "history.json"))
	})

	Convey("Queries lives inside the cache directory", t, func() {
		So(Queries(), ShouldEqual, filepath.Join(Cache(), "queries.json"))
	})
}

func TestCredentials(t *testing.T) {
	Convey("Credentials lives inside the config directory", t, func() {
		So(Credentials(), ShouldEqual, filepath.Join(Config(), "credentials.env"))
	})

	Convey("The override variable wins when set", t, func() {
		t.Setenv(EnvCredentialsPath, "/tmp/custom.env")

		So(Credentials(), ShouldEqual, "/tmp/custom.env")
	})
}
