package auth

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func writeCredentials(t *testing.T, contents string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.env")
	t.Setenv(where.EnvCredentialsPath, path)

	if err := filesystem.API().WriteFile(path, []byte(contents), perm); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCredentials(t *testing.T) {
	Convey("Given a well-formed credentials file", t, func() {
		writeCredentials(t, "CLIENT_ID=abc123\nCLIENT_SECRET=shh\nACCESS_TOKEN=tok\n", 0o600)

		Convey("Every field is populated", func() {
			creds, err := LoadCredentials()

			So(err, ShouldBeNil)
			So(creds.ClientID, ShouldEqual, "abc123")
			So(creds.ClientSecret, ShouldEqual, "shh")
			So(creds.AccessToken, ShouldEqual, "tok")
			So(creds.RefreshToken, ShouldBeEmpty)
		})
	})

	Convey("Given a file missing the client id", t, func() {
		path := writeCredentials(t, "CLIENT_SECRET=shh\n", 0o600)

		Convey("Loading fails with a ConfigError naming the file", func() {
			_, err := LoadCredentials()

			var confErr *ConfigError
			So(errors.As(err, &confErr), ShouldBeTrue)
			So(confErr.Path, ShouldEqual, path)
			So(confErr.Reason, ShouldContainSubstring, EnvClientID)
		})
	})

	Convey("Given no file at all", t, func() {
		t.Setenv(where.EnvCredentialsPath, filepath.Join(t.TempDir(), "missing.env"))

		Convey("The process environment can stand in for it", func() {
			t.Setenv(EnvClientID, "env-client")
			t.Setenv(EnvAccessToken, "env-token")

			creds, err := LoadCredentials()

			So(err, ShouldBeNil)
			So(creds.ClientID, ShouldEqual, "env-client")
			So(creds.AccessToken, ShouldEqual, "env-token")
		})

		Convey("Without environment variables either, loading fails", func() {
			t.Setenv(EnvClientID, "")

			_, err := LoadCredentials()

			var confErr *ConfigError
			So(errors.As(err, &confErr), ShouldBeTrue)
		})
	})

	Convey("Given a file the environment partially overlays", t, func() {
		writeCredentials(t, "CLIENT_ID=from-file\n", 0o600)
		t.Setenv(EnvClientSecret, "from-env")

		Convey("File values win, environment fills the gaps", func() {
			creds, err := LoadCredentials()

			So(err, ShouldBeNil)
			So(creds.ClientID, ShouldEqual, "from-file")
			So(creds.ClientSecret, ShouldEqual, "from-env")
		})
	})

	if runtime.GOOS != constant.Windows {
		Convey("Given a credentials file readable by the group", t, func() {
			writeCredentials(t, "CLIENT_ID=abc123\n", 0o640)

			Convey("Loading refuses it outright", func() {
				_, err := LoadCredentials()

				var confErr *ConfigError
				So(errors.As(err, &confErr), ShouldBeTrue)
				So(confErr.Reason, ShouldContainSubstring, "0600")
			})
		})
	}
}
