// Package where resolves the filesystem paths the application keeps its
// state under.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TWITCHY_CONFIG_PATH"

// EnvCredentialsPath overrides the credentials file location.
const EnvCredentialsPath = "TWITCHY_CREDENTIALS_PATH"

// ensureDir creates the directory on first use so callers can treat every
// returned path as existing.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory, following the platform convention
// (XDG on Linux, Application Support on macOS, AppData on Windows) unless
// TWITCHY_CONFIG_PATH points somewhere else.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Twitchy))
}

// Cache is the directory for regenerable state: Helix lookup caches, the
// release check, remembered searches.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Twitchy))
}

// Logs is the directory the daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Credentials is the dotenv file holding the Twitch client id and secret.
// TWITCHY_CREDENTIALS_PATH points it at an alternative file.
func Credentials() string {
	if custom, ok := os.LookupEnv(EnvCredentialsPath); ok {
		return custom
	}
	return filepath.Join(Config(), "credentials.env")
}

// Player is the managed mpv profile directory (mpv.conf, input.conf).
func Player() string {
	return ensureDir(filepath.Join(Config(), "mpv"))
}

// History is the watch history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the remembered-searches file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp is a scratch directory for transient artifacts like IPC sockets.
// The startup sweep clears entries left behind by crashed sessions.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Twitchy))
}
