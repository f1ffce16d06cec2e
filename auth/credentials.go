package auth

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/util"
	"github.com/twitchy-cli/twitchy/where"
)

// Credential file keys, also honored as process environment variables.
const (
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
	EnvAccessToken  = "ACCESS_TOKEN"
	EnvRefreshToken = "REFRESH_TOKEN"
)

// Credentials is the client identity read once at startup. It lives in memory
// only; nothing ever writes it back to disk.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
}

// ConfigError reports missing or unusable credentials.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credentials %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("credentials %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadCredentials reads the credentials env file, with process environment
// variables of the same names filling any gaps. The file is optional, but a
// client id must come from somewhere.
func LoadCredentials() (*Credentials, error) {
	path := where.Credentials()
	fs := filesystem.API()

	values := make(map[string]string)

	exists, err := fs.Exists(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: "stat credentials file", Err: err}
	}

	if exists {
		if err := checkMode(path); err != nil {
			return nil, err
		}

		file, err := fs.Open(path)
		if err != nil {
			return nil, &ConfigError{Path: path, Reason: "open credentials file", Err: err}
		}
		defer util.Ignore(file.Close)

		values, err = godotenv.Parse(file)
		if err != nil {
			return nil, &ConfigError{Path: path, Reason: "parse credentials file", Err: err}
		}

		log.Debugf("credentials loaded from %s", path)
	}

	for _, name := range []string{EnvClientID, EnvClientSecret, EnvAccessToken, EnvRefreshToken} {
		if values[name] == "" {
			values[name] = os.Getenv(name)
		}
	}

	creds := &Credentials{
		ClientID:     values[EnvClientID],
		ClientSecret: values[EnvClientSecret],
		AccessToken:  values[EnvAccessToken],
		RefreshToken: values[EnvRefreshToken],
	}

	if creds.ClientID == "" {
		return nil, &ConfigError{Path: path, Reason: EnvClientID + " is required"}
	}

	return creds, nil
}

// checkMode rejects credential files readable by anyone but the owner.
// Windows has no POSIX permission bits, so the check is skipped there.
func checkMode(path string) error {
	if runtime.GOOS == constant.Windows {
		return nil
	}

	info, err := filesystem.API().Stat(path)
	if err != nil {
		return &ConfigError{Path: path, Reason: "stat credentials file", Err: err}
	}

	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		return &ConfigError{
			Path:   path,
			Reason: fmt.Sprintf("file mode %04o is readable by others, want 0600", perm),
		}
	}

	return nil
}
