package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/twitchy-cli/twitchy/log"
)

// ErrNoToken signals that a source has nothing to offer and the chain should
// try the next one. Any other error aborts resolution.
var ErrNoToken = errors.New("no token available")

// TokenSource produces a bearer token for Helix requests.
//
// Authentication is deliberately pluggable: the credentials file, the system
// keyring and the client-credentials grant all implement this interface, and
// Sources decides the order in which they are consulted.
type TokenSource interface {
	// Name identifies the source in log output.
	Name() string

	// Token returns a usable bearer token, ErrNoToken when the source is
	// not applicable, or a real error when it should have worked.
	Token() (string, error)
}

// StaticSource serves the ACCESS_TOKEN pinned in the credentials file or the
// process environment.
type StaticSource struct {
	Credentials *Credentials
}

func (s *StaticSource) Name() string {
	return "credentials file"
}

func (s *StaticSource) Token() (string, error) {
	if s.Credentials.AccessToken == "" {
		return "", fmt.Errorf("%w: %s not set", ErrNoToken, EnvAccessToken)
	}
	return s.Credentials.AccessToken, nil
}

// KeyringSource serves the token stored by "twitchy auth login".
type KeyringSource struct{}

func (KeyringSource) Name() string {
	return "system keyring"
}

func (KeyringSource) Token() (string, error) {
	token, err := StoredAccessToken()
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%w: nothing stored in the keyring", ErrNoToken)
	}
	if err != nil {
		return "", fmt.Errorf("read keyring: %w", err)
	}
	return token, nil
}

// AppTokenSource obtains an app access token through the client-credentials
// grant and keeps it for the lifetime of the process.
type AppTokenSource struct {
	Credentials *Credentials

	token  string
	expiry time.Time
}

func (s *AppTokenSource) Name() string {
	return "client-credentials grant"
}

func (s *AppTokenSource) Token() (string, error) {
	if s.token != "" && time.Now().Before(s.expiry) {
		return s.token, nil
	}

	if s.Credentials.ClientSecret == "" {
		return "", fmt.Errorf("%w: %s not set", ErrNoToken, EnvClientSecret)
	}

	token, err := ClientCredentials(s.Credentials.ClientID, s.Credentials.ClientSecret)
	if err != nil {
		return "", err
	}

	s.token = token.AccessToken
	s.expiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return s.token, nil
}

// Sources is the resolution chain: an explicit token wins, then whatever a
// previous login stored, then an app token minted on the fly.
func Sources(creds *Credentials) []TokenSource {
	return []TokenSource{
		&StaticSource{Credentials: creds},
		KeyringSource{},
		&AppTokenSource{Credentials: creds},
	}
}

// ResolveToken walks the source chain and returns the first token produced.
// Sources that are not applicable are skipped; a source that fails outright
// aborts the walk so the cause is not hidden behind a generic message.
func ResolveToken(creds *Credentials) (string, error) {
	for _, source := range Sources(creds) {
		token, err := source.Token()
		if errors.Is(err, ErrNoToken) {
			log.Debugf("token source %s: %v", source.Name(), err)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", source.Name(), err)
		}

		log.Infof("using token from %s", source.Name())
		return token, nil
	}

	return "", errors.New(`no usable access token found, run "twitchy auth login"`)
}
