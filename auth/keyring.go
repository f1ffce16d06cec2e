// Package auth manages the Twitch client identity: the credentials env file,
// the oauth2 grants against id.twitch.tv and token persistence in the system
// keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service     = "twitchy"
	accessUser  = "access-token"
	refreshUser = "refresh-token"
)

// SetAccessToken persists the OAuth access token to the system keyring.
func SetAccessToken(token string) error {
	return keyring.Set(service, accessUser, token)
}

// StoredAccessToken retrieves the OAuth access token from the system keyring.
func StoredAccessToken() (string, error) {
	return keyring.Get(service, accessUser)
}

// SetRefreshToken persists the OAuth refresh token to the system keyring.
func SetRefreshToken(token string) error {
	return keyring.Set(service, refreshUser, token)
}

// StoredRefreshToken retrieves the OAuth refresh token from the system keyring.
func StoredRefreshToken() (string, error) {
	return keyring.Get(service, refreshUser)
}

// DeleteTokens removes every stored token from the system keyring. A token
// that was never stored is not an error.
func DeleteTokens() error {
	for _, user := range []string{accessUser, refreshUser} {
		if err := keyring.Delete(service, user); err != nil && err != keyring.ErrNotFound {
			return err
		}
	}
	return nil
}
