package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/network"
	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

// idBaseURL is the Twitch identity service root, a package variable so tests
// can point it at a fake server.
var idBaseURL = "https://id.twitch.tv/oauth2"

// ScopeReadFollows lets the token list the channels its user follows.
const ScopeReadFollows = "user:read:follows"

// Token is the oauth2 token response from the identity service.
type Token struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	Scope        []string `json:"scope"`
	TokenType    string   `json:"token_type"`
}

// Validation describes the token introspection returned by /validate.
// App access tokens carry no login and no user id.
type Validation struct {
	ClientID  string   `json:"client_id"`
	Login     string   `json:"login"`
	Scopes    []string `json:"scopes"`
	UserID    string   `json:"user_id"`
	ExpiresIn int      `json:"expires_in"`
}

// ClientCredentials obtains an app access token. App tokens can call the
// public Helix endpoints but have no user attached.
func ClientCredentials(clientID, clientSecret string) (*Token, error) {
	log.Debug("requesting app access token via client-credentials grant")

	return postToken(url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {"client_credentials"},
	})
}

// Refresh exchanges a refresh token for a fresh token pair. Twitch rotates
// the refresh token on every use; callers must persist the returned one.
func Refresh(clientID, clientSecret, refreshToken string) (*Token, error) {
	log.Debug("refreshing access token")

	return postToken(url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	})
}

// Validate introspects an access token. Twitch requires clients to validate
// user tokens periodically; a 401 here means the token is no longer usable.
func Validate(token string) (*Validation, error) {
	req, err := http.NewRequest(http.MethodGet, idBaseURL+"/validate", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// The identity service wants the legacy OAuth scheme here, not Bearer.
	req.Header.Set("Authorization", "OAuth "+token)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	validation := &Validation{}
	if err := json.NewDecoder(resp.Body).Decode(validation); err != nil {
		return nil, fmt.Errorf("decode validation: %w", err)
	}
	return validation, nil
}

// postToken issues a form POST against the token endpoint and decodes the result.
func postToken(values url.Values) (*Token, error) {
	resp, err := network.Client.PostForm(idBaseURL+"/token", values)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	token := &Token{}
	if err := json.NewDecoder(resp.Body).Decode(token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return token, nil
}

// checkStatus converts a non-2xx identity service response into the same
// error type the Helix client produces; the bodies share one format.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &twitch.ApiError{}
	_ = json.NewDecoder(resp.Body).Decode(apiErr)
	apiErr.Status = resp.StatusCode
	return apiErr
}
