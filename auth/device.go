package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/network"
	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

// DeviceAuthorization is a pending device-code grant: the user enters
// UserCode at VerificationURI while the client polls for the token.
type DeviceAuthorization struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURI string `json:"verification_uri"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
}

// RequestDeviceCode starts the device-code grant for the given client and
// scopes. Public clients need no secret for this flow.
func RequestDeviceCode(clientID string, scopes []string) (*DeviceAuthorization, error) {
	resp, err := network.Client.PostForm(idBaseURL+"/device", url.Values{
		"client_id": {clientID},
		"scopes":    {strings.Join(scopes, " ")},
	})
	if err != nil {
		return nil, fmt.Errorf("device code request: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	authz := &DeviceAuthorization{}
	if err := json.NewDecoder(resp.Body).Decode(authz); err != nil {
		return nil, fmt.Errorf("decode device authorization: %w", err)
	}
	return authz, nil
}

// PollDeviceToken polls the token endpoint at the server-mandated interval
// until the user approves the code, the code expires, or the grant fails.
func PollDeviceToken(clientID string, authz *DeviceAuthorization) (*Token, error) {
	interval := time.Duration(authz.Interval) * time.Second
	deadline := time.Now().Add(time.Duration(authz.ExpiresIn) * time.Second)

	for {
		if time.Now().After(deadline) {
			return nil, errors.New("device code expired before it was approved")
		}

		token, err := postToken(url.Values{
			"client_id":   {clientID},
			"device_code": {authz.DeviceCode},
			"grant_type":  {"urn:ietf:params:oauth:grant-type:device_code"},
		})
		if err == nil {
			return token, nil
		}

		var apiErr *twitch.ApiError
		if !errors.As(err, &apiErr) {
			return nil, err
		}

		switch apiErr.Message {
		case "authorization_pending":
			log.Debug("device grant pending approval")
		case "slow_down":
			interval += 5 * time.Second
			log.Debugf("device grant polling slowed down to %s", interval)
		default:
			return nil, err
		}

		time.Sleep(interval)
	}
}
