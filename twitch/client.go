// Package twitch provides a thin client for the Twitch Helix REST API.
//
// The client issues exactly one authenticated GET per call and decodes the
// standard data/pagination envelope. It performs no parameter validation, no
// retries and no token refreshing; expired tokens surface as an ApiError with
// status 401 and pagination cursors are passed through untouched.
package twitch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/network"
)

// BaseURL is the production Helix endpoint root.
const BaseURL = "https://api.twitch.tv/helix"

// Client issues authenticated requests against the Helix API.
type Client struct {
	// BaseURL is the endpoint root; tests point it at a fake server.
	BaseURL string

	clientID string
	token    string
	http     *http.Client
}

// New constructs a Client bound to the given application identity and bearer token.
func New(clientID, token string) *Client {
	return &Client{
		BaseURL:  BaseURL,
		clientID: clientID,
		token:    token,
		http:     network.Client,
	}
}

// ApiError is a non-2xx response from the Twitch API. It mirrors the JSON
// error body Twitch sends: {"error": "Unauthorized", "status": 401, "message": "..."}.
type ApiError struct {
	Err     string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *ApiError) Error() string {
	name := e.Err
	if name == "" {
		name = http.StatusText(e.Status)
	}
	if e.Message == "" {
		return fmt.Sprintf("twitch api: %s (status %d)", name, e.Status)
	}
	return fmt.Sprintf("twitch api: %s (status %d): %s", name, e.Status, e.Message)
}

// Pagination carries the opaque cursor returned by Helix list endpoints.
type Pagination struct {
	Cursor string `json:"cursor"`
}

// Page is one page of records plus the pagination state of the listing.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Cursor returns the pagination cursor for the next request, empty when the
// listing is exhausted.
func (p *Page[T]) Cursor() string {
	return p.Pagination.Cursor
}

// do issues a single authenticated GET. Non-2xx responses are decoded into an
// *ApiError; the status code always comes from the response header, even when
// the error body is empty or disagrees.
func (c *Client) do(endpoint string, params url.Values) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Authorization", "Bearer "+c.token)

	log.Debugf("helix: GET %s", req.URL)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("helix request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		apiErr := &ApiError{}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		apiErr.Status = resp.StatusCode
		return nil, apiErr
	}

	return resp.Body, nil
}

// get issues one GET request and decodes the standard data/pagination envelope.
func get[T any](c *Client, endpoint string, params url.Values) (*Page[T], error) {
	body, err := c.do(endpoint, params)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var page Page[T]
	if err := json.NewDecoder(body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return &page, nil
}

// setPaging applies the shared pagination parameters. A non-positive first
// keeps the server default; the cursor is forwarded verbatim.
func setPaging(params url.Values, first int, after string) {
	if first > 0 {
		params.Set("first", strconv.Itoa(first))
	}
	if after != "" {
		params.Set("after", after)
	}
}
