package twitch

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// scheduleEnvelope is the non-standard wrapper of /schedule responses: the
// data field holds an object instead of the usual record array.
type scheduleEnvelope struct {
	Data       Schedule   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Schedule fetches a broadcaster's stream schedule along with the cursor for
// the next page of segments.
func (c *Client) Schedule(broadcasterID string, first int, after string) (*Schedule, string, error) {
	params := url.Values{}
	params.Set("broadcaster_id", broadcasterID)
	setPaging(params, first, after)

	body, err := c.do("/schedule", params)
	if err != nil {
		return nil, "", err
	}
	defer body.Close()

	var envelope scheduleEnvelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, "", fmt.Errorf("decode /schedule response: %w", err)
	}
	return &envelope.Data, envelope.Pagination.Cursor, nil
}
