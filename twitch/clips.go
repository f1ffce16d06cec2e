package twitch

import "net/url"

// ClipsParams selects clips by broadcaster, game or explicit ids, passed
// through without validation.
type ClipsParams struct {
	BroadcasterID string
	GameID        string
	IDs           []string
	First         int
	After         string
}

func (p ClipsParams) values() url.Values {
	params := url.Values{}
	if p.BroadcasterID != "" {
		params.Set("broadcaster_id", p.BroadcasterID)
	}
	if p.GameID != "" {
		params.Set("game_id", p.GameID)
	}
	for _, id := range p.IDs {
		params.Add("id", id)
	}
	setPaging(params, p.First, p.After)
	return params
}

// Clips lists clips matching the selector, most viewed first.
func (c *Client) Clips(params ClipsParams) (*Page[Clip], error) {
	return get[Clip](c, "/clips", params.values())
}
