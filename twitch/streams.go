package twitch

import "net/url"

// StreamsParams filters the live stream listing. All filters combine; leave a
// field empty to skip it. Helix caps each list filter at a hundred values and
// enforces that itself.
type StreamsParams struct {
	UserLogins []string
	UserIDs    []string
	GameIDs    []string
	Type       string
	Language   string
	First      int
	After      string
}

func (p StreamsParams) values() url.Values {
	params := url.Values{}
	for _, login := range p.UserLogins {
		params.Add("user_login", login)
	}
	for _, id := range p.UserIDs {
		params.Add("user_id", id)
	}
	for _, id := range p.GameIDs {
		params.Add("game_id", id)
	}
	if p.Type != "" {
		params.Set("type", p.Type)
	}
	if p.Language != "" {
		params.Set("language", p.Language)
	}
	setPaging(params, p.First, p.After)
	return params
}

// Streams lists live streams matching the filters, most-watched first.
// Channels that are offline simply do not appear in the result.
func (c *Client) Streams(params StreamsParams) (*Page[Stream], error) {
	return get[Stream](c, "/streams", params.values())
}
