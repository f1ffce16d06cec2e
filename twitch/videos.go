package twitch

import "net/url"

// VideosParams selects videos by id, user or game. Helix treats the three
// selectors as mutually exclusive but the client does not second-guess that;
// whatever is set goes on the wire.
type VideosParams struct {
	IDs    []string
	UserID string
	GameID string
	Type   string
	First  int
	After  string
}

func (p VideosParams) values() url.Values {
	params := url.Values{}
	for _, id := range p.IDs {
		params.Add("id", id)
	}
	if p.UserID != "" {
		params.Set("user_id", p.UserID)
	}
	if p.GameID != "" {
		params.Set("game_id", p.GameID)
	}
	if p.Type != "" {
		params.Set("type", p.Type)
	}
	setPaging(params, p.First, p.After)
	return params
}

// Videos lists videos matching the selector, newest first.
func (c *Client) Videos(params VideosParams) (*Page[Video], error) {
	return get[Video](c, "/videos", params.values())
}
