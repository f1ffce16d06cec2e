package twitch

import (
	"fmt"
	"net/url"
)

// GamesParams selects games/categories by exact name and/or id.
type GamesParams struct {
	Names []string
	IDs   []string
}

func (p GamesParams) values() url.Values {
	params := url.Values{}
	for _, name := range p.Names {
		params.Add("name", name)
	}
	for _, id := range p.IDs {
		params.Add("id", id)
	}
	return params
}

// Games fetches game records by exact name or id.
func (c *Client) Games(params GamesParams) (*Page[Game], error) {
	return get[Game](c, "/games", params.values())
}

// TopGames lists games by current viewership, most watched first.
func (c *Client) TopGames(first int, after string) (*Page[Game], error) {
	params := url.Values{}
	setPaging(params, first, after)
	return get[Game](c, "/games/top", params)
}

// GameByName resolves a single exact game name through the lookup cache.
// Helix matches names case-insensitively but otherwise verbatim.
func (c *Client) GameByName(name string) (*Game, error) {
	if cached := gameCacher.Get(name); cached.IsPresent() {
		return cached.MustGet(), nil
	}

	page, err := c.Games(GamesParams{Names: []string{name}})
	if err != nil {
		return nil, err
	}
	if len(page.Data) == 0 {
		return nil, fmt.Errorf("no such game: %s", name)
	}

	game := page.Data[0]
	_ = gameCacher.Set(name, &game)
	return &game, nil
}
