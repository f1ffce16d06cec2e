package twitch

import (
	"fmt"
	"net/url"
)

// UsersParams selects users by login and/or id. Helix accepts up to a hundred
// of each per request; the values are forwarded as given.
type UsersParams struct {
	Logins []string
	IDs    []string
}

func (p UsersParams) values() url.Values {
	params := url.Values{}
	for _, login := range p.Logins {
		params.Add("login", login)
	}
	for _, id := range p.IDs {
		params.Add("id", id)
	}
	return params
}

// Users fetches user records for the given logins and ids.
func (c *Client) Users(params UsersParams) (*Page[User], error) {
	return get[User](c, "/users", params.values())
}

// UserByLogin resolves a single login to a user record through the lookup
// cache, hitting the API only on a cache miss.
func (c *Client) UserByLogin(login string) (*User, error) {
	if cached := userCacher.Get(login); cached.IsPresent() {
		return cached.MustGet(), nil
	}

	page, err := c.Users(UsersParams{Logins: []string{login}})
	if err != nil {
		return nil, err
	}
	if len(page.Data) == 0 {
		return nil, fmt.Errorf("no such user: %s", login)
	}

	user := page.Data[0]
	_ = userCacher.Set(login, &user)
	return &user, nil
}

// UserByID resolves a single user id to a user record.
func (c *Client) UserByID(id string) (*User, error) {
	page, err := c.Users(UsersParams{IDs: []string{id}})
	if err != nil {
		return nil, err
	}
	if len(page.Data) == 0 {
		return nil, fmt.Errorf("no such user id: %s", id)
	}
	return &page.Data[0], nil
}
