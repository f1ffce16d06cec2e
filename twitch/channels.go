package twitch

import "net/url"

// FollowedChannels lists the channels the given user follows, most recently
// followed first. The endpoint requires a user access token carrying the
// user:read:follows scope; with an app token it answers 401.
func (c *Client) FollowedChannels(userID string, first int, after string) (*Page[FollowedChannel], error) {
	params := url.Values{}
	params.Set("user_id", userID)
	setPaging(params, first, after)
	return get[FollowedChannel](c, "/channels/followed", params)
}
