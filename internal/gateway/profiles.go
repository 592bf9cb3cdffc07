// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ReadProfile fetches a profile with follower/following lists expanded.
func (c *Client) ReadProfile(ctx context.Context, token, name string) *Result[Profile] {
	q := url.Values{}
	q.Set("_followers", "true")
	q.Set("_following", "true")
	return do[Profile](ctx, c, "GET",
		fmt.Sprintf("/social/profiles/%s?%s", url.PathEscape(name), q.Encode()), token, nil)
}

func (c *Client) ReadProfiles(ctx context.Context, token string, limit, page int) *Result[[]Profile] {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	return do[[]Profile](ctx, c, "GET", "/social/profiles?"+q.Encode(), token, nil)
}

type ProfileRequest struct {
	Bio    string `json:"bio,omitempty"`
	Avatar *Media `json:"avatar,omitempty"`
	Banner *Media `json:"banner,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token, name string, req ProfileRequest) *Result[Profile] {
	if token == "" {
		return authRequired[Profile]()
	}
	return do[Profile](ctx, c, "PUT",
		fmt.Sprintf("/social/profiles/%s", url.PathEscape(name)), token, req)
}

func (c *Client) Follow(ctx context.Context, token, name string) *Result[Profile] {
	if token == "" {
		return authRequired[Profile]()
	}
	return do[Profile](ctx, c, "PUT",
		fmt.Sprintf("/social/profiles/%s/follow", url.PathEscape(name)), token, nil)
}

func (c *Client) Unfollow(ctx context.Context, token, name string) *Result[Profile] {
	if token == "" {
		return authRequired[Profile]()
	}
	return do[Profile](ctx, c, "PUT",
		fmt.Sprintf("/social/profiles/%s/unfollow", url.PathEscape(name)), token, nil)
}
