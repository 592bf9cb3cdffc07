// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import (
	"context"
	"fmt"
	"net/url"
)

// ToggleReaction PUTs a reaction for the given symbol. The server treats
// the call as add-if-absent / remove-if-present for the {user, post,
// symbol} triple, so the same call both adds and removes.
func (c *Client) ToggleReaction(ctx context.Context, token string, postID int, symbol string) *Result[Reaction] {
	if token == "" {
		return authRequired[Reaction]()
	}
	return do[Reaction](ctx, c, "PUT",
		fmt.Sprintf("/social/posts/%d/react/%s", postID, url.PathEscape(symbol)), token, nil)
}

// GetReactions fetches the authoritative grouped-reaction snapshot for a
// post. Callers rebuild their full reaction state from this, never from
// the toggle response alone.
func (c *Client) GetReactions(ctx context.Context, token string, postID int) *Result[Post] {
	q := url.Values{}
	q.Set("_reactions", "true")
	return do[Post](ctx, c, "GET", fmt.Sprintf("/social/posts/%d?%s", postID, q.Encode()), token, nil)
}
