// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) CreateComment(ctx context.Context, token string, postID int, body string) *Result[Comment] {
	if token == "" {
		return authRequired[Comment]()
	}
	return do[Comment](ctx, c, "POST", fmt.Sprintf("/social/posts/%d/comment", postID), token,
		map[string]string{"body": body})
}

// GetComments re-reads the post with the comment expansion. The API has no
// standalone comment listing; comments ride on the post resource.
func (c *Client) GetComments(ctx context.Context, token string, postID int) *Result[Post] {
	q := url.Values{}
	q.Set("_comments", "true")
	q.Set("_author", "true")
	return do[Post](ctx, c, "GET", fmt.Sprintf("/social/posts/%d?%s", postID, q.Encode()), token, nil)
}
