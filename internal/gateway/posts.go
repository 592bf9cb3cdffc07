// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListParams controls list-style post reads. Tag and Query are optional;
// when Query is set the caller should use SearchPosts, which ignores Tag.
type ListParams struct {
	Limit int
	Page  int
	Tag   string
}

func listQuery(p ListParams) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("_author", "true")
	if p.Tag != "" {
		q.Set("_tag", p.Tag)
	}
	return q
}

// ReadPost fetches a single post with author, comments and reactions
// expanded, which is everything the detail view needs in one round trip.
func (c *Client) ReadPost(ctx context.Context, token string, id int) *Result[Post] {
	q := url.Values{}
	q.Set("_author", "true")
	q.Set("_comments", "true")
	q.Set("_reactions", "true")
	return do[Post](ctx, c, "GET", fmt.Sprintf("/social/posts/%d?%s", id, q.Encode()), token, nil)
}

func (c *Client) ReadPosts(ctx context.Context, token string, p ListParams) *Result[[]Post] {
	return do[[]Post](ctx, c, "GET", "/social/posts?"+listQuery(p).Encode(), token, nil)
}

// SearchPosts queries the search endpoint. The tag filter is deliberately
// not forwarded: search and tag filtering are mutually exclusive modes,
// with search taking precedence.
func (c *Client) SearchPosts(ctx context.Context, token, query string, limit, page int) *Result[[]Post] {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	q.Set("_author", "true")
	return do[[]Post](ctx, c, "GET", "/social/posts/search?"+q.Encode(), token, nil)
}

// ReadPostsByUser lists posts authored by the named profile.
func (c *Client) ReadPostsByUser(ctx context.Context, token, name string, p ListParams) *Result[[]Post] {
	return do[[]Post](ctx, c, "GET",
		fmt.Sprintf("/social/profiles/%s/posts?%s", url.PathEscape(name), listQuery(p).Encode()), token, nil)
}

type PostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
	Media *Media   `json:"media,omitempty"`
}

func (c *Client) CreatePost(ctx context.Context, token string, req PostRequest) *Result[Post] {
	if token == "" {
		return authRequired[Post]()
	}
	return do[Post](ctx, c, "POST", "/social/posts", token, req)
}

func (c *Client) UpdatePost(ctx context.Context, token string, id int, req PostRequest) *Result[Post] {
	if token == "" {
		return authRequired[Post]()
	}
	return do[Post](ctx, c, "PUT", fmt.Sprintf("/social/posts/%d", id), token, req)
}

// DeletePost removes a post. Success is a 204 envelope with no data.
func (c *Client) DeletePost(ctx context.Context, token string, id int) *Result[Post] {
	if token == "" {
		return authRequired[Post]()
	}
	return do[Post](ctx, c, "DELETE", fmt.Sprintf("/social/posts/%d", id), token, nil)
}
