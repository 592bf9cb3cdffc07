// SPDX-License-Identifier: AGPL-3.0-only
package feed_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordsocial/socialweb/internal/feed"
	"github.com/nordsocial/socialweb/internal/gateway"
)

type fakeGateway struct {
	pages      map[int][]gateway.Post
	fail       bool
	searched   bool
	byUser     bool
	lastQuery  string
	lastParams gateway.ListParams
}

func (f *fakeGateway) result(page int) *gateway.Result[[]gateway.Post] {
	if f.fail {
		return &gateway.Result[[]gateway.Post]{
			StatusCode: 500,
			Errors:     []gateway.APIError{{Message: "Network request failed"}},
		}
	}
	posts := f.pages[page]
	return &gateway.Result[[]gateway.Post]{Data: &posts, StatusCode: 200}
}

func (f *fakeGateway) ReadPosts(ctx context.Context, token string, p gateway.ListParams) *gateway.Result[[]gateway.Post] {
	f.lastParams = p
	return f.result(p.Page)
}

func (f *fakeGateway) SearchPosts(ctx context.Context, token, query string, limit, page int) *gateway.Result[[]gateway.Post] {
	f.searched = true
	f.lastQuery = query
	return f.result(page)
}

func (f *fakeGateway) ReadPostsByUser(ctx context.Context, token, name string, p gateway.ListParams) *gateway.Result[[]gateway.Post] {
	f.byUser = true
	return f.result(p.Page)
}

func makePosts(start, n int) []gateway.Post {
	posts := make([]gateway.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, gateway.Post{
			ID:      start + i,
			Title:   fmt.Sprintf("Post %d", start+i),
			Body:    "body",
			Created: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			Author:  &gateway.Author{Name: "kari"},
		})
	}
	return posts
}

func TestFetchPageFullPageIsNotLast(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: makePosts(1, 12)}}
	r := feed.NewReconciler(gw)

	page := r.FetchPage(context.Background(), "tok", "olav", feed.Params{Limit: 12, Page: 1})
	require.True(t, page.OK)
	assert.Len(t, page.Cards, 12)
	assert.False(t, page.IsLastPage)
}

func TestFetchPageShortPageIsLast(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: makePosts(1, 5)}}
	r := feed.NewReconciler(gw)

	page := r.FetchPage(context.Background(), "tok", "olav", feed.Params{Limit: 12, Page: 1})
	require.True(t, page.OK)
	assert.True(t, page.IsLastPage)
}

func TestAppendAccumulatesCards(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{
		1: makePosts(1, 12),
		2: makePosts(13, 5),
	}}
	r := feed.NewReconciler(gw)
	view := &feed.View{Params: feed.Params{Limit: 12, Page: 1}}

	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), false)
	require.Len(t, view.Cards, 12)
	assert.False(t, view.IsLastPage)
	assert.Equal(t, 2, view.NextPage)

	view.Params.Page = 2
	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), true)
	assert.Len(t, view.Cards, 17)
	assert.True(t, view.IsLastPage)
	assert.Equal(t, "Post 1", view.Cards[0].Title)
	assert.Equal(t, "Post 17", view.Cards[16].Title)
}

func TestEmptyPlaceholderOnlyWhenNoCards(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: {}}}
	r := feed.NewReconciler(gw)
	view := &feed.View{Params: feed.Params{Limit: 12, Page: 1}}

	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), false)
	assert.True(t, view.Empty)
	assert.Equal(t, "No posts found", view.EmptyLabel)
}

func TestEmptyAppendOnExistingCardsKeepsThem(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: makePosts(1, 3), 2: {}}}
	r := feed.NewReconciler(gw)
	view := &feed.View{Params: feed.Params{Limit: 3, Page: 1}}

	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), false)
	view.Params.Page = 2
	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), true)

	assert.Len(t, view.Cards, 3)
	assert.False(t, view.Empty, "placeholder never appears over existing cards")
}

func TestInitialFailureIsInlineError(t *testing.T) {
	gw := &fakeGateway{fail: true}
	r := feed.NewReconciler(gw)
	view := &feed.View{Params: feed.Params{Limit: 12, Page: 1}}

	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), false)
	assert.Nil(t, view.Cards)
	assert.Equal(t, "Network request failed", view.Error)
	assert.Empty(t, view.Toast)
}

func TestAppendFailureKeepsCardsAndToasts(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: makePosts(1, 12)}}
	r := feed.NewReconciler(gw)
	view := &feed.View{Params: feed.Params{Limit: 12, Page: 1}}
	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), false)

	gw.fail = true
	view.Params.Page = 2
	feed.Apply(view, r.FetchPage(context.Background(), "tok", "olav", view.Params), true)

	assert.Len(t, view.Cards, 12)
	assert.Equal(t, "Network request failed", view.Toast)
	assert.Empty(t, view.Error)
}

func TestQueryDispatchesToSearch(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: {}}}
	r := feed.NewReconciler(gw)

	r.FetchPage(context.Background(), "tok", "olav", feed.Params{Query: "mountains", Tag: "travel"})
	assert.True(t, gw.searched, "a query routes to the search endpoint even with a tag set")
	assert.Equal(t, "mountains", gw.lastQuery)
}

func TestProfileDispatchesToUserPosts(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: {}}}
	r := feed.NewReconciler(gw)

	r.FetchPage(context.Background(), "tok", "olav", feed.Params{Profile: "kari"})
	assert.True(t, gw.byUser)
}

func TestCardOwnership(t *testing.T) {
	gw := &fakeGateway{pages: map[int][]gateway.Post{1: makePosts(1, 1)}}
	r := feed.NewReconciler(gw)

	page := r.FetchPage(context.Background(), "tok", "kari", feed.Params{Limit: 12, Page: 1})
	require.True(t, page.OK)
	require.Len(t, page.Cards, 1)
	assert.True(t, page.Cards[0].IsOwn)
	assert.Equal(t, "kari", page.Cards[0].AuthorName)
	assert.Equal(t, "Jun 1, 2025", page.Cards[0].Created)
}
