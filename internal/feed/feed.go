// SPDX-License-Identifier: AGPL-3.0-only

// Package feed turns paged post listings from the remote API into card
// view models. The reconciler owns the replace/append semantics and the
// last-page inference; rendering is left to the templates.
package feed

import (
	"context"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/helpers"
)

const (
	DefaultLimit   = 12
	excerptLength  = 150
	emptyFeedLabel = "No posts found"
)

// Gateway is the slice of the API client the feed needs.
type Gateway interface {
	ReadPosts(ctx context.Context, token string, p gateway.ListParams) *gateway.Result[[]gateway.Post]
	SearchPosts(ctx context.Context, token, query string, limit, page int) *gateway.Result[[]gateway.Post]
	ReadPostsByUser(ctx context.Context, token, name string, p gateway.ListParams) *gateway.Result[[]gateway.Post]
}

// Params selects one page of the feed. Query and Tag are mutually
// exclusive filter modes; a non-empty Query wins and the Tag is not
// forwarded to the search endpoint.
type Params struct {
	Limit   int
	Page    int
	Tag     string
	Query   string
	Profile string // non-empty: list this profile's posts instead
}

func (p Params) normalized() Params {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Card is the view model for one post in the feed.
type Card struct {
	ID         int
	Title      string
	Excerpt    string
	Tags       []string
	Media      *gateway.Media
	AuthorName string
	Created    string
	IsOwn      bool
}

// PageView is the outcome of fetching a single page.
type PageView struct {
	OK         bool
	Cards      []Card
	Meta       *gateway.Meta
	IsLastPage bool
	Error      string
}

// View is the accumulated feed handed to the presentation layer.
type View struct {
	Cards      []Card
	Empty      bool   // render the "no posts found" placeholder
	EmptyLabel string
	Error      string // inline error, initial load failed
	Toast      string // transient toast, append failed
	IsLastPage bool
	NextPage   int
	Params     Params
}

type Reconciler struct {
	gw Gateway
}

func NewReconciler(gw Gateway) *Reconciler {
	return &Reconciler{gw: gw}
}

// FetchPage retrieves one page of posts and builds its cards. Failures are
// folded into the PageView; this never panics or errors past the boundary.
func (r *Reconciler) FetchPage(ctx context.Context, token, currentUser string, p Params) *PageView {
	p = p.normalized()

	var res *gateway.Result[[]gateway.Post]
	switch {
	case p.Query != "":
		res = r.gw.SearchPosts(ctx, token, p.Query, p.Limit, p.Page)
	case p.Profile != "":
		res = r.gw.ReadPostsByUser(ctx, token, p.Profile, gateway.ListParams{Limit: p.Limit, Page: p.Page, Tag: p.Tag})
	default:
		res = r.gw.ReadPosts(ctx, token, gateway.ListParams{Limit: p.Limit, Page: p.Page, Tag: p.Tag})
	}

	if !res.Ok() || res.Data == nil {
		msg := "Failed to load posts"
		if err := res.Err(); err != nil {
			msg = err.Error()
		}
		return &PageView{Error: msg}
	}

	posts := *res.Data
	cards := make([]Card, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, buildCard(post, currentUser))
	}

	return &PageView{
		OK:    true,
		Cards: cards,
		Meta:  res.Meta,
		// Local inference: a short page is the last page. The server meta
		// is passed through but is not the source of truth here.
		IsLastPage: len(posts) < p.Limit,
	}
}

// Apply folds a fetched page into the view. Replace mode swaps the cards
// out wholesale; append mode inserts after the existing ones. On failure
// the existing cards survive in append mode, and the view degrades to an
// inline error on an initial load.
func Apply(view *View, page *PageView, appendMode bool) {
	if !page.OK {
		if appendMode {
			view.Toast = page.Error
		} else {
			view.Cards = nil
			view.Error = page.Error
		}
		return
	}

	view.Error = ""
	view.Toast = ""
	if appendMode {
		view.Cards = append(view.Cards, page.Cards...)
	} else {
		view.Cards = page.Cards
	}

	// The placeholder only appears when the container would otherwise be
	// empty, never on an append that lands on existing cards.
	view.Empty = len(view.Cards) == 0
	view.EmptyLabel = emptyFeedLabel
	view.IsLastPage = page.IsLastPage
	view.NextPage = view.Params.Page + 1
}

func buildCard(post gateway.Post, currentUser string) Card {
	card := Card{
		ID:      post.ID,
		Title:   post.Title,
		Excerpt: helpers.Excerpt(post.Body, excerptLength),
		Tags:    post.Tags,
		Created: helpers.FormatDate(post.Created),
	}
	if post.Media != nil && post.Media.URL != "" {
		card.Media = post.Media
	}
	if post.Author != nil {
		card.AuthorName = post.Author.Name
		card.IsOwn = currentUser != "" && post.Author.Name == currentUser
	}
	return card
}
