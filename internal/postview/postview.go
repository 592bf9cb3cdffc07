// SPDX-License-Identifier: AGPL-3.0-only

// Package postview keeps the three regions of the post-detail page (follow
// button, reaction grid, comment list) consistent with server state. Each
// region refreshes from the server after a mutating action instead of
// trusting the local click.
package postview

import (
	"context"
	"fmt"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/helpers"
)

// Gateway is the slice of the API client the detail view needs.
type Gateway interface {
	ReadPost(ctx context.Context, token string, id int) *gateway.Result[gateway.Post]
	ToggleReaction(ctx context.Context, token string, postID int, symbol string) *gateway.Result[gateway.Reaction]
	GetReactions(ctx context.Context, token string, postID int) *gateway.Result[gateway.Post]
	CreateComment(ctx context.Context, token string, postID int, body string) *gateway.Result[gateway.Comment]
	ReadProfile(ctx context.Context, token, name string) *gateway.Result[gateway.Profile]
	Follow(ctx context.Context, token, name string) *gateway.Result[gateway.Profile]
	Unfollow(ctx context.Context, token, name string) *gateway.Result[gateway.Profile]
}

type Reconciler struct {
	gw Gateway
}

func NewReconciler(gw Gateway) *Reconciler {
	return &Reconciler{gw: gw}
}

// PostView is the static part of the detail page.
type PostView struct {
	ID         int
	Title      string
	Body       string
	Tags       []string
	Media      *gateway.Media
	AuthorName string
	Created    string
	IsOwn      bool
}

// View bundles the page with its three reconciled regions.
type View struct {
	Post     PostView
	Grid     ReactionGrid
	Comments CommentList
	Follow   FollowState
}

// Load fetches the post with all expansions and resolves the three region
// states. The follow region is only resolved for posts the viewer does not
// own; a failed profile read degrades to a hidden follow button rather
// than failing the page.
func (r *Reconciler) Load(ctx context.Context, token, currentUser string, postID int) (*View, error) {
	res := r.gw.ReadPost(ctx, token, postID)
	if !res.Ok() || res.Data == nil {
		if err := res.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("post not found")
	}

	post := *res.Data
	view := &View{
		Post:     buildPostView(post, currentUser),
		Grid:     BuildReactionGrid(post.Reactions, currentUser),
		Comments: BuildCommentList(post.Comments, currentUser),
	}

	if !view.Post.IsOwn && view.Post.AuthorName != "" {
		view.Follow = r.resolveFollow(ctx, token, currentUser, view.Post.AuthorName)
	}

	return view, nil
}

func buildPostView(post gateway.Post, currentUser string) PostView {
	view := PostView{
		ID:      post.ID,
		Title:   post.Title,
		Body:    post.Body,
		Tags:    post.Tags,
		Created: helpers.FormatDate(post.Created),
	}
	if post.Media != nil && post.Media.URL != "" {
		view.Media = post.Media
	}
	if post.Author != nil {
		view.AuthorName = post.Author.Name
		view.IsOwn = currentUser != "" && post.Author.Name == currentUser
	}
	return view
}
