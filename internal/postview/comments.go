// SPDX-License-Identifier: AGPL-3.0-only
package postview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/helpers"
)

// CommentView is the view model for one comment.
type CommentView struct {
	AuthorName string
	Initial    string
	AvatarURL  string
	Body       string
	Created    string
	IsYou      bool
}

// CommentList is the comment region. Count is the list length, maintained
// locally; it is never re-verified against the server-side _count.
type CommentList struct {
	Comments []CommentView
	Count    int
	Empty    bool
}

// BuildCommentList converts fetched comments, newest first. The API does
// not guarantee ordering, so the sort happens here on every render from
// fetched data.
func BuildCommentList(comments []gateway.Comment, currentUser string) CommentList {
	sorted := make([]gateway.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created.After(sorted[j].Created)
	})

	views := make([]CommentView, 0, len(sorted))
	for _, c := range sorted {
		views = append(views, buildCommentView(c, currentUser))
	}

	return CommentList{
		Comments: views,
		Count:    len(views),
		Empty:    len(views) == 0,
	}
}

// LocalAuthor is the identity attached to a locally synthesized comment.
type LocalAuthor struct {
	Name      string
	AvatarURL string
}

// PrependLocal inserts a just-submitted comment at the head of the list
// without a re-fetch. The insert bypasses the sort, which is only correct
// because the new comment is always the newest. The author metadata comes
// from the session, not the server, so the two can diverge until the next
// full fetch.
func (l *CommentList) PrependLocal(body string, author LocalAuthor, created time.Time) {
	view := CommentView{
		AuthorName: author.Name,
		Initial:    helpers.Initial(author.Name),
		AvatarURL:  author.AvatarURL,
		Body:       body,
		Created:    helpers.FormatDateTime(created),
		IsYou:      true,
	}
	l.Comments = append([]CommentView{view}, l.Comments...)
	l.Count++
	l.Empty = false
}

// SubmitComment validates and creates a comment, then returns the body for
// the local prepend. Validation failures never reach the network.
func (r *Reconciler) SubmitComment(ctx context.Context, token string, postID int, body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", fmt.Errorf("comment cannot be empty")
	}

	res := r.gw.CreateComment(ctx, token, postID, body)
	if !res.Ok() {
		return "", res.Err()
	}
	return body, nil
}

func buildCommentView(c gateway.Comment, currentUser string) CommentView {
	// The API reports the comment author as either an expanded author
	// object or a bare owner name.
	name := c.Owner
	avatarURL := ""
	if c.Author != nil {
		if c.Author.Name != "" {
			name = c.Author.Name
		}
		if c.Author.Avatar != nil {
			avatarURL = c.Author.Avatar.URL
		}
	}

	created := "Just now"
	if !c.Created.IsZero() {
		created = helpers.FormatDateTime(c.Created)
	}

	return CommentView{
		AuthorName: name,
		Initial:    helpers.Initial(name),
		AvatarURL:  avatarURL,
		Body:       c.Body,
		Created:    created,
		IsYou:      currentUser != "" && name == currentUser,
	}
}
