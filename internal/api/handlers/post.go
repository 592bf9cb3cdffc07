// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/postview"
	"github.com/nordsocial/socialweb/internal/session"
)

func (h *Handler) PostViewHandler(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", h.CommonData(c, gin.H{
			"error": "Invalid post id", "title": "Error",
		}))
		return
	}

	user, _ := session.Current(c)
	view, err := h.PostView.Load(c.Request.Context(), user.AccessToken, user.Name, postID)
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", h.CommonData(c, gin.H{
			"error": err.Error(), "title": "Error",
		}))
		return
	}

	c.HTML(http.StatusOK, "post.html", h.CommonData(c, gin.H{
		"title": view.Post.Title,
		"view":  view,
	}))
}

// ReactHandler toggles one symbol and answers with the full reaction grid
// rebuilt from the post-toggle snapshot. The client swaps the whole grid
// region, so every button reflects the authoritative state, not just the
// clicked one.
func (h *Handler) ReactHandler(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid post id")
		return
	}
	symbol := c.Param("symbol")

	user, _ := session.Current(c)
	grid, err := h.PostView.ToggleReaction(c.Request.Context(), user.AccessToken, user.Name, postID, symbol)
	if err != nil {
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	c.HTML(http.StatusOK, "reaction-grid.html", gin.H{
		"grid":    grid,
		"post_id": postID,
	})
}

// CommentHandler creates a comment and answers with a single rendered
// comment element synthesized from the session identity. No re-fetch: the
// client prepends the element and bumps its count, which is only correct
// because a fresh comment is always the newest.
func (h *Handler) CommentHandler(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid post id")
		return
	}

	user, _ := session.Current(c)
	body, err := h.PostView.SubmitComment(c.Request.Context(), user.AccessToken, postID, c.PostForm("commentBody"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	var list postview.CommentList
	list.PrependLocal(body, postview.LocalAuthor{
		Name:      user.Name,
		AvatarURL: user.Avatar.URL,
	}, time.Now())

	c.HTML(http.StatusOK, "comment.html", gin.H{
		"comment": list.Comments[0],
	})
}

// FollowHandler toggles follow state for a profile based on the cached
// boolean posted with the form, and answers with the follow-button
// fragment. On failure the state is unchanged and carries an inline
// notice.
func (h *Handler) FollowHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.String(http.StatusBadRequest, "profile name required")
		return
	}

	state := postview.FollowState{
		ProfileName: name,
		Available:   true,
		Following:   c.PostForm("following") == "true",
	}

	user, _ := session.Current(c)
	state = h.PostView.ToggleFollow(c.Request.Context(), user.AccessToken, state)

	c.HTML(http.StatusOK, "follow-button.html", state)
}

func (h *Handler) DeletePostHandler(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", h.CommonData(c, gin.H{
			"error": "Invalid post id", "title": "Error",
		}))
		return
	}

	user, _ := session.Current(c)
	res := h.Gateway.DeletePost(c.Request.Context(), user.AccessToken, postID)
	if res.StatusCode != http.StatusNoContent && !res.Ok() {
		c.HTML(http.StatusBadGateway, "error.html", h.CommonData(c, gin.H{
			"error": res.Err().Error(), "title": "Error",
		}))
		return
	}

	c.Redirect(http.StatusFound, "/")
}
