// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/feed"
	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/postview"
	"github.com/nordsocial/socialweb/internal/session"
)

const profilePostsLimit = 6

func (h *Handler) OwnProfileHandler(c *gin.Context) {
	user, _ := session.Current(c)
	h.renderProfile(c, user.Name)
}

func (h *Handler) ProfileHandler(c *gin.Context) {
	h.renderProfile(c, c.Param("name"))
}

func (h *Handler) renderProfile(c *gin.Context, name string) {
	user, _ := session.Current(c)
	ctx := c.Request.Context()

	res := h.Gateway.ReadProfile(ctx, user.AccessToken, name)
	if !res.Ok() || res.Data == nil {
		c.HTML(http.StatusBadGateway, "error.html", h.CommonData(c, gin.H{
			"error": resultMessage(res.Err(), "Profile not found"), "title": "Error",
		}))
		return
	}
	profile := res.Data

	params := feed.Params{Limit: profilePostsLimit, Page: 1, Profile: name}
	view := &feed.View{Params: params}
	feed.Apply(view, h.Feed.FetchPage(ctx, user.AccessToken, user.Name, params), false)

	isOwn := name == user.Name
	follow := postview.FollowState{ProfileName: name}
	if !isOwn {
		follow.Available = true
		for _, follower := range profile.Followers {
			if follower.Name == user.Name {
				follow.Following = true
				break
			}
		}
	}

	followers, following := 0, 0
	if profile.Count != nil {
		followers = profile.Count.Followers
		following = profile.Count.Following
	}

	c.HTML(http.StatusOK, "profile.html", h.CommonData(c, gin.H{
		"title":           profile.Name,
		"profile":         profile,
		"followers_count": followers,
		"following_count": following,
		"is_own":          isOwn,
		"follow":          follow,
		"posts":           view,
	}))
}

func (h *Handler) ProfileEditViewHandler(c *gin.Context) {
	user, _ := session.Current(c)

	res := h.Gateway.ReadProfile(c.Request.Context(), user.AccessToken, user.Name)
	if !res.Ok() || res.Data == nil {
		c.HTML(http.StatusBadGateway, "error.html", h.CommonData(c, gin.H{
			"error": resultMessage(res.Err(), "Failed to load profile"), "title": "Error",
		}))
		return
	}

	c.HTML(http.StatusOK, "profile-edit.html", h.CommonData(c, gin.H{
		"title":   "Edit Profile",
		"profile": res.Data,
	}))
}

func (h *Handler) ProfileEditSubmitHandler(c *gin.Context) {
	user, _ := session.Current(c)

	req := gateway.ProfileRequest{Bio: c.PostForm("bio")}
	if avatar := c.PostForm("avatar_url"); avatar != "" {
		req.Avatar = &gateway.Media{URL: avatar, Alt: c.PostForm("avatar_alt")}
	}
	if banner := c.PostForm("banner_url"); banner != "" {
		req.Banner = &gateway.Media{URL: banner, Alt: c.PostForm("banner_alt")}
	}

	res := h.Gateway.UpdateProfile(c.Request.Context(), user.AccessToken, user.Name, req)
	if !res.Ok() || res.Data == nil {
		c.HTML(http.StatusOK, "profile-edit.html", h.CommonData(c, gin.H{
			"title": "Edit Profile",
			"error": resultMessage(res.Err(), "Failed to update profile"),
		}))
		return
	}

	// Profile edits merge into the session record; login and logout are
	// the only full replacements.
	if err := session.Merge(c, res.Data); err != nil {
		h.Logger.Error("failed to merge session", "error", err)
	}

	c.Redirect(http.StatusFound, "/profile")
}
