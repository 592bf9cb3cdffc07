// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/session"
)

func (h *Handler) PostCreateViewHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "post-form.html", h.CommonData(c, gin.H{
		"title":  "New Post",
		"action": "/post/create",
	}))
}

func (h *Handler) PostCreateSubmitHandler(c *gin.Context) {
	req, err := postFormRequest(c)
	if err != nil {
		c.HTML(http.StatusOK, "post-form.html", h.CommonData(c, gin.H{
			"title": "New Post", "action": "/post/create",
			"error": err.Error(), "form": req,
		}))
		return
	}

	user, _ := session.Current(c)
	res := h.Gateway.CreatePost(c.Request.Context(), user.AccessToken, req)
	if !res.Ok() || res.Data == nil {
		c.HTML(http.StatusOK, "post-form.html", h.CommonData(c, gin.H{
			"title": "New Post", "action": "/post/create",
			"error": resultMessage(res.Err(), "Failed to create post"), "form": req,
		}))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", res.Data.ID))
}

func (h *Handler) PostEditViewHandler(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", h.CommonData(c, gin.H{
			"error": "Invalid post id", "title": "Error",
		}))
		return
	}

	user, _ := session.Current(c)
	res := h.Gateway.ReadPost(c.Request.Context(), user.AccessToken, postID)
	if !res.Ok() || res.Data == nil {
		c.HTML(http.StatusBadGateway, "error.html", h.CommonData(c, gin.H{
			"error": resultMessage(res.Err(), "Post not found"), "title": "Error",
		}))
		return
	}

	post := res.Data
	// Editing is only offered on own posts.
	if post.Author == nil || post.Author.Name != user.Name {
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
		return
	}

	form := gateway.PostRequest{
		Title: post.Title,
		Body:  post.Body,
		Tags:  post.Tags,
		Media: post.Media,
	}

	c.HTML(http.StatusOK, "post-form.html", h.CommonData(c, gin.H{
		"title":  "Edit Post",
		"action": fmt.Sprintf("/post/edit/%d", postID),
		"form":   form,
		"tags":   strings.Join(post.Tags, ", "),
	}))
}

func (h *Handler) PostEditSubmitHandler(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", h.CommonData(c, gin.H{
			"error": "Invalid post id", "title": "Error",
		}))
		return
	}

	action := fmt.Sprintf("/post/edit/%d", postID)
	req, err := postFormRequest(c)
	if err != nil {
		c.HTML(http.StatusOK, "post-form.html", h.CommonData(c, gin.H{
			"title": "Edit Post", "action": action,
			"error": err.Error(), "form": req,
		}))
		return
	}

	user, _ := session.Current(c)
	res := h.Gateway.UpdatePost(c.Request.Context(), user.AccessToken, postID, req)
	if !res.Ok() || res.Data == nil {
		c.HTML(http.StatusOK, "post-form.html", h.CommonData(c, gin.H{
			"title": "Edit Post", "action": action,
			"error": resultMessage(res.Err(), "Failed to update post"), "form": req,
		}))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
}

// postFormRequest reads and validates the shared create/edit form. Title
// and body are required before any request is issued.
func postFormRequest(c *gin.Context) (gateway.PostRequest, error) {
	req := gateway.PostRequest{
		Title: strings.TrimSpace(c.PostForm("title")),
		Body:  strings.TrimSpace(c.PostForm("body")),
		Tags:  splitTags(c.PostForm("tags")),
	}
	if mediaURL := strings.TrimSpace(c.PostForm("media_url")); mediaURL != "" {
		req.Media = &gateway.Media{
			URL: mediaURL,
			Alt: strings.TrimSpace(c.PostForm("media_alt")),
		}
	}

	if req.Title == "" {
		return req, fmt.Errorf("title is required")
	}
	if req.Body == "" {
		return req, fmt.Errorf("body is required")
	}
	return req, nil
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func resultMessage(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
