// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/feed"
	"github.com/nordsocial/socialweb/internal/session"
)

// HomeHandler renders the feed page. Search and tag filtering both reset
// to page 1 in replace mode; later pages arrive through the fragment
// endpoint and are appended client-side.
func (h *Handler) HomeHandler(c *gin.Context) {
	user, _ := session.Current(c)

	params := feedParams(c)
	view := &feed.View{Params: params}
	page := h.Feed.FetchPage(c.Request.Context(), user.AccessToken, user.Name, params)
	feed.Apply(view, page, false)

	status := http.StatusOK
	if view.Error != "" {
		status = http.StatusBadGateway
	}

	c.HTML(status, "index.html", h.CommonData(c, gin.H{
		"title": "Home",
		"feed":  view,
		"tag":   params.Tag,
		"query": params.Query,
	}))
}

// FeedFragmentHandler serves one additional page of cards for the
// load-more flow. Failures come back as plain text so the client can show
// a transient toast and leave the rendered cards alone.
func (h *Handler) FeedFragmentHandler(c *gin.Context) {
	user, _ := session.Current(c)

	params := feedParams(c)
	params.Profile = c.Query("profile")
	page := h.Feed.FetchPage(c.Request.Context(), user.AccessToken, user.Name, params)
	if !page.OK {
		c.String(http.StatusBadGateway, page.Error)
		return
	}

	c.Header("X-Is-Last-Page", strconv.FormatBool(page.IsLastPage))
	c.HTML(http.StatusOK, "post-cards.html", gin.H{
		"cards": page.Cards,
	})
}

func feedParams(c *gin.Context) feed.Params {
	pageNum, err := strconv.Atoi(c.Query("page"))
	if err != nil || pageNum < 1 {
		pageNum = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = feed.DefaultLimit
	}
	return feed.Params{
		Limit: limit,
		Page:  pageNum,
		Tag:   c.Query("tag"),
		Query: c.Query("q"),
	}
}
