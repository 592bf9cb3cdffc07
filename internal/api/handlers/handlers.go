// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/config"
	"github.com/nordsocial/socialweb/internal/feed"
	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/postview"
	"github.com/nordsocial/socialweb/internal/session"
)

type Handler struct {
	Gateway  *gateway.Client
	Feed     *feed.Reconciler
	PostView *postview.Reconciler
	Config   *config.AppConfig
	Logger   *slog.Logger
}

func NewHandler(gw *gateway.Client, cfg *config.AppConfig, logger *slog.Logger) *Handler {
	return &Handler{
		Gateway:  gw,
		Feed:     feed.NewReconciler(gw),
		PostView: postview.NewReconciler(gw),
		Config:   cfg,
		Logger:   logger,
	}
}

// CommonData merges the per-page template data with the fields every page
// shares (app version, current user block).
func (h *Handler) CommonData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["app_version"] = config.AppVersion
	if user, loggedIn := session.Current(c); loggedIn {
		data["logged_in"] = true
		data["username"] = user.Name
		data["avatar_url"] = user.Avatar.URL
	}
	return data
}
