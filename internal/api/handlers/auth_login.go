// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/session"
)

func (h *Handler) LoginViewHandler(c *gin.Context) {
	if _, loggedIn := session.Current(c); loggedIn {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "login.html", h.CommonData(c, gin.H{
		"title":        "Login",
		"is_auth_page": true,
	}))
}

func (h *Handler) LoginSubmitHandler(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.HTML(http.StatusOK, "login.html", h.CommonData(c, gin.H{
			"error": "Email and password are required", "title": "Login", "is_auth_page": true,
		}))
		return
	}

	res := h.Gateway.Login(c.Request.Context(), gateway.LoginRequest{Email: email, Password: password})
	if !res.Ok() || res.Data == nil {
		msg := "Invalid credentials"
		if err := res.Err(); err != nil {
			msg = err.Error()
		}
		// No session record is written on a failed login.
		c.HTML(http.StatusUnauthorized, "login.html", h.CommonData(c, gin.H{
			"error": msg, "title": "Login", "is_auth_page": true,
		}))
		return
	}

	if err := session.Save(c, res.Data); err != nil {
		h.Logger.Error("failed to save session", slog.Any("error", err))
		c.HTML(http.StatusInternalServerError, "login.html", h.CommonData(c, gin.H{
			"error": "Failed to start session", "title": "Login", "is_auth_page": true,
		}))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) LogoutHandler(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		h.Logger.Error("failed to clear session", slog.Any("error", err))
	}
	c.Redirect(http.StatusFound, "/login")
}
