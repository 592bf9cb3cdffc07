// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/session"
)

func (h *Handler) RegisterViewHandler(c *gin.Context) {
	if _, loggedIn := session.Current(c); loggedIn {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "register.html", h.CommonData(c, gin.H{
		"title":        "Register",
		"is_auth_page": true,
	}))
}

func (h *Handler) RegisterSubmitHandler(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	renderError := func(msg string) {
		c.HTML(http.StatusOK, "register.html", h.CommonData(c, gin.H{
			"error": msg, "title": "Register", "is_auth_page": true,
			"name": name, "email": email,
			"bio": c.PostForm("bio"), "avatar": c.PostForm("avatar"), "banner": c.PostForm("banner"),
		}))
	}

	// Validation failures surface before any request goes out.
	if name == "" || email == "" || password == "" {
		renderError("Name, email and password are required")
		return
	}
	if password != confirm {
		renderError("Passwords do not match")
		return
	}

	req := gateway.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Bio:      c.PostForm("bio"),
	}
	if avatar := c.PostForm("avatar"); avatar != "" {
		req.Avatar = &gateway.Media{URL: avatar}
	}
	if banner := c.PostForm("banner"); banner != "" {
		req.Banner = &gateway.Media{URL: banner}
	}

	res := h.Gateway.Register(c.Request.Context(), req)
	if !res.Ok() || res.Data == nil {
		msg := "Registration failed"
		if err := res.Err(); err != nil {
			msg = err.Error()
		}
		renderError(msg)
		return
	}

	c.HTML(http.StatusOK, "login.html", h.CommonData(c, gin.H{
		"notice": "Account created, you can now log in", "title": "Login", "is_auth_page": true,
	}))
}
