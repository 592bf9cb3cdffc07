// SPDX-License-Identifier: AGPL-3.0-only
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/session"
)

// AuthGuard redirects anonymous visitors to the login page. Presence of a
// token in the session record is the whole check; a stale token is only
// discovered when the remote API answers 401.
func AuthGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		if _, loggedIn := session.Current(c); !loggedIn {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isPublicRoute(path string) bool {
	publicPrefixes := []string{
		"/login",
		"/register",
		"/static",
		"/health",
	}

	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
