// SPDX-License-Identifier: AGPL-3.0-only
package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/session"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	return r
}

// roundTrip issues a request carrying the cookies from previous responses.
func roundTrip(t *testing.T, r *gin.Engine, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveThenCurrent(t *testing.T) {
	r := newRouter()
	r.POST("/login", func(c *gin.Context) {
		err := session.Save(c, &gateway.Session{
			Name:        "olav",
			Email:       "olav@example.com",
			Bio:         "hiker",
			Avatar:      &gateway.Media{URL: "https://img/avatar.png", Alt: "me"},
			AccessToken: "tok-123",
		})
		require.NoError(t, err)
	})
	r.GET("/whoami", func(c *gin.Context) {
		user, ok := session.Current(c)
		require.True(t, ok)
		assert.Equal(t, "olav", user.Name)
		assert.Equal(t, "hiker", user.Bio)
		assert.Equal(t, "https://img/avatar.png", user.Avatar.URL)
		assert.Equal(t, "tok-123", user.AccessToken)
		assert.Equal(t, "tok-123", session.Token(c))
		c.Status(http.StatusOK)
	})

	login := roundTrip(t, r, http.MethodPost, "/login", nil)
	res := roundTrip(t, r, http.MethodGet, "/whoami", login.Result().Cookies())
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestCurrentWithoutTokenIsAbsent(t *testing.T) {
	r := newRouter()
	r.GET("/whoami", func(c *gin.Context) {
		_, ok := session.Current(c)
		assert.False(t, ok)
		assert.Empty(t, session.Token(c))
		c.Status(http.StatusOK)
	})

	roundTrip(t, r, http.MethodGet, "/whoami", nil)
}

func TestMergeKeepsTokenAndEmptyFields(t *testing.T) {
	r := newRouter()
	r.POST("/login", func(c *gin.Context) {
		require.NoError(t, session.Save(c, &gateway.Session{
			Name:        "olav",
			Email:       "olav@example.com",
			Bio:         "hiker",
			AccessToken: "tok-123",
		}))
	})
	r.POST("/edit", func(c *gin.Context) {
		// The update sets an avatar but leaves bio empty; the empty field
		// must not clobber the stored one.
		require.NoError(t, session.Merge(c, &gateway.Profile{
			Name:   "olav",
			Avatar: &gateway.Media{URL: "https://img/new.png"},
		}))
	})
	r.GET("/whoami", func(c *gin.Context) {
		user, ok := session.Current(c)
		require.True(t, ok)
		assert.Equal(t, "hiker", user.Bio)
		assert.Equal(t, "https://img/new.png", user.Avatar.URL)
		assert.Equal(t, "tok-123", user.AccessToken)
		c.Status(http.StatusOK)
	})

	login := roundTrip(t, r, http.MethodPost, "/login", nil)
	edit := roundTrip(t, r, http.MethodPost, "/edit", login.Result().Cookies())
	cookies := edit.Result().Cookies()
	if len(cookies) == 0 {
		cookies = login.Result().Cookies()
	}
	roundTrip(t, r, http.MethodGet, "/whoami", cookies)
}

func TestClearDestroysRecord(t *testing.T) {
	r := newRouter()
	r.POST("/login", func(c *gin.Context) {
		require.NoError(t, session.Save(c, &gateway.Session{Name: "olav", AccessToken: "tok-123"}))
	})
	r.POST("/logout", func(c *gin.Context) {
		require.NoError(t, session.Clear(c))
	})
	r.GET("/whoami", func(c *gin.Context) {
		_, ok := session.Current(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	login := roundTrip(t, r, http.MethodPost, "/login", nil)
	logout := roundTrip(t, r, http.MethodPost, "/logout", login.Result().Cookies())
	roundTrip(t, r, http.MethodGet, "/whoami", logout.Result().Cookies())
}
