// SPDX-License-Identifier: AGPL-3.0-only
package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordsocial/socialweb/internal/gateway"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewClient(srv.URL, 2*time.Second)
}

func TestLoginSuccess(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"name":"olav","email":"olav@example.com","accessToken":"tok-123"}}`))
	})

	res := client.Login(context.Background(), gateway.LoginRequest{Email: "olav@example.com", Password: "hunter22"})
	require.True(t, res.Ok())
	require.NotNil(t, res.Data)
	assert.Equal(t, "olav", res.Data.Name)
	assert.Equal(t, "tok-123", res.Data.AccessToken)
	assert.NoError(t, res.Err())
}

func TestLoginInvalidCredentials(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"Invalid email or password"}],"statusCode":401}`))
	})

	res := client.Login(context.Background(), gateway.LoginRequest{Email: "x@example.com", Password: "wrong"})
	assert.False(t, res.Ok())
	assert.Equal(t, 401, res.StatusCode)
	assert.Nil(t, res.Data)
	assert.EqualError(t, res.Err(), "Invalid email or password")
}

func TestAuthRequiredShortCircuits(t *testing.T) {
	requests := 0
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	res := client.CreatePost(context.Background(), "", gateway.PostRequest{Title: "t", Body: "b"})
	assert.False(t, res.Ok())
	assert.Equal(t, 401, res.StatusCode)
	assert.EqualError(t, res.Err(), "Authentication required")
	assert.Zero(t, requests, "no request should be issued without a token")
}

func TestTransportFailureMapsTo500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := gateway.NewClient(srv.URL, time.Second)
	srv.Close()

	res := client.ReadPosts(context.Background(), "tok", gateway.ListParams{Limit: 12, Page: 1})
	assert.False(t, res.Ok())
	assert.Equal(t, 500, res.StatusCode)
	require.NotEmpty(t, res.Errors)
	assert.Nil(t, res.Data)
}

func TestDeleteNoContent(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/social/posts/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	res := client.DeletePost(context.Background(), "tok", 42)
	assert.True(t, res.Ok())
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Nil(t, res.Data)
	assert.Empty(t, res.Errors)
}

func TestReadPostsQueryParams(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/social/posts", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "12", q.Get("limit"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "travel", q.Get("_tag"))
		assert.Equal(t, "true", q.Get("_author"))
		w.Write([]byte(`{"data":[],"meta":{"isLastPage":true}}`))
	})

	res := client.ReadPosts(context.Background(), "tok-abc", gateway.ListParams{Limit: 12, Page: 2, Tag: "travel"})
	require.True(t, res.Ok())
	require.NotNil(t, res.Meta)
	assert.True(t, res.Meta.IsLastPage)
}

func TestSearchOmitsTagFilter(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/social/posts/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "mountains", q.Get("q"))
		assert.Empty(t, q.Get("_tag"))
		w.Write([]byte(`{"data":[]}`))
	})

	res := client.SearchPosts(context.Background(), "tok", "mountains", 12, 1)
	assert.True(t, res.Ok())
}

func TestToggleReactionPath(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/social/posts/7/react/👍", r.URL.Path)
		w.Write([]byte(`{"data":{"symbol":"👍","count":3,"reactors":["olav"]}}`))
	})

	res := client.ToggleReaction(context.Background(), "tok", 7, "👍")
	require.True(t, res.Ok())
	require.NotNil(t, res.Data)
	assert.Equal(t, 3, res.Data.Count)
	assert.Contains(t, res.Data.Reactors, "olav")
}

func TestReadPostExpansions(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("_author"))
		assert.Equal(t, "true", q.Get("_comments"))
		assert.Equal(t, "true", q.Get("_reactions"))
		w.Write([]byte(`{"data":{"id":7,"title":"Hello","body":"World",
			"comments":[{"id":1,"body":"hi","owner":"kari","created":"2025-06-01T10:00:00Z"}],
			"reactions":[{"symbol":"👍","count":1,"reactors":["kari"]}]}}`))
	})

	res := client.ReadPost(context.Background(), "tok", 7)
	require.True(t, res.Ok())
	require.NotNil(t, res.Data)
	assert.Len(t, res.Data.Comments, 1)
	assert.Len(t, res.Data.Reactions, 1)
	assert.Equal(t, "kari", res.Data.Comments[0].Owner)
}
