// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import "context"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
	Avatar   *Media `json:"avatar,omitempty"`
	Banner   *Media `json:"banner,omitempty"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) *Result[Session] {
	return do[Session](ctx, c, "POST", "/auth/login", "", req)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) *Result[Session] {
	return do[Session](ctx, c, "POST", "/auth/register", "", req)
}

// CreateAPIKey issues a named API key for the authenticated user.
func (c *Client) CreateAPIKey(ctx context.Context, token, name string) *Result[APIKey] {
	if token == "" {
		return authRequired[APIKey]()
	}
	if name == "" {
		name = "default"
	}
	return do[APIKey](ctx, c, "POST", "/auth/create-api-key", token, map[string]string{"name": name})
}
