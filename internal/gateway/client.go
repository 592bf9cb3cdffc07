// SPDX-License-Identifier: AGPL-3.0-only

// Package gateway wraps the remote social API, one function per operation.
// Every call resolves to a Result envelope; transport failures are caught
// at this boundary and never propagate as Go errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	httpClient http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// envelope is the wire shape shared by success and error responses.
type envelope[T any] struct {
	Data       *T         `json:"data"`
	Meta       *Meta      `json:"meta"`
	Errors     []APIError `json:"errors"`
	StatusCode int        `json:"statusCode"`
}

// do issues one request and maps the response into a Result. body is JSON
// encoded when non-nil; token is attached as a bearer header when non-empty.
func do[T any](ctx context.Context, c *Client, method, path string, token string, body any) *Result[T] {

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return transportFailure[T](fmt.Sprintf("failed to encode request: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportFailure[T](fmt.Sprintf("failed to build request: %v", err))
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure[T](fmt.Sprintf("request failed: %v", err))
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return transportFailure[T](fmt.Sprintf("failed to read response: %v", err))
	}

	// Successful deletes come back as 204 with no body.
	if resp.StatusCode == http.StatusNoContent {
		return &Result[T]{StatusCode: http.StatusNoContent}
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return transportFailure[T](fmt.Sprintf("failed to decode response: %v", err))
	}

	status := env.StatusCode
	if status == 0 {
		status = resp.StatusCode
	}

	return &Result[T]{
		Data:       env.Data,
		Meta:       env.Meta,
		Errors:     env.Errors,
		StatusCode: status,
	}
}
