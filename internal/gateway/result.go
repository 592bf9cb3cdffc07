// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import "fmt"

// APIError is a single error entry as reported by the remote API.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Result is the uniform envelope every gateway call resolves to. A call
// never fails with a Go error: transport failures, missing authentication
// and API-reported errors all land in the same shape, so callers branch on
// Ok() instead of wrapping every call site in error plumbing.
type Result[T any] struct {
	Data       *T
	Meta       *Meta
	Errors     []APIError
	StatusCode int
}

func (r *Result[T]) Ok() bool {
	return len(r.Errors) == 0 && r.StatusCode < 400
}

// Err returns the first API-reported error, or nil when the call succeeded.
func (r *Result[T]) Err() error {
	if r.Ok() {
		return nil
	}
	if len(r.Errors) > 0 {
		return fmt.Errorf("%s", r.Errors[0].Message)
	}
	return fmt.Errorf("request failed with status %d", r.StatusCode)
}

func transportFailure[T any](msg string) *Result[T] {
	return &Result[T]{
		Errors:     []APIError{{Message: msg}},
		StatusCode: 500,
	}
}

func authRequired[T any]() *Result[T] {
	return &Result[T]{
		Errors:     []APIError{{Message: "Authentication required"}},
		StatusCode: 401,
	}
}
