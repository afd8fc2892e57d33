// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the scheme of the
	// "Authorization" header is not "Bearer".
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Client-facing messages. They are fixed strings so no internal error text
// reaches a response body.
const (
	detailEmailAlreadyRegistered = "Email already registered"
	detailInvalidCredentials     = "Invalid credentials"
	detailInvalidToken           = "Invalid token"
	detailNotAuthenticated       = "Not authenticated"
	detailInvalidJSON            = "Invalid JSON was passed"
	detailInvalidData            = "Invalid data provided"
	detailNotFound               = "Not Found"
	detailInternal               = "Internal Server Error"
)
