// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the command-line client.
//
// The primary abstraction is [ServerAdapter], which hides the REST API of the
// identity server behind three calls. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the identity server.
type ServerAdapter interface {
	// Register creates an identity and returns its first access token.
	Register(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// Login exchanges credentials for a new access token.
	Login(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// Me returns the identity the bearer token belongs to.
	Me(ctx context.Context, token string) (models.UserProfile, error)
}
