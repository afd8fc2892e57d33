// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity/models"
)

// TokenService issues and validates signed access tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after validity. A zero
	// validity selects the configured default; a negative one yields an
	// already expired token.
	Issue(ctx context.Context, subject string, validity time.Duration) (models.Token, error)

	// Validate returns the subject of an authentic, unexpired token, or
	// ErrInvalidToken / ErrMissingSubject.
	Validate(ctx context.Context, token string) (string, error)
}

// AuthService implements registration, login and identity resolution.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)
	Identify(ctx context.Context, token string) (models.User, error)
}

type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
