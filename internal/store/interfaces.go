// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
	"github.com/google/uuid"
)

// UserRepository persists identities.
type UserRepository interface {
	// CreateUser inserts user. A user with the same email yields
	// [ErrEmailAlreadyExists]; nothing is written in that case.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this (normalised) email
	// or [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with this id or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// ErrorClassificator inspects driver errors of one SQL backend.
type ErrorClassificator interface {
	// Classify reports whether the operation that produced err may succeed
	// when attempted again.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
