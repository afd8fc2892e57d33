// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/google/uuid"
)

// dummyPassword is hashed once at construction. Login verifies against that
// hash when the email is unknown so both failure paths cost one bcrypt
// comparison.
const dummyPassword = "go-identity-timing-equaliser"

// authService is the concrete implementation of AuthService.
// It composes the credential hasher, the token service and the user
// repository. All state is read-only after construction, so the service is
// safe for concurrent use.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies presented ones.
	hasher crypto.PasswordHasher

	// tokens issues tokens on register/login and validates them on identify.
	tokens TokenService

	ids       *utils.UUIDGenerator
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository,
// hasher and token service.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing auth service: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		ids:            utils.NewUUIDGenerator(),
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register creates a new identity and returns a token for it.
//
// The email is normalised (trimmed, lower-cased) before use. The token is
// issued before the identity is written, so a token failure leaves no
// identity behind.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrDuplicateEmail if the email is taken (also when a concurrent
//     registration wins the insert).
//   - A wrapped error for hashing, token or storage failures.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Info().Object("credentials", credentials).Msg("invalid registration data provided")
		return models.AccessToken{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("registration rejected: email already registered")
		return models.AccessToken{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user search by email failed")
		return models.AccessToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AccessToken{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	token, err := a.tokens.Issue(ctx, user.ID.String(), 0)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		return models.AccessToken{}, err
	}

	if _, err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", email).Msg("registration rejected: email registered concurrently")
			return models.AccessToken{}, ErrDuplicateEmail
		}
		log.Err(err).Msg("user creation ended with error")
		return models.AccessToken{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return models.NewAccessToken(token), nil
}

// Login verifies credentials and returns a fresh token.
//
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Info().Object("credentials", credentials).Msg("invalid login data provided")
		return models.AccessToken{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		a.hasher.Verify(credentials.Password, a.dummyHash)
		log.Info().Str("reason", "unknown email").Msg("login rejected")
		return models.AccessToken{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.AccessToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Str("reason", "wrong password").Str("user_id", user.ID.String()).Msg("login rejected")
		return models.AccessToken{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(ctx, user.ID.String(), 0)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		return models.AccessToken{}, err
	}

	return models.NewAccessToken(token), nil
}

// Identify resolves a bearer token to the identity it was issued for.
//
// Token errors (ErrInvalidToken, ErrMissingSubject) are returned as they are.
// A subject that is not an identity id, or names no stored identity, yields
// ErrUnknownSubject.
func (a *authService) Identify(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	subject, err := a.tokens.Validate(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		log.Info().Msg("token subject is not an identity id")
		return models.User{}, ErrUnknownSubject
	}

	user, err := a.userRepository.FindUserByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUnknownSubject
	case err != nil:
		log.Err(err).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
