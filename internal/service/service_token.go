// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs and verifies HMAC JWTs with a single process-wide key.
// All state is read-only after construction.
type tokenService struct {
	method          jwt.SigningMethod
	signKey         config.Secret
	issuer          string
	defaultValidity time.Duration
	leeway          time.Duration

	logger *logger.Logger
}

// NewTokenService builds a TokenService from the token settings of cfg.
// Only HMAC algorithms are accepted.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	method, ok := jwt.GetSigningMethod(cfg.TokenSigningAlgorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", ErrInvalidTokenConfig, cfg.TokenSigningAlgorithm)
	}
	if cfg.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: empty sign key", ErrInvalidTokenConfig)
	}
	if cfg.TokenDuration <= 0 {
		return nil, fmt.Errorf("%w: token duration must be positive", ErrInvalidTokenConfig)
	}

	return &tokenService{
		method:          method,
		signKey:         cfg.TokenSignKey,
		issuer:          cfg.TokenIssuer,
		defaultValidity: cfg.TokenDuration,
		leeway:          cfg.TokenLeeway,
		logger:          logger,
	}, nil
}

func (s *tokenService) Issue(ctx context.Context, subject string, validity time.Duration) (models.Token, error) {
	if subject == "" {
		return models.Token{}, ErrInvalidDataProvided
	}
	if validity == 0 {
		validity = s.defaultValidity
	}

	token, err := utils.GenerateJWTToken(s.issuer, subject, validity, s.method, s.signKey.Bytes())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Validate(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, utils.JWTValidation{
		Method:  s.method,
		SignKey: s.signKey.Bytes(),
		Issuer:  s.issuer,
		Leeway:  s.leeway,
	})
	switch {
	case errors.Is(err, utils.ErrEmptySubject):
		return "", ErrMissingSubject
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token.Subject, nil
}
