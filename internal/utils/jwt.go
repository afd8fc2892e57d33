// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken for an empty
	// subject, sign key, signing method or a zero duration.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrEmptySubject is returned by ValidateAndParseJWTToken when the token
	// is authentic and unexpired but carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")
)

// JWTValidation describes what ValidateAndParseJWTToken accepts.
type JWTValidation struct {
	// Method is the only signing method accepted. Tokens announcing any other
	// "alg" (including "none") are rejected before the key is looked at.
	Method jwt.SigningMethod

	// SignKey is the HMAC secret.
	SignKey []byte

	// Issuer, when non-empty, must equal the "iss" claim.
	Issuer string

	// Leeway is the clock skew tolerated on "exp".
	Leeway time.Duration
}

// GenerateJWTToken creates a signed JWT with the given parameters.
//
// The token includes the following standard claims:
//   - Subject   (sub): the identity the token is issued for
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - IssuedAt  (iat): the current time
//   - Issuer    (iss): identifies the issuing service, omitted when empty
//
// A negative tokenDuration is accepted and yields an already expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", userID, time.Hour, jwt.SigningMethodHS256, key)
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, method jwt.SigningMethod, signKey []byte) (models.Token, error) {
	if subject == "" || tokenDuration == 0 || method == nil || len(signKey) == 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(method, token.RegisteredClaims).SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}
	token.SignedString = signed

	return token, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - "alg" must equal v.Method (no algorithm substitution, no "none")
//   - signature verification with v.SignKey (constant-time HMAC comparison)
//   - strict base64url decoding, so altered padding bits are not ignored
//   - "exp" must be present and not passed (with v.Leeway)
//   - "iss" must equal v.Issuer when v.Issuer is set
//
// Any of those failures is returned as a wrapped jwt error. A token that
// passes them but has an empty "sub" yields [ErrEmptySubject].
func ValidateAndParseJWTToken(tokenString string, v JWTValidation) (models.Token, error) {
	if v.Method == nil || len(v.SignKey) == 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.Method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithLeeway(v.Leeway),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	var token models.Token
	_, err := jwt.ParseWithClaims(tokenString, &token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.SignKey, nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if token.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	token.SignedString = tokenString
	return token, nil
}
