// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateEmail is returned by Register when the email is already
	// bound to an identity.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidTokenConfig  = errors.New("invalid token service configuration")

	// ErrInvalidToken covers every token that is not authentic and current:
	// malformed, truncated, unsigned, mis-signed, wrong algorithm, expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject is returned for an authentic token without "sub".
	ErrMissingSubject = errors.New("token has no subject")

	// ErrUnknownSubject is returned when a valid token names an identity
	// that does not exist.
	ErrUnknownSubject = errors.New("token subject is unknown")
)
