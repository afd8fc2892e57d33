// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it via [service.AuthService.Identify], and on success stores the
// identity in the request context under [utils.UserCtxKey] before delegating
// to the next handler.
//
// Every rejection is a 401 with a WWW-Authenticate challenge. The client
// cannot tell the failure kinds apart; the log can, through the "auth_error"
// field.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Str("auth_error", "missing_header").Msg("request rejected")
			writeDetail(w, http.StatusUnauthorized, detailNotAuthenticated)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Str("auth_error", "malformed_header").Msg("request rejected")
			writeDetail(w, http.StatusUnauthorized, detailNotAuthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Identify(ctx, tokenString)
		if err != nil {
			kind := authErrorKind(err)
			if kind == "" {
				log.Err(err).Msg("error occurred during identity resolution")
			} else {
				log.Info().Err(err).Str("auth_error", kind).Msg("request rejected")
			}
			writeError(w, err)
			return
		}

		// Store the identity in the context so that downstream handlers can
		// retrieve it without resolving the token again.
		ctx = utils.WithUser(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authErrorKind names the token failure for the log, or returns "" for
// errors that are not authentication failures.
func authErrorKind(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingSubject):
		return "missing_subject"
	case errors.Is(err, service.ErrUnknownSubject):
		return "unknown_subject"
	case errors.Is(err, service.ErrInvalidToken):
		return "invalid_token"
	default:
		return ""
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header is not "<scheme> <token>".
//   - [ErrUnsupportedAuthScheme] if the scheme is not "Bearer".
//   - [ErrEmptyToken] if the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrUnsupportedAuthScheme
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}
	if strings.ContainsAny(tokenString, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
