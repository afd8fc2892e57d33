// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "surrounding spaces", header: "  Bearer   abc.def.ghi  ", wantToken: "abc.def.ghi"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme with trailing space only", header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrUnsupportedAuthScheme},
		{name: "two tokens", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token only", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestMe_OK(t *testing.T) {
	h, m := newMockedHandler(t)
	phone := "+15550100"
	user := models.User{
		ID:           uuid.MustParse("0192f0c1-7b1a-7cde-8f00-000000000001"),
		Email:        "a@x.com",
		Phone:        &phone,
		PasswordHash: "$2a$10$secret-hash",
		CreatedAt:    time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	m.auth.EXPECT().Identify(gomock.Any(), "tok").Return(user, nil)

	rr := doRequest(t, h.Init(), http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer tok"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": "0192f0c1-7b1a-7cde-8f00-000000000001",
		"email": "a@x.com",
		"phone": "+15550100",
		"created_at": "2026-03-01T12:00:00Z"
	}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}

func TestMe_NullPhone(t *testing.T) {
	h, m := newMockedHandler(t)
	user := models.User{ID: uuid.New(), Email: "a@x.com", CreatedAt: time.Now().UTC()}

	m.auth.EXPECT().Identify(gomock.Any(), "tok").Return(user, nil)

	rr := doRequest(t, h.Init(), http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer tok"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"phone":null`)
}

func TestMe_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Basic dXNlcjpwYXNz", "Token abc"} {
		t.Run(fmt.Sprintf("header %q", header), func(t *testing.T) {
			h, _ := newMockedHandler(t) // Identify must not be called

			headers := map[string]string{}
			if header != "" {
				headers["Authorization"] = header
			}
			rr := doRequest(t, h.Init(), http.MethodGet, "/me", nil, headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "Not authenticated", decodeDetail(t, rr))
		})
	}
}

func TestMe_TokenFailuresAreIndistinguishable(t *testing.T) {
	failures := []error{
		service.ErrInvalidToken,
		fmt.Errorf("%w: token is expired", service.ErrInvalidToken),
		service.ErrMissingSubject,
		service.ErrUnknownSubject,
	}

	var bodies []string
	for _, failure := range failures {
		h, m := newMockedHandler(t)
		m.auth.EXPECT().Identify(gomock.Any(), "tok").Return(models.User{}, failure)

		rr := doRequest(t, h.Init(), http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer tok"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code, failure.Error())
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
		bodies = append(bodies, rr.Body.String())
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}

func TestMe_InternalFailure(t *testing.T) {
	h, m := newMockedHandler(t)
	m.auth.EXPECT().Identify(gomock.Any(), "tok").Return(models.User{}, errors.New("db down"))

	rr := doRequest(t, h.Init(), http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer tok"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestAuthMiddleware_StoresUserInContext(t *testing.T) {
	h, m := newMockedHandler(t)
	user := models.User{ID: uuid.New(), Email: "a@x.com"}
	m.auth.EXPECT().Identify(gomock.Any(), "tok").Return(user, nil)

	var got models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetUserFromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	rr := doRequest(t, h.auth(next), http.MethodGet, "/", nil, map[string]string{"Authorization": "Bearer tok"})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, user, got)
}

func TestAuthErrorKind(t *testing.T) {
	assert.Equal(t, "invalid_token", authErrorKind(service.ErrInvalidToken))
	assert.Equal(t, "missing_subject", authErrorKind(service.ErrMissingSubject))
	assert.Equal(t, "unknown_subject", authErrorKind(fmt.Errorf("wrapped: %w", service.ErrUnknownSubject)))
	assert.Equal(t, "", authErrorKind(errors.New("db down")))
}
