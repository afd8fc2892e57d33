// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRequestToken_Success(t *testing.T) {
	creds := models.Credentials{Email: "a@x.com", Password: "secret123"}

	for _, tc := range []struct {
		path   string
		status int
		call   func(ServerAdapter) (models.AccessToken, error)
	}{
		{path: "/register", status: http.StatusCreated, call: func(a ServerAdapter) (models.AccessToken, error) {
			return a.Register(context.Background(), creds)
		}},
		{path: "/login", status: http.StatusOK, call: func(a ServerAdapter) (models.AccessToken, error) {
			return a.Login(context.Background(), creds)
		}},
	} {
		t.Run(tc.path, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tc.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got models.Credentials
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, creds, got)

				writeJSON(w, tc.status, models.AccessToken{AccessToken: "h.p.s", TokenType: "bearer"})
			}))
			defer srv.Close()

			tok, err := tc.call(newTestAdapter(t, srv.URL))

			require.NoError(t, err)
			assert.Equal(t, "h.p.s", tok.AccessToken)
			assert.Equal(t, "bearer", tok.TokenType)
		})
	}
}

func TestRequestToken_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       any
		wantErr    error
		wantDetail string
	}{
		{name: "duplicate", status: http.StatusBadRequest, body: models.ErrorResponse{Detail: "Email already registered"}, wantErr: ErrBadRequest, wantDetail: "Email already registered"},
		{name: "validation", status: http.StatusUnprocessableEntity, body: models.ErrorResponse{Detail: "email: value is not a valid email address"}, wantErr: ErrValidation, wantDetail: "not a valid email"},
		{name: "internal", status: http.StatusInternalServerError, body: models.ErrorResponse{Detail: "Internal Server Error"}, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: "down", wantErr: ErrServiceUnavailable, wantDetail: "down"},
		{name: "empty token", status: http.StatusCreated, body: models.AccessToken{}, wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{Email: "a@x.com", Password: "p"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantDetail != "" {
				assert.Contains(t, err.Error(), tt.wantDetail)
			}
		})
	}
}

func TestRequestToken_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/login request")
}

// ── Me ──────────────────────────────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	profile := models.UserProfile{Email: "a@x.com", CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "Bearer h.p.s", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, profile)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Me(context.Background(), " h.p.s ")

	require.NoError(t, err)
	assert.Equal(t, profile.Email, got.Email)
	assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))
	assert.Nil(t, got.Phone)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid token"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Me(context.Background(), "expired")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid token")
}

func TestMe_EmptyToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.Me(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrEmptyToken)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "  https://id.example.com  ", want: "https://id.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
}
