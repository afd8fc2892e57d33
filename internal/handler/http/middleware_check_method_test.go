// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Post("/register", ok)
	router.Post("/login", ok)
	router.Get("/me", ok)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "POST /register allowed", method: http.MethodPost, path: "/register", wantStatus: http.StatusOK},
		{name: "POST /login allowed", method: http.MethodPost, path: "/login", wantStatus: http.StatusOK},
		{name: "GET /me allowed", method: http.MethodGet, path: "/me", wantStatus: http.StatusOK},
		{name: "GET /register not allowed", method: http.MethodGet, path: "/register", wantStatus: http.StatusNotFound},
		{name: "DELETE /login not allowed", method: http.MethodDelete, path: "/login", wantStatus: http.StatusNotFound},
		{name: "POST /me not allowed", method: http.MethodPost, path: "/me", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/admin", wantStatus: http.StatusNotFound},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_NeverReturns405(t *testing.T) {
	router := newTestRouter()
	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(method, "/register", nil))
		assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code, method)
	}
}
