// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a logger writing to buf in its
// context, the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		body          string
		wantContains  []string
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			path:          "/healthz",
			handlerStatus: http.StatusOK,
			body:          "OK",
			wantContains:  []string{`"level":"info"`, `"method":"GET"`, `"uri":"/healthz"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:          "POST 400 is a warning",
			method:        http.MethodPost,
			path:          "/login",
			handlerStatus: http.StatusBadRequest,
			wantContains:  []string{`"level":"warn"`, `"status":400`},
		},
		{
			name:          "500 is an error",
			method:        http.MethodGet,
			path:          "/me",
			handlerStatus: http.StatusInternalServerError,
			wantContains:  []string{`"level":"error"`, `"status":500`},
		},
		{
			name:         "implicit 200",
			method:       http.MethodGet,
			path:         "/version",
			wantContains: []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_QueryStringNotLogged(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/me?token=secret", &buf))

	assert.NotContains(t, buf.String(), "secret")
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusCreated))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnauthorized))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusServiceUnavailable))
}
