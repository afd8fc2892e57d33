// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/unrolled/secure"
)

// newSecureMiddleware configures the security headers of a JSON-only API:
// nothing may be framed, sniffed or loaded from a response.
func newSecureMiddleware() *secure.Secure {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		PermissionsPolicy:     "interest-cohort=()",
	})
}

func (h *Handler) withSecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.secure.Process(w, r); err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("secure headers blocked request")
			writeDetail(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
			return
		}
		next.ServeHTTP(w, r)
	})
}
