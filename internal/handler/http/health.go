// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sync/atomic"

	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

// HealthStatus holds the last database health result. The zero value reports
// not serving until the first check succeeds.
type HealthStatus struct {
	serving atomic.Bool
}

func (s *HealthStatus) SetServing(serving bool) {
	s.serving.Store(serving)
}

func (s *HealthStatus) Serving() bool {
	return s.serving.Load()
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if !h.health.Serving() {
		utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusOK}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.BuildInfo(r.Context()), http.StatusOK)
}
