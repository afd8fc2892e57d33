// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/secure"
)

type Handler struct {
	services *service.Services
	health   *HealthStatus

	validate *validator.Validate
	secure   *secure.Secure

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		health:         &HealthStatus{},
		validate:       newValidator(),
		secure:         newSecureMiddleware(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// Health returns the status served by GET /healthz. The health worker
// updates it.
func (h *Handler) Health() *HealthStatus {
	return h.health
}
