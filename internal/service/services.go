// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService, err := NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(cfg.App.BcryptCost), tokenService, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
