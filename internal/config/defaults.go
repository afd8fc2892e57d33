// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by [StructuredConfig.applyDefaults] to fields that no
// source has set.
const (
	DefaultTokenSigningAlgorithm = "HS256"
	DefaultTokenIssuer           = "go-identity"
	DefaultTokenDuration         = time.Hour
	DefaultBcryptCost            = 10
	DefaultHTTPAddress           = "localhost:8080"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultDSN                   = "identity.db"
	DefaultHealthInterval        = 15 * time.Second

	// DevelopmentSignKey is used when no signing key is configured. It is
	// public knowledge and must never be used in production; the server logs
	// a warning at startup when it is in effect.
	DevelopmentSignKey Secret = "dev-secret-key-change-in-production"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DevelopmentSignKey
	}
	if cfg.App.TokenSigningAlgorithm == "" {
		cfg.App.TokenSigningAlgorithm = DefaultTokenSigningAlgorithm
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Workers.HealthInterval == 0 {
		cfg.Workers.HealthInterval = DefaultHealthInterval
	}
}

// UsesDevelopmentSignKey reports whether the built-in development signing key
// is in effect.
func (cfg *StructuredConfig) UsesDevelopmentSignKey() bool {
	return cfg.App.TokenSignKey == DevelopmentSignKey
}
