// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv holds the variable names understood by earlier deployments of the
// service. They are only consulted when the structured names are unset.
type legacyEnv struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	JWTSecretKey Secret `env:"JWT_SECRET_KEY"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = legacy.DatabaseURL
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = legacy.JWTSecretKey
	}

	return nil
}
