// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that a builder without
// sources yields a valid configuration made of defaults only.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DevelopmentSignKey, cfg.App.TokenSignKey)
	assert.True(t, cfg.UsesDevelopmentSignKey())
	assert.Equal(t, DefaultTokenSigningAlgorithm, cfg.App.TokenSigningAlgorithm)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultHealthInterval, cfg.Workers.HealthInterval)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

// TestBuild_LaterSourceWins verifies the documented precedence: non-zero
// values of later sources override earlier ones, zero values do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "env_secret", TokenIssuer: "env_issuer"},
			Storage: Storage{DB: DB{DSN: "env.db"}},
		},
		&StructuredConfig{
			App: App{TokenSignKey: "flag_secret"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, Secret("flag_secret"), cfg.App.TokenSignKey)
	assert.Equal(t, "env_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.False(t, cfg.UsesDevelopmentSignKey())
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSigningAlgorithm: "RS256"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeJSONFile(t, `{"app": {"token_issuer": "json_issuer"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{TokenIssuer: "env_issuer"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token-duration", "never"})
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "asymmetric algorithm", mutate: func(c *StructuredConfig) { c.App.TokenSigningAlgorithm = "RS256" }, want: ErrInvalidAppConfigs},
		{name: "none algorithm", mutate: func(c *StructuredConfig) { c.App.TokenSigningAlgorithm = "none" }, want: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, want: ErrInvalidAppConfigs},
		{name: "leeway too large", mutate: func(c *StructuredConfig) { c.App.TokenLeeway = 2 * time.Minute }, want: ErrInvalidAppConfigs},
		{name: "bcrypt cost too low", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 3 }, want: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 32 }, want: ErrInvalidAppConfigs},
		{name: "no listeners", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
		{name: "negative health interval", mutate: func(c *StructuredConfig) { c.Workers.HealthInterval = -time.Second }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
