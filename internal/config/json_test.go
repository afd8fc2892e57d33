// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "json_secret",
			"token_signing_algorithm": "HS256",
			"token_issuer": "json_issuer",
			"token_duration": "2h",
			"token_leeway": "15s",
			"bcrypt_cost": 8
		},
		"storage": {"db": {"dsn": "sqlite:///./json.db"}},
		"server": {"http_address": "0.0.0.0:8000", "grpc_address": "0.0.0.0:9000", "request_timeout": 5000000000},
		"workers": {"health_interval": "20s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, Secret("json_secret"), cfg.App.TokenSignKey)
	assert.Equal(t, "HS256", cfg.App.TokenSigningAlgorithm)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.App.TokenLeeway)
	assert.Equal(t, 8, cfg.App.BcryptCost)
	assert.Equal(t, "sqlite:///./json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Workers.HealthInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"app":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"app": {"token_duration": "soon"}}`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
