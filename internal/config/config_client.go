// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults of the command-line client.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds the settings of the client's HTTP adapter.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	// Env: IDENTITY_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: IDENTITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter

	// Token is the bearer token used by the "me" command.
	// Env: IDENTITY_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientConfig reads the client configuration from IDENTITY_* environment
// variables and the global flags in args (-a, -timeout, -token), flags taking
// precedence. It returns the remaining non-flag arguments (the command and its
// own flags).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "IDENTITY_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("identity-client", flag.ContinueOnError)
	address := fs.String("a", "", "Server base URL")
	timeout := fs.Duration("timeout", 0, "Request timeout (e.g., 10s)")
	token := fs.String("token", "", "Bearer token for the me command")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if *address != "" {
		cfg.Adapter.HTTPAddress = *address
	}
	if *timeout != 0 {
		cfg.Adapter.RequestTimeout = *timeout
	}
	if *token != "" {
		cfg.Token = *token
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientServerAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, fs.Args(), cfg.validate()
}
