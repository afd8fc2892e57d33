// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and bounds every request by cfg.RequestTimeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter] with POST /register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	return h.requestToken(ctx, "/register", creds)
}

// Login implements [ServerAdapter] with POST /login.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	return h.requestToken(ctx, "/login", creds)
}

func (h *httpServerAdapter) requestToken(ctx context.Context, path string, creds models.Credentials) (models.AccessToken, error) {
	var token models.AccessToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Str("path", path).Msg("server rejected request")
		return models.AccessToken{}, err
	}
	if token.AccessToken == "" {
		return models.AccessToken{}, fmt.Errorf("%s response: %w", path, ErrEmptyToken)
	}

	return token, nil
}

// Me implements [ServerAdapter] with GET /me.
func (h *httpServerAdapter) Me(ctx context.Context, token string) (models.UserProfile, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.UserProfile{}, ErrEmptyToken
	}

	var profile models.UserProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		Get("/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("/me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}
