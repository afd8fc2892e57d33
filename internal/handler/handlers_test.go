// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. Both constructors only
// store the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "both addresses", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "only HTTP", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "only gRPC", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(), tt.cfg, logger.Nop())

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestHandlers_HealthReporters(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, logger.Nop())
	require.NoError(t, err)

	reporters := h.HealthReporters()
	require.Len(t, reporters, 2)

	for _, r := range reporters {
		r.SetServing(true)
	}
	assert.True(t, h.HTTP.Health().Serving())

	onlyHTTP, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, onlyHTTP.HealthReporters(), 1)
}
