// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every rejected request.
// Detail is a fixed, user-facing message and never carries internal error text.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health statuses reported by GET /healthz.
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
