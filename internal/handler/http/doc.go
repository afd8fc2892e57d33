// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the identity service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API: registration, login, identity resolution, health and build info.
// Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, security headers and response compression are handled in
// this package before requests are delegated to the service layer.
package http
