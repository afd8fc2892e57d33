// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil after a requested shutdown and the cause otherwise.
	RunServer() error

	// Shutdown gracefully stops the server. It gives up when ctx is done.
	Shutdown(ctx context.Context)
}
