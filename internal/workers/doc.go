// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the server and a
// Workers aggregate that runs them until the server shuts down.
package workers
