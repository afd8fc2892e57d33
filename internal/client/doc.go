// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application.
//
// It dispatches the register, login and me commands to the identity server
// through [adapter.ServerAdapter], asking for credentials interactively when
// they are not passed as flags.
package client
