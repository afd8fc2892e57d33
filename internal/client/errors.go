// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given, expected register, login or me")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoToken        = errors.New("no token: pass -token or set IDENTITY_TOKEN")
)
