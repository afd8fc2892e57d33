// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// CredentialsPrompter asks the user for an email and a password.
type CredentialsPrompter interface {
	PromptCredentials(ctx context.Context, title, email string) (models.Credentials, error)
}
