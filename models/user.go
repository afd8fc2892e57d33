// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered identity.
// PasswordHash is produced by the credential hasher and is never exposed via
// JSON; it must only be compared through the hasher's Verify operation.
type User struct {
	// ID is the immutable 128-bit identifier assigned at registration.
	ID uuid.UUID `json:"id"`

	// Email is the unique login key. Stored normalised (trimmed, lower case).
	Email string `json:"email"`

	// Phone is optional and is not set by registration.
	Phone *string `json:"phone"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is set once when the identity is created.
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public projection of the user served by GET /me.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the identity projection returned to clients.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
