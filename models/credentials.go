// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// Credentials is the request body of POST /register and POST /login.
//
// Password is limited to 72 bytes because bcrypt ignores everything past that.
type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,bcryptlen"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that
// credentials can be attached to log entries without leaking the password.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", c.Email)
}
