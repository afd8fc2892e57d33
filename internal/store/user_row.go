// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/models"
	"github.com/google/uuid"
)

// userColumns lists the columns of the users table in scan order of
// [userRow.scanTargets].
var userColumns = []string{"id", "email", "phone", "password_hash", "created_at"}

// userRow is the database shape of a user. Ids are stored as text so the
// same row type serves PostgreSQL (uuid) and SQLite (text).
type userRow struct {
	ID           string
	Email        string
	Phone        sql.NullString
	PasswordHash string
	CreatedAt    time.Time
}

func (r *userRow) scanTargets() []any {
	return []any{&r.ID, &r.Email, &r.Phone, &r.PasswordHash, &r.CreatedAt}
}

func (r *userRow) values() []any {
	return []any{r.ID, r.Email, r.Phone, r.PasswordHash, r.CreatedAt}
}

func fromModel(user models.User) userRow {
	row := userRow{
		ID:           user.ID.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
	}
	if user.Phone != nil {
		row.Phone = sql.NullString{String: *user.Phone, Valid: true}
	}
	return row
}

func (r *userRow) toModel() (models.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: id %q: %w", ErrMappingRow, r.ID, err)
	}

	user := models.User{
		ID:           id,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.Phone.Valid {
		phone := r.Phone.String
		user.Phone = &phone
	}
	return user, nil
}
