// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/migrations"
	"github.com/MKhiriev/go-identity/models"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := "sqlite:///" + filepath.Join(t.TempDir(), "identity.db")
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestSQLite_CreateAndFind(t *testing.T) {
	storages := newSQLiteStorages(t)
	repo := storages.UserRepository
	ctx := context.Background()

	user := models.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	created, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.ID)

	byEmail, err := repo.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)
	assert.Nil(t, byEmail.Phone)
	assert.True(t, user.CreatedAt.Equal(byEmail.CreatedAt))

	byID, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, byEmail, byID)
}

func TestSQLite_DuplicateEmail(t *testing.T) {
	repo := newSQLiteStorages(t).UserRepository
	ctx := context.Background()

	first := models.User{ID: uuid.New(), Email: "bob@example.com", PasswordHash: "h1", CreatedAt: time.Now()}
	_, err := repo.CreateUser(ctx, first)
	require.NoError(t, err)

	second := models.User{ID: uuid.New(), Email: "bob@example.com", PasswordHash: "h2", CreatedAt: time.Now()}
	_, err = repo.CreateUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID, "the first identity must be untouched")
}

func TestSQLite_NotFound(t *testing.T) {
	repo := newSQLiteStorages(t).UserRepository
	ctx := context.Background()

	_, err := repo.FindUserByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.FindUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_Ping(t *testing.T) {
	storages := newSQLiteStorages(t)
	assert.NoError(t, storages.Ping(context.Background()))
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, migrations.SQLite, db.Dialect())
}

func TestSQLitePath(t *testing.T) {
	tests := map[string]string{
		"sqlite:///./app.db": "./app.db",
		"sqlite://app.db":    "app.db",
		"identity.db":        "identity.db",
		":memory:":           ":memory:",
	}
	for dsn, want := range tests {
		assert.Equal(t, want, sqlitePath(dsn), dsn)
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("other")))
	assert.Equal(t, NonRetryable, c.Classify(nil))

	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.False(t, c.IsUniqueViolation(errors.New("UNIQUE constraint failed")))
}
