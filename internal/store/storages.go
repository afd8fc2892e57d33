// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/migrations"
)

// Storages bundles the repositories of the server together with the
// database connection backing them.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies the
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch DialectFromDSN(cfg.DB.DSN) {
	case migrations.Postgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case migrations.SQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DB.DSN)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}
}

// Ping checks that the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

// DialectFromDSN maps a DSN to a migrations dialect. PostgreSQL URLs select
// PostgreSQL; "sqlite:" URLs and plain file paths select SQLite. An empty
// DSN yields "".
func DialectFromDSN(dsn string) string {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.Postgres
	case strings.Contains(dsn, "://") && !strings.HasPrefix(dsn, "sqlite://"):
		return ""
	default:
		return migrations.SQLite
	}
}
