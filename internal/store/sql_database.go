package store

import (
	"database/sql"
	"errors"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/migrations"
)

// DB wraps the standard library connection pool with the application logger.
// It is shared by all repositories backed by the relational database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all embedded schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// isNoRows reports whether err indicates an empty single-row result.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
