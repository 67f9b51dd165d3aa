package store

import (
	"database/sql"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/migrations"
)

// DB wraps the shared database handle together with the goose dialect it was
// opened under. It is injected into every repository; no repository owns the
// connection.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all embedded schema migrations to the underlying database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
