package store

import (
	"context"

	"github.com/blackroad-os/hub/internal/config"
	"github.com/blackroad-os/hub/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. A single instance is wired through the service layer.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	SiteDataRepository SiteDataRepository

	db *DB
}

// NewStorages connects to the configured database (PostgreSQL when a DSN is
// set, local SQLite otherwise), runs migrations, and constructs all
// repositories on the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if cfg.DSN != "" {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SessionRepository:  NewSessionRepository(db, log),
		SiteDataRepository: NewSiteDataRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the shared database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
