package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row. The expiry is fixed by the
// caller at creation time and never updated afterwards.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, session.ID, session.UserID, session.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindUserBySession resolves a session token to its owning user via a join,
// matching only rows with expires_at strictly after now.
//
// Error handling:
//   - No row, or only an expired row → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindUserBySession(ctx context.Context, sessionID string, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserBySession, sessionID, now)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindUserBySession").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindUserBySession").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// DeleteSession removes a session row. Deleting a token that no longer
// exists is a no-op, which makes repeated logouts harmless.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
