package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and the two settings mutations
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned timestamps.
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account. Email
// uniqueness is the auth service's check-then-insert concern; a database
// that nonetheless enforces it surfaces as [ErrEmailExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Email, user.PasswordHash, user.Name, user.Role)

	if err := row.Err(); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.User
	if err := scanUser(row, &created); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email matches exactly. Callers
// are expected to case-fold the email before the lookup.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// FindUserByID retrieves a user by its opaque identifier.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// UpdateName persists a new display name for the user. It is a single
// statement deliberately separate from UpdatePassword; see [UserRepository].
func (r *userRepository) UpdateName(ctx context.Context, id string, name *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNameQuery(id, name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateName").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateName").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdatePassword persists a new password hash for the user.
func (r *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(id, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanUser scans one users row into dst. All user SELECTs and the INSERT
// RETURNING clause share the same column order.
func scanUser(row *sql.Row, dst *models.User) error {
	return row.Scan(&dst.ID, &dst.Email, &dst.PasswordHash, &dst.Name, &dst.Role, &dst.CreatedAt, &dst.UpdatedAt)
}
