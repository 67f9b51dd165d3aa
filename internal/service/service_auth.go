package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blackroad-os/hub/internal/config"
	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/security"
	"github.com/blackroad-os/hub/internal/store"
	"github.com/blackroad-os/hub/models"
)

const minPasswordLength = 8

// authService is the concrete implementation of AuthService.
// It owns signup validation, credential verification and the opaque session
// token lifecycle, backed by the user and session repositories.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// sessionDuration controls how long a newly created session remains
	// valid. The expiry is fixed at creation time and never extended.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// Signup creates a new account and an initial session for it.
//
// Validation runs in a fixed order so the first failure is the one reported:
// the email must parse as an address, the password must meet the length
// minimum, and the email must not already be registered. The existence check
// and the insert are two separate statements; the email column carries no
// unique constraint.
//
// Returns the persisted user and a fresh session, or:
//   - ErrInvalidEmail / ErrPasswordTooShort on validation failure.
//   - ErrEmailTaken if the email already has an account.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Signup(ctx context.Context, email, password, name string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		log.Error().Str("email", email).Msg("signup rejected: email does not parse")
		return models.User{}, models.Session{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		log.Error().Str("email", email).Msg("signup rejected: password too short")
		return models.User{}, models.Session{}, ErrPasswordTooShort
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		log.Error().Str("email", email).Msg("signup rejected: email already registered")
		return models.User{}, models.Session{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", email).Msg("signup existence check failed")
		return models.User{}, models.Session{}, fmt.Errorf("signup existence check failed: %w", err)
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		user.Name = &trimmed
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		// a concurrent signup can win the race between the existence
		// check and the insert; with a constraint-bearing schema it
		// surfaces here instead
		if errors.Is(err, store.ErrEmailExists) {
			return models.User{}, models.Session{}, ErrEmailTaken
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := a.createSession(ctx, createdUser.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	return createdUser, session, nil
}

// Login authenticates an existing account and creates a session for it.
//
// An unknown email and a wrong password both return ErrInvalidCredentials;
// callers cannot distinguish the two.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", email).Msg("login rejected: unknown email")
			return models.User{}, models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !security.VerifyPassword(password, foundUser.PasswordHash) {
		log.Error().Str("email", email).Msg("login rejected: wrong password")
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	session, err := a.createSession(ctx, foundUser.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	return foundUser, session, nil
}

// Logout deletes the session row. Deleting a session that does not exist is
// not an error, so logout is idempotent.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// Resolve maps a session token to its user. A missing or expired session
// returns ErrNoSession; storage failures are wrapped and returned as-is so
// callers can degrade instead of treating the visitor as logged out forever.
func (a *authService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.sessionRepository.FindUserBySession(ctx, sessionID, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrNoSession
		}
		log.Err(err).Msg("session resolution failed")
		return models.User{}, fmt.Errorf("session resolution failed: %w", err)
	}

	return user, nil
}

// ChangeName persists a new display name for the user. An empty submission
// clears the stored name.
func (a *authService) ChangeName(ctx context.Context, userID, name string) error {
	log := logger.FromContext(ctx)

	var stored *string
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		stored = &trimmed
	}

	if err := a.userRepository.UpdateName(ctx, userID, stored); err != nil {
		log.Err(err).Str("userID", userID).Msg("name update ended with error")
		return fmt.Errorf("name update ended with error: %w", err)
	}

	return nil
}

// ChangePassword replaces the user's password hash after verifying the
// current password and the new password's length, in that order.
//
// Returns ErrWrongPassword or ErrPasswordTooShort on guard failure.
func (a *authService) ChangePassword(ctx context.Context, user models.User, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if !security.VerifyPassword(currentPassword, user.PasswordHash) {
		log.Error().Str("userID", user.ID).Msg("password change rejected: wrong current password")
		return ErrWrongPassword
	}
	if len(newPassword) < minPasswordLength {
		log.Error().Str("userID", user.ID).Msg("password change rejected: new password too short")
		return ErrPasswordTooShort
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		log.Err(err).Str("userID", user.ID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

func (a *authService) createSession(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(a.sessionDuration),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("userID", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// normalizeEmail lowercases and trims the address so lookups and the
// check-then-insert both see one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
