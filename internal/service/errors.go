package service

import "errors"

var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password" so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidEmail is returned when a signup email does not parse.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort is returned when a new password is under the
	// 8-character minimum. Exactly 8 characters is accepted.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrEmailTaken is returned when the signup existence check finds the
	// email already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrWrongPassword is returned when the settings password-change guard
	// fails on the current password.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrNoSession is returned when a session token resolves to nothing:
	// no row, or a row past its expiry.
	ErrNoSession = errors.New("no valid session")
)
