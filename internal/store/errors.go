package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by email or ID matches no
	// user row.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session token matches no row,
	// or only a row whose expiry has already passed. Callers that resolve
	// request identity treat this as "anonymous", never as a failure.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrEmailExists is returned by CreateUser when the database rejects
	// the insert with a unique violation. The shipped schema carries no
	// unique index on email (uniqueness is the auth service's
	// check-then-insert concern), so this only fires on deployments that
	// added one — it is a backstop, not the primary guard.
	ErrEmailExists = errors.New("email already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
