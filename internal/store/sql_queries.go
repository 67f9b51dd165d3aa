package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash, name, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, email, password_hash, name, role, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password_hash, name, role, created_at, updated_at
    FROM users
    WHERE email = $1
    LIMIT 1;`

	findUserByID = `SELECT id, email, password_hash, name, role, created_at, updated_at
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3);`

	findUserBySession = `SELECT u.id, u.email, u.password_hash, u.name, u.role, u.created_at, u.updated_at
    FROM sessions s
    JOIN users u ON u.id = s.user_id
    WHERE s.id = $1 AND s.expires_at > $2;`

	deleteSession = `DELETE FROM sessions
    WHERE id = $1;`
)

// builder is the shared squirrel statement builder with $N placeholders,
// which both the pgx and sqlite3 drivers accept.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateNameQuery builds the UPDATE persisting a new display name.
// A nil name clears the column.
func buildUpdateNameQuery(id string, name *string) (string, []any, error) {
	return builder.
		Update("users").
		Set("name", name).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdatePasswordQuery builds the UPDATE persisting a new password hash.
func buildUpdatePasswordQuery(id, passwordHash string) (string, []any, error) {
	return builder.
		Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildStatsQuery builds the SELECT over the stats key/value table.
func buildStatsQuery() (string, []any, error) {
	return builder.
		Select("key", "value").
		From("stats").
		ToSql()
}

// buildGithubOrgsQuery builds the SELECT listing GitHub organizations.
func buildGithubOrgsQuery() (string, []any, error) {
	return builder.
		Select("name").
		From("github_orgs").
		OrderBy("name").
		ToSql()
}

// buildDomainsQuery builds the SELECT over the domain portfolio, primary
// domains first.
func buildDomainsQuery() (string, []any, error) {
	return builder.
		Select("name", "primary_domain", "status").
		From("domains").
		OrderBy("primary_domain DESC", "name").
		ToSql()
}
