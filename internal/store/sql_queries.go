package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel builder configured for PostgreSQL placeholder
// syntax ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const usersTable = "users"

var userColumns = []string{"email", "password_hash", "requires_2fa"}

func buildInsertUser(email, passwordHash string, requires2FA bool) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns(userColumns...).
		Values(email, passwordHash, requires2FA).
		ToSql()
}

func buildSelectUser(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildDeleteUser(email string) (string, []any, error) {
	return psql.Delete(usersTable).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING email, password_hash, requires_2fa").
		ToSql()
}
