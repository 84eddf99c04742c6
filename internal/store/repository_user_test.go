// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/models"
)

func newMockRepo(t *testing.T) (UserStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewUserRepository(db, logger.Nop()), mock
}

func TestUserRepository_Add(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := mustUser(t, "test@example.com", "password1", false)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.Email.String(), user.Password.String(), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Add(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Add_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := mustUser(t, "test@example.com", "password1", false)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.Email.String(), user.Password.String(), false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Add(context.Background(), user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserRepository_Add_UnexpectedError(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := mustUser(t, "test@example.com", "password1", false)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Add(context.Background(), user)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserRepository_Get(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := mustUser(t, "test@example.com", "password1", true)

	rows := sqlmock.NewRows([]string{"email", "password_hash", "requires_2fa"}).
		AddRow(user.Email.String(), user.Password.String(), true)
	mock.ExpectQuery(`SELECT email, password_hash, requires_2fa FROM users`).
		WithArgs(user.Email.String()).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT email, password_hash, requires_2fa FROM users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), mustEmail(t, "nobody@example.com"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_VerifyCredentials(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := mustUser(t, "test@example.com", "password1", false)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"email", "password_hash", "requires_2fa"}).
			AddRow(user.Email.String(), user.Password.String(), false)
	}

	correct, err := models.ParsePassword("password1")
	require.NoError(t, err)
	wrong, err := models.ParsePassword("wrongpassword")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT email, password_hash, requires_2fa FROM users`).
		WillReturnRows(rows())
	got, err := repo.VerifyCredentials(context.Background(), user.Email, correct)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	mock.ExpectQuery(`SELECT email, password_hash, requires_2fa FROM users`).
		WillReturnRows(rows())
	_, err = repo.VerifyCredentials(context.Background(), user.Email, wrong)
	assert.ErrorIs(t, err, ErrIncorrectCredentials)
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := mustUser(t, "test@example.com", "password1", false)

	rows := sqlmock.NewRows([]string{"email", "password_hash", "requires_2fa"}).
		AddRow(user.Email.String(), user.Password.String(), false)
	mock.ExpectQuery(`DELETE FROM users`).
		WithArgs(user.Email.String()).
		WillReturnRows(rows)

	deleted, err := repo.Delete(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user, deleted)
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`DELETE FROM users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), mustEmail(t, "nobody@example.com"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}
