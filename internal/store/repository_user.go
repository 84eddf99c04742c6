package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserStore].
// It persists accounts in the "users" table; uniqueness of the email key is
// enforced by the table's primary key, so concurrent Add calls for the same
// email resolve to exactly one success without extra locking here.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserStore] backed by the provided database
// connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserStore {
	logger.Debug().Msg("creating postgres user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Add persists a new user record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Add(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUser(user.Email.String(), user.Password.String(), user.Requires2FA)
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Add").Msg("error: insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Get retrieves the user registered under email.
func (r *userRepository) Get(ctx context.Context, email models.Email) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUser(email.String())
	if err != nil {
		return models.User{}, fmt.Errorf("error building select query: %w", err)
	}

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.Get").Msg("error: select failed")
		}
		return models.User{}, err
	}

	return user, nil
}

// VerifyCredentials loads the user by email and checks password against the
// stored argon2id hash. The hash comparison happens in-process, never in the
// database.
func (r *userRepository) VerifyCredentials(ctx context.Context, email models.Email, password models.Password) (models.User, error) {
	user, err := r.Get(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	ok, err := user.Password.Verify(password)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrIncorrectCredentials
	}

	return user, nil
}

// Delete removes and returns the user registered under email.
func (r *userRepository) Delete(ctx context.Context, email models.Email) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUser(email.String())
	if err != nil {
		return models.User{}, fmt.Errorf("error building delete query: %w", err)
	}

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.Delete").Msg("error: delete failed")
		}
		return models.User{}, err
	}

	return user, nil
}

// scanUser reads one (email, password_hash, requires_2fa) row into a
// validated [models.User].
func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	var rawEmail, rawHash string
	var requires2FA bool

	if err := row.Scan(&rawEmail, &rawHash, &requires2FA); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	email, err := models.ParseEmail(rawEmail)
	if err != nil {
		return models.User{}, fmt.Errorf("stored email is invalid: %w", err)
	}

	hash, err := models.ParseHashedPassword(rawHash)
	if err != nil {
		return models.User{}, fmt.Errorf("stored password hash is invalid: %w", err)
	}

	return models.User{
		Email:       email,
		Password:    hash,
		Requires2FA: requires2FA,
	}, nil
}
