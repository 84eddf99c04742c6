// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package store

import (
	"context"
	"sync"

	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/models"
)

// memoryUserStore is the in-memory implementation of [UserStore]: a map
// keyed by email behind a reader/writer lock. Reads proceed concurrently;
// writes take the lock exclusively.
type memoryUserStore struct {
	mu     sync.RWMutex
	users  map[models.Email]models.User
	logger *logger.Logger
}

// NewMemoryUserStore constructs an empty in-memory [UserStore].
func NewMemoryUserStore(logger *logger.Logger) UserStore {
	logger.Debug().Msg("creating in-memory user store")
	return &memoryUserStore{
		users:  make(map[models.Email]models.User),
		logger: logger,
	}
}

func (s *memoryUserStore) Add(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrUserAlreadyExists
	}
	s.users[user.Email] = user

	return nil
}

func (s *memoryUserStore) Get(ctx context.Context, email models.Email) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// VerifyCredentials holds only the read lock while hashing: the stored user
// is copied out before the argon2 computation so concurrent writers are not
// blocked for the (deliberately slow) hash duration.
func (s *memoryUserStore) VerifyCredentials(ctx context.Context, email models.Email, password models.Password) (models.User, error) {
	s.mu.RLock()
	user, exists := s.users[email]
	s.mu.RUnlock()

	if !exists {
		return models.User{}, ErrUserNotFound
	}

	ok, err := user.Password.Verify(password)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Err(err).Str("email", email.String()).Msg("stored password hash is unreadable")
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrIncorrectCredentials
	}

	return user, nil
}

func (s *memoryUserStore) Delete(ctx context.Context, email models.Email) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[email]
	if !exists {
		return models.User{}, ErrUserNotFound
	}
	delete(s.users, email)

	return user, nil
}
