// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package store

import (
	"context"
	"sync"
	"time"

	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/models"
)

type pendingChallenge struct {
	attemptID models.LoginAttemptID
	code      models.TwoFACode
	createdAt time.Time
}

// memoryTwoFACodeStore is the in-memory implementation of [TwoFACodeStore]:
// a map from email to its single pending challenge behind a reader/writer
// lock.
type memoryTwoFACodeStore struct {
	mu         sync.RWMutex
	challenges map[models.Email]pendingChallenge
	logger     *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewMemoryTwoFACodeStore constructs an empty in-memory [TwoFACodeStore].
func NewMemoryTwoFACodeStore(logger *logger.Logger) TwoFACodeStore {
	logger.Debug().Msg("creating in-memory 2FA code store")
	return &memoryTwoFACodeStore{
		challenges: make(map[models.Email]pendingChallenge),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *memoryTwoFACodeStore) Put(ctx context.Context, email models.Email, attemptID models.LoginAttemptID, code models.TwoFACode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// overwrite unconditionally: one pending challenge per email
	s.challenges[email] = pendingChallenge{
		attemptID: attemptID,
		code:      code,
		createdAt: s.now(),
	}

	return nil
}

func (s *memoryTwoFACodeStore) Get(ctx context.Context, email models.Email) (models.LoginAttemptID, models.TwoFACode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, exists := s.challenges[email]
	if !exists {
		return models.LoginAttemptID{}, models.TwoFACode{}, ErrEmailNotFound
	}

	return challenge.attemptID, challenge.code, nil
}

func (s *memoryTwoFACodeStore) Remove(ctx context.Context, email models.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.challenges[email]; !exists {
		return ErrEmailNotFound
	}
	delete(s.challenges, email)

	return nil
}

func (s *memoryTwoFACodeStore) DeleteStale(ctx context.Context, olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for email, challenge := range s.challenges {
		if challenge.createdAt.Before(olderThan) {
			delete(s.challenges, email)
			evicted++
		}
	}

	return evicted
}

// size is a test helper; the production interface exposes no count.
func (s *memoryTwoFACodeStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.challenges)
}
