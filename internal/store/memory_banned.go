// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package store

import (
	"context"
	"sync"
	"time"

	"github.com/mpetrenko/authd/internal/logger"
)

// memoryBannedTokenStore is the in-memory implementation of
// [BannedTokenStore]: a set of revoked token strings behind a reader/writer
// lock. Each entry remembers the token's own expiry so the janitor can evict
// entries that natural expiry already rejects.
type memoryBannedTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	logger *logger.Logger
}

// NewMemoryBannedTokenStore constructs an empty in-memory [BannedTokenStore].
func NewMemoryBannedTokenStore(logger *logger.Logger) BannedTokenStore {
	logger.Debug().Msg("creating in-memory banned token store")
	return &memoryBannedTokenStore{
		tokens: make(map[string]time.Time),
		logger: logger,
	}
}

func (s *memoryBannedTokenStore) Ban(ctx context.Context, token string, expiresAt time.Time) BanResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, banned := s.tokens[token]; banned {
		return TokenAlreadyBanned
	}
	s.tokens[token] = expiresAt

	return TokenBanned
}

func (s *memoryBannedTokenStore) IsBanned(ctx context.Context, token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, banned := s.tokens[token]
	return banned
}

func (s *memoryBannedTokenStore) Unban(ctx context.Context, token string) BanResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, banned := s.tokens[token]; !banned {
		return TokenNotBanned
	}
	delete(s.tokens, token)

	return TokenUnbanned
}

func (s *memoryBannedTokenStore) DeleteExpired(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for token, expiresAt := range s.tokens {
		if expiresAt.Before(now) {
			delete(s.tokens, token)
			evicted++
		}
	}

	return evicted
}

// size is a test helper; the production interface exposes no count.
func (s *memoryBannedTokenStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
