// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package workers

import (
	"context"
	"time"

	"github.com/mpetrenko/authd/internal/config"
	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/internal/store"
)

// janitor periodically evicts revocation entries whose tokens have expired
// on their own and two-factor challenges nobody redeemed. Both stores stay
// correct without it; the janitor only bounds their memory.
type janitor struct {
	bannedTokens store.BannedTokenStore
	twoFACodes   store.TwoFACodeStore

	// interval is the time between sweeps.
	interval time.Duration

	// challengeTTL is how long a pending challenge is retained before it is
	// considered abandoned.
	challengeTTL time.Duration

	logger *logger.Logger

	stop chan struct{}
	done chan struct{}

	// now is swappable in tests.
	now func() time.Time
}

func newJanitor(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *janitor {
	return &janitor{
		bannedTokens: storages.BannedTokens,
		twoFACodes:   storages.TwoFACodes,
		interval:     cfg.JanitorInterval,
		challengeTTL: cfg.ChallengeTTL,
		logger:       logger,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
		now:          time.Now,
	}
}

// Run starts the sweep loop in a background goroutine and returns.
func (j *janitor) Run() {
	j.logger.Info().
		Dur("interval", j.interval).
		Dur("challengeTTL", j.challengeTTL).
		Msg("janitor started")

	go j.loop()
}

// Stop terminates the sweep loop and waits until it has exited.
func (j *janitor) Stop() {
	close(j.stop)
	<-j.done

	j.logger.Info().Msg("janitor stopped")
}

func (j *janitor) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			j.sweep(context.Background())
		}
	}
}

// sweep evicts banned tokens past their own expiry and challenges older than
// challengeTTL.
func (j *janitor) sweep(ctx context.Context) {
	now := j.now()

	evictedTokens := j.bannedTokens.DeleteExpired(ctx, now)
	evictedChallenges := j.twoFACodes.DeleteStale(ctx, now.Add(-j.challengeTTL))

	if evictedTokens == 0 && evictedChallenges == 0 {
		j.logger.Debug().Msg("janitor sweep: nothing to evict")
		return
	}

	j.logger.Info().
		Int("expiredTokens", evictedTokens).
		Int("staleChallenges", evictedChallenges).
		Msg("janitor sweep")
}
